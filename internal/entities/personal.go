package entities

// Personal is a flat person record. Technicians and engineers live in
// separate tables but share this shape.
type Personal struct {
	ID     uint64 `json:"id"`
	Nombre string `json:"nombre"`
}
