package dto

// TarjetaDTO is one (card, quantity) pair of the intake payload.
type TarjetaDTO struct {
	Tarjeta  string `json:"tarjeta" validate:"required,notblank"`
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
}

// CreateEquipoDTO is the full-intake body of POST /guardar_equipo.
// Field names follow the front-end form, the repository maps them to
// the column names.
type CreateEquipoDTO struct {
	TipoMovimiento      string       `json:"tipo_movimiento" validate:"required,notblank"`
	TipoEquipo          string       `json:"tipo_equipo" validate:"required,notblank"`
	TarjetasIngresadas  []TarjetaDTO `json:"tarjetas_ingresadas" validate:"dive"`
	DireccionResultante string       `json:"direccion_resultante" validate:"required,notblank"`
	NombreEntrega       string       `json:"nombre_entrega" validate:"required,notblank"`
	NombreRecibe        string       `json:"nombre_recibe" validate:"required,notblank"`
	Observaciones       string       `json:"observaciones"`
	Estado              string       `json:"estado"`
	FechaNotificacion   string       `json:"fecha_notificacion"`
}

// GuardarDireccionDTO is the address-only intake body.
type GuardarDireccionDTO struct {
	DireccionResultante string `json:"direccion_resultante" validate:"required,notblank"`
}

// RevisionDTO carries the review transition. The mixed-case keys are
// what the front end has always sent.
type RevisionDTO struct {
	FechaRevision       string `json:"fecha_Revision" validate:"required,notblank"`
	DiagnosticoRevision string `json:"diagnostico_Revision" validate:"required,notblank"`
}

// ReparacionDTO carries the repair transition.
type ReparacionDTO struct {
	FechaReparacion       string `json:"fecha_reparacion" validate:"required,notblank"`
	DiagnosticoReparacion string `json:"diagnostico_reparacion" validate:"required,notblank"`
	NombreReparador       string `json:"nombre_reparador" validate:"required,notblank"`
}
