package entities

import "github.com/aarondl/null/v8"

// Estados asignados por las transiciones del ciclo de vida. El campo
// acepta texto libre en el ingreso, estos son los valores que escribe
// el propio sistema.
const (
	EstadoRevisado = "Revisado"
	EstadoReparado = "Reparado"
)

// Equipo is the central record: created at intake, mutated by the
// review and repair transitions, shown by the report. Every column
// except the ID is nullable because the address-only intake path
// inserts a row with nothing but direccion.
type Equipo struct {
	ID                 uint64      `json:"id"`
	Movimiento         null.String `json:"movimiento"`
	TipoEquipo         null.String `json:"tipo_equipo"`
	TarjetasIngresadas null.String `json:"tarjetas_ingresadas"`
	Direccion          null.String `json:"direccion"`
	NombreEntrega      null.String `json:"nombre_entrega"`
	NombreRecibe       null.String `json:"nombre_recibe"`
	Observaciones      null.String `json:"observaciones"`
	Estado             null.String `json:"estado"`
	FechaNotificacion  null.String `json:"fecha_notificacion"`

	FechaRevision       null.String `json:"fecha_revision"`
	DiagnosticoRevision null.String `json:"diagnostico_revision"`

	FechaReparacion       null.String `json:"fecha_reparacion"`
	DiagnosticoReparacion null.String `json:"diagnostico_reparacion"`
	NombreReparador       null.String `json:"nombre_reparador"`

	// Etapa de entrega: sin endpoint de escritura, solo aparecen en el
	// informe.
	FechaEntrega          null.String `json:"fecha_entrega"`
	DiagnosticoEntrega    null.String `json:"diagnostico_entrega"`
	NombreEntregaRevisado null.String `json:"nombre_entrega_revisado"`
	NombreRecibeRevisado  null.String `json:"nombre_recibe_revisado"`
	DireccionEntrega      null.String `json:"direccion_entrega"`
}
