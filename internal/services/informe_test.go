package services

import (
	"context"
	"testing"

	apperrors "movilab/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerarInforme(t *testing.T) {
	repo := newFakeEquipoRepo()
	equipoSvc := newTestEquipoService(repo, newFakeCache())
	svc := NewInformeService(repo, zap.NewNop())

	payload := validIntake()
	payload.Observaciones = "pantalla rota"
	id, err := equipoSvc.GuardarEquipo(context.Background(), payload)
	require.NoError(t, err)

	html, err := svc.GenerarInforme(context.Background(), id)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h1>Informe de POS</h1>")
	assert.Contains(t, out, "A1 (2)")
	assert.Contains(t, out, "pantalla rota")
	assert.Contains(t, out, "window.print()")

	// Every label of the fixed table appears, including the
	// delivery-stage fields nothing has written yet.
	for _, label := range []string{
		"Movimiento", "Tarjetas Ingresadas", "Nombre Entrega", "Nombre Recibe",
		"Estado", "Observaciones", "Fecha Revisión", "Diagnóstico Revisión",
		"Fecha Reparación", "Nombre de Reparador", "Diagnóstico Reparación",
		"Fecha Entrega", "Diagnóstico Entrega", "Nombre Entrega Revisado",
		"Nombre Recibe Revisado", "Dirección Entrega",
	} {
		assert.Contains(t, out, label)
	}
}

func TestGenerarInformeEscapesStoredText(t *testing.T) {
	repo := newFakeEquipoRepo()
	equipoSvc := newTestEquipoService(repo, newFakeCache())
	svc := NewInformeService(repo, zap.NewNop())

	payload := validIntake()
	payload.Observaciones = `<script>alert("x")</script>`
	payload.DireccionResultante = `Av 1 <img src=x onerror=alert(1)>`
	id, err := equipoSvc.GuardarEquipo(context.Background(), payload)
	require.NoError(t, err)

	html, err := svc.GenerarInforme(context.Background(), id)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "<script>alert")
	assert.NotContains(t, out, "<img src=x")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestGenerarInformeNotFound(t *testing.T) {
	svc := NewInformeService(newFakeEquipoRepo(), zap.NewNop())

	_, err := svc.GenerarInforme(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGenerarInformeAddressOnlyRecord(t *testing.T) {
	repo := newFakeEquipoRepo()
	svc := NewInformeService(repo, zap.NewNop())

	id, err := repo.CreateDireccion(context.Background(), "Calle 9")
	require.NoError(t, err)

	html, err := svc.GenerarInforme(context.Background(), id)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Calle 9")
}
