package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"movilab/internal/dto"
	"movilab/internal/entities"
	"movilab/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memPersonalRepo struct {
	nextID  uint64
	records []entities.Personal
}

func newMemPersonalRepo() *memPersonalRepo { return &memPersonalRepo{nextID: 1} }

func (m *memPersonalRepo) GetAll(context.Context) ([]entities.Personal, error) {
	return append([]entities.Personal(nil), m.records...), nil
}

func (m *memPersonalRepo) GetNombres(ctx context.Context) ([]string, error) {
	nombres := make([]string, 0, len(m.records))
	for _, p := range m.records {
		nombres = append(nombres, p.Nombre)
	}
	return nombres, nil
}

func (m *memPersonalRepo) Create(_ context.Context, nombre string) (uint64, error) {
	p := entities.Personal{ID: m.nextID, Nombre: nombre}
	m.records = append(m.records, p)
	m.nextID++
	return p.ID, nil
}

func (m *memPersonalRepo) Update(_ context.Context, id uint64, nombre string) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Nombre = nombre
		}
	}
	return nil
}

func (m *memPersonalRepo) Delete(_ context.Context, id uint64) error {
	kept := m.records[:0]
	for _, p := range m.records {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.records = kept
	return nil
}

func newPersonalTestEnv(t *testing.T) (ctrl *PersonalController, tecnicos, ingenieros *memPersonalRepo) {
	t.Helper()
	tecnicos, ingenieros = newMemPersonalRepo(), newMemPersonalRepo()
	svc := services.NewPersonalService(tecnicos, ingenieros, zap.NewNop())
	return NewPersonalController(svc, zap.NewNop()), tecnicos, ingenieros
}

func TestAddTechnicianHandler(t *testing.T) {
	e := newTestEcho(t)
	ctrl, tecnicos, ingenieros := newPersonalTestEnv(t)

	c, rec := jsonRequest(e, http.MethodPost, "/add-technician", `{"technicianName": "Pedro"}`)
	require.NoError(t, ctrl.AddTechnician(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Technician added successfully", rec.Body.String())
	require.Len(t, tecnicos.records, 1)
	assert.Empty(t, ingenieros.records)

	c, rec = jsonRequest(e, http.MethodPost, "/add-technician", `{"technicianName": "   "}`)
	require.NoError(t, ctrl.AddTechnician(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid technician name", rec.Body.String())
	assert.Len(t, tecnicos.records, 1)
}

func TestViewDataHandler(t *testing.T) {
	e := newTestEcho(t)
	ctrl, tecnicos, ingenieros := newPersonalTestEnv(t)
	_, err := tecnicos.Create(context.Background(), "Pedro")
	require.NoError(t, err)
	_, err = ingenieros.Create(context.Background(), "Lucía")
	require.NoError(t, err)

	c, rec := jsonRequest(e, http.MethodGet, "/view-data", "")
	require.NoError(t, ctrl.ViewData(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data dto.ViewDataDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	require.Len(t, data.Technicians, 1)
	require.Len(t, data.Engineers, 1)
	assert.Equal(t, "Pedro", data.Technicians[0].Nombre)
	assert.Equal(t, "Lucía", data.Engineers[0].Nombre)
}

func TestEditAndDeleteEngineerHandlers(t *testing.T) {
	e := newTestEcho(t)
	ctrl, _, ingenieros := newPersonalTestEnv(t)
	_, err := ingenieros.Create(context.Background(), "Lucía")
	require.NoError(t, err)

	c, rec := jsonRequest(e, http.MethodPost, "/edit-engineer", `{"id": 1, "name": "Lucía M."}`)
	require.NoError(t, ctrl.EditEngineer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Engineer updated successfully", rec.Body.String())
	assert.Equal(t, "Lucía M.", ingenieros.records[0].Nombre)

	c, rec = jsonRequest(e, http.MethodPost, "/delete-engineer", `{"id": 1}`)
	require.NoError(t, ctrl.DeleteEngineer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Engineer deleted successfully", rec.Body.String())
	assert.Empty(t, ingenieros.records)
}
