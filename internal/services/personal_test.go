package services

import (
	"context"
	"sync"
	"testing"

	"movilab/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePersonalRepo struct {
	mu      sync.Mutex
	nextID  uint64
	records map[uint64]string
}

func newFakePersonalRepo() *fakePersonalRepo {
	return &fakePersonalRepo{nextID: 1, records: map[uint64]string{}}
}

func (f *fakePersonalRepo) GetAll(context.Context) ([]entities.Personal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Personal, 0, len(f.records))
	for id := uint64(1); id < f.nextID; id++ {
		if nombre, ok := f.records[id]; ok {
			out = append(out, entities.Personal{ID: id, Nombre: nombre})
		}
	}
	return out, nil
}

func (f *fakePersonalRepo) GetNombres(ctx context.Context) ([]string, error) {
	all, _ := f.GetAll(ctx)
	nombres := make([]string, 0, len(all))
	for _, p := range all {
		nombres = append(nombres, p.Nombre)
	}
	return nombres, nil
}

func (f *fakePersonalRepo) Create(_ context.Context, nombre string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.records[id] = nombre
	f.nextID++
	return id, nil
}

func (f *fakePersonalRepo) Update(_ context.Context, id uint64, nombre string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; ok {
		f.records[id] = nombre
	}
	return nil
}

func (f *fakePersonalRepo) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, id)
	return nil
}

func TestPersonalService(t *testing.T) {
	tecnicos := newFakePersonalRepo()
	ingenieros := newFakePersonalRepo()
	svc := NewPersonalService(tecnicos, ingenieros, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateTecnico(ctx, "Ana")
	require.NoError(t, err)
	id, err := svc.CreateTecnico(ctx, "Luis")
	require.NoError(t, err)
	_, err = svc.CreateIngeniero(ctx, "Marta")
	require.NoError(t, err)

	t.Run("view data lists both registries", func(t *testing.T) {
		data, err := svc.GetViewData(ctx)
		require.NoError(t, err)
		assert.Len(t, data.Technicians, 2)
		assert.Len(t, data.Engineers, 1)
		assert.Equal(t, "Marta", data.Engineers[0].Nombre)
	})

	t.Run("names listing keeps insertion order", func(t *testing.T) {
		nombres, err := svc.GetNombresTecnicos(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana", "Luis"}, nombres)
	})

	t.Run("update and delete by id", func(t *testing.T) {
		require.NoError(t, svc.UpdateTecnico(ctx, id, "Luis B."))
		nombres, _ := svc.GetNombresTecnicos(ctx)
		assert.Contains(t, nombres, "Luis B.")

		require.NoError(t, svc.DeleteTecnico(ctx, id))
		nombres, _ = svc.GetNombresTecnicos(ctx)
		assert.NotContains(t, nombres, "Luis B.")
	})

	t.Run("empty registries yield empty slices, not nil", func(t *testing.T) {
		empty := NewPersonalService(newFakePersonalRepo(), newFakePersonalRepo(), zap.NewNop())
		data, err := empty.GetViewData(ctx)
		require.NoError(t, err)
		assert.NotNil(t, data.Technicians)
		assert.NotNil(t, data.Engineers)
		assert.Empty(t, data.Technicians)
	})
}
