package service

import (
	"testing"
	"time"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/routeplans/domain"
	"tracksolutions/internal/features/routeplans/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *RouteServiceImpl {
	return NewRouteService(NewSeededStore())
}

func validInput() domain.Input {
	return domain.Input{
		Name:          "Rota Norte - Manhã",
		Deliveries:    []string{"DEL002"},
		PlannedDate:   time.Date(2024, time.July, 29, 0, 0, 0, 0, time.UTC),
		StartLocation: "Depósito Norte",
		EndLocation:   "Zona Norte",
	}
}

func TestRouteService_List(t *testing.T) {
	svc := newService()

	assert.Len(t, svc.List(ports.ListQuery{}), 3)
	assert.Len(t, svc.List(ports.ListQuery{Status: "all"}), 3)

	got := svc.List(ports.ListQuery{Status: "Em Andamento"})
	require.Len(t, got, 1)
	assert.Equal(t, "ROT001", got[0].ID)

	got = svc.List(ports.ListQuery{Search: "urgente"})
	require.Len(t, got, 1)
	assert.Equal(t, "ROT003", got[0].ID)
}

func TestRouteService_Create(t *testing.T) {
	t.Run("DefaultsToPlanned", func(t *testing.T) {
		svc := newService()

		created, err := svc.Create(validInput())
		require.NoError(t, err)
		assert.Equal(t, "ROT004", created.ID)
		assert.Equal(t, domain.StatusPlanejada, created.Status)
		assert.Nil(t, created.Progress)

		got := svc.List(ports.ListQuery{})
		assert.Equal(t, created.ID, got[0].ID)
	})

	t.Run("ProgressDroppedWhenNotUnderway", func(t *testing.T) {
		svc := newService()

		in := validInput()
		half := 50
		in.Progress = &half
		created, err := svc.Create(in)
		require.NoError(t, err)
		assert.Nil(t, created.Progress)
	})

	t.Run("ProgressKeptWhileUnderway", func(t *testing.T) {
		svc := newService()

		in := validInput()
		half := 50
		in.Progress = &half
		in.Status = domain.StatusEmAndamento
		created, err := svc.Create(in)
		require.NoError(t, err)
		require.NotNil(t, created.Progress)
		assert.Equal(t, 50, *created.Progress)
	})

	t.Run("RequiresDeliveries", func(t *testing.T) {
		svc := newService()
		before := len(svc.List(ports.ListQuery{}))

		in := validInput()
		in.Deliveries = []string{}
		_, err := svc.Create(in)

		var verr *registry.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, svc.List(ports.ListQuery{}), before)
	})
}

func TestRouteService_Update(t *testing.T) {
	svc := newService()

	in := validInput()
	in.Status = domain.StatusConcluida
	updated, err := svc.Update("ROT001", in)
	require.NoError(t, err)

	assert.Equal(t, "ROT001", updated.ID)
	require.NotNil(t, updated.Progress)
	assert.Equal(t, 100, *updated.Progress, "concluded routes pin progress to 100")
	assert.Equal(t, time.Date(2024, time.July, 27, 0, 0, 0, 0, time.UTC), updated.CreatedAt)

	_, err = svc.Update("ROT999", validInput())
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestRouteService_Delete(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.Delete("ROT002"))
	for _, r := range svc.List(ports.ListQuery{}) {
		assert.NotEqual(t, "ROT002", r.ID)
	}

	assert.ErrorIs(t, svc.Delete("ROT002"), registry.ErrNotFound)
}
