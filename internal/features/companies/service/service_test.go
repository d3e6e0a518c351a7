package service

import (
	"testing"

	"tracksolutions/internal/core/registry"
	"tracksolutions/internal/features/companies/domain"
	"tracksolutions/internal/features/companies/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *CompanyServiceImpl {
	return NewCompanyService(NewSeededStore())
}

func validInput() domain.Input {
	return domain.Input{
		Name:            "Nova Carga Express",
		CNPJ:            "11.222.333/0001-44",
		Email:           "contato@novacarga.com",
		Phone:           "(41) 4000-5000",
		Address:         "Rua do Porto, 88",
		City:            "Curitiba",
		State:           "pr",
		ResponsibleName: "Beatriz Nunes",
	}
}

func TestCompanyService_List(t *testing.T) {
	svc := newService()

	assert.Len(t, svc.List(ports.ListQuery{}), 3)

	got := svc.List(ports.ListQuery{Status: "Ativa"})
	require.Len(t, got, 1)
	assert.Equal(t, "COMP001", got[0].ID)

	got = svc.List(ports.ListQuery{Search: "veloz"})
	require.Len(t, got, 1)
	assert.Equal(t, "COMP002", got[0].ID)
}

func TestCompanyService_Create(t *testing.T) {
	t.Run("NormalizesState", func(t *testing.T) {
		svc := newService()

		created, err := svc.Create(validInput())
		require.NoError(t, err)
		assert.Equal(t, "COMP004", created.ID)
		assert.Equal(t, "PR", created.State)
		assert.Equal(t, domain.StatusPendente, created.Status)
	})

	t.Run("RejectsBadCNPJ", func(t *testing.T) {
		svc := newService()
		before := len(svc.List(ports.ListQuery{}))

		in := validInput()
		in.CNPJ = "11222333000144"
		_, err := svc.Create(in)

		var verr *registry.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, svc.List(ports.ListQuery{}), before)
	})
}

func TestCompanyService_Update(t *testing.T) {
	svc := newService()

	in := validInput()
	in.Status = domain.StatusAtiva
	updated, err := svc.Update("COMP002", in)
	require.NoError(t, err)
	assert.Equal(t, "COMP002", updated.ID)
	assert.Equal(t, domain.StatusAtiva, updated.Status)

	_, err = svc.Update("COMP999", validInput())
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestCompanyService_Delete(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.Delete("COMP001"))
	for _, c := range svc.List(ports.ListQuery{}) {
		assert.NotEqual(t, "COMP001", c.ID)
	}
}
