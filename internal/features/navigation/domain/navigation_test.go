package domain

import (
	"testing"

	authdomain "tracksolutions/internal/features/auth/domain"

	"github.com/stretchr/testify/assert"
)

func urls(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.URL)
	}
	return out
}

func TestEntriesFor_Admin(t *testing.T) {
	got := urls(EntriesFor(authdomain.RoleAdmin))
	assert.Equal(t, []string{
		"/dashboard", "/entregas", "/rotas",
		"/entregadores", "/transportadoras",
		"/configuracoes", "/ajuda",
	}, got)
}

func TestEntriesFor_TransportCompany(t *testing.T) {
	got := urls(EntriesFor(authdomain.RoleTransportCompany))
	assert.Contains(t, got, "/entregadores")
	assert.NotContains(t, got, "/transportadoras")
}

func TestEntriesFor_Driver(t *testing.T) {
	got := urls(EntriesFor(authdomain.RoleDriver))
	assert.Equal(t, []string{
		"/dashboard", "/entregas", "/rotas",
		"/configuracoes", "/ajuda",
	}, got)
	assert.NotContains(t, got, "/entregadores")
	assert.NotContains(t, got, "/transportadoras")
}

// An unknown role falls back to the base entries only.
func TestEntriesFor_UnknownRole(t *testing.T) {
	got := urls(EntriesFor(authdomain.Role("ghost")))
	assert.NotContains(t, got, "/entregadores")
	assert.NotContains(t, got, "/transportadoras")
}
