package domain

import authdomain "tracksolutions/internal/features/auth/domain"

// Entry is one navigation item the client renders in the side menu.
type Entry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EntriesFor returns the ordered navigation entries visible to a role.
// It is an allow-list: base entries for everyone, driver management for
// admins and transport companies, company management for admins only.
// Hiding an entry is advisory; route-level authorization still applies.
func EntriesFor(role authdomain.Role) []Entry {
	entries := []Entry{
		{Title: "Dashboard", URL: "/dashboard"},
		{Title: "Entregas", URL: "/entregas"},
		{Title: "Rotas", URL: "/rotas"},
	}

	switch role {
	case authdomain.RoleAdmin:
		entries = append(entries,
			Entry{Title: "Entregadores", URL: "/entregadores"},
			Entry{Title: "Transportadoras", URL: "/transportadoras"},
		)
	case authdomain.RoleTransportCompany:
		entries = append(entries,
			Entry{Title: "Entregadores", URL: "/entregadores"},
		)
	}

	return append(entries, SupportEntries()...)
}

// SupportEntries returns the support items shown to every role.
func SupportEntries() []Entry {
	return []Entry{
		{Title: "Configurações", URL: "/configuracoes"},
		{Title: "Ajuda", URL: "/ajuda"},
	}
}
