package domain

import "time"

// Operational roles, as stored by the gym API gateway.
const (
	RoleFundador      = "fundador"
	RoleGerente       = "gerente"
	RoleAdministrador = "administrador"
	RoleCliente       = "cliente"
)

// User types distinguishing how an identity was resolved.
const (
	// UserTypeStaff marks accounts authenticated against the staff login endpoint.
	UserTypeStaff = "usuario"
	// UserTypeCliente marks membership holders matched by name against the client roster.
	UserTypeCliente = "cliente"
)

// Record is an opaque upstream payload. Field names vary between gym API
// services (role vs rol, nombre vs username), so records pass through
// untouched and are only interpreted at the identity normalization boundary.
type Record map[string]any

// Str reads a string field, returning "" when absent or not a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Identity is the resolved, authenticated actor in the dashboard.
// Every resolved Identity carries at least one of Role/UserType so the view
// dispatch is unambiguous.
type Identity struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	UserType string `json:"userType,omitempty"`
	// Profile carries the rest of the upstream record (email, phone,
	// membership type, ...) for display purposes only.
	Profile Record `json:"profile,omitempty"`
}

// IsClient reports whether the identity routes to the client dashboard.
// The client check wins over any staff role the record also carries.
func (i Identity) IsClient() bool {
	return i.UserType == UserTypeCliente || i.Role == RoleCliente
}

// Session is one authenticated dashboard session: the resolved Identity plus
// the upstream bearer token when the staff login endpoint issued one.
type Session struct {
	ID            string    `json:"id"`
	Identity      Identity  `json:"identity"`
	UpstreamToken string    `json:"upstreamToken,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
