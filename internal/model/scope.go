package model

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Scope is the authenticated principal attached to a request. Identity and
// session issuance live in an external service; this is the opaque result.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin checks if the scope has the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
