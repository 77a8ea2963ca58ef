package models

// User is an account record as returned by the admin-only GET /users.
// The dashboard only ever counts these.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
