package models

// AdminAccessCode marks an administrator session. Every other code is the
// restricted responder role.
const AdminAccessCode = 127

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleResponder Role = "responder"
)

// Credentials is what the login endpoint returns and what the session persists.
type Credentials struct {
	Token      string `json:"token"`
	UserID     string `json:"userid"`
	AccessCode int    `json:"accesscode"`
}

func (c Credentials) IsAdmin() bool {
	return c.AccessCode == AdminAccessCode
}

func (c Credentials) Role() Role {
	if c.IsAdmin() {
		return RoleAdmin
	}
	return RoleResponder
}
