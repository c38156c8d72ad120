package models

// Role identifies which protected view tree a principal may enter.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// Session is the client-held record of the authenticated principal.
// It is persisted as a JSON object under a single durable cookie key;
// everything else in the portal is re-fetched from the booking API.
type Session struct {
	Role        Role   `json:"role"`
	AccessToken string `json:"accessToken"`
	UserID      int64  `json:"userId"`
}

// HomePath returns the landing path for the session's role after login.
func (s Session) HomePath() string {
	if s.Role == RoleAdmin {
		return "/admin"
	}
	return "/"
}
