package entities

// Provider identifies how an account was created.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

// Role identifies the access level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account in the system. Password and PhoneNumber are
// only present for local-provider accounts; Avatar only for federated ones.
// JSON field names match the persisted collection format.
type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Password    string   `json:"password,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Role        Role     `json:"role"`
	Provider    Provider `json:"provider"`
	Avatar      string   `json:"avatar,omitempty"`
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Sanitized returns a copy safe to return to API clients (no password).
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
