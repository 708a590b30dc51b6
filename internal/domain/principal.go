package domain

// Principal is an authenticable identity, stored per kind (user or admin).
// Usernames are unique within a kind and compared case-insensitively.
type Principal struct {
	Username     string
	PasswordHash string
}
