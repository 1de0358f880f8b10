package domain

// User owns accounts, budgets, bills and rewards. The password field holds
// a bcrypt hash, never plaintext.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
}
