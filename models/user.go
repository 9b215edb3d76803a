package models

// User represents a registered account.
// It maps to the `users` table in SQLite. PasswordHash holds a one-way bcrypt
// hash, never the plaintext, and is excluded from JSON responses.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}
