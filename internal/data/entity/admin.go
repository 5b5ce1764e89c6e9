package entity

// Admin is the single credential row. No roles, no sessions; the login check
// issues a token and nothing else.
type Admin struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}
