package models

// Skill is a tracked skill with a completion percentage, owned by exactly one user.
// Progress is always within [0, 100]; handlers validate and the table CHECK backs it up.
type Skill struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Progress int    `db:"progress" json:"progress"`
	UserID   int64  `db:"user_id" json:"user_id"`
}
