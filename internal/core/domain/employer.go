package domain

import "time"

// Employer is the company profile owned by exactly one user. All jobs
// a user posts are created under their employer.
type Employer struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	Logo      string    `db:"logo"` // path relative to the upload dir
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewEmployer(userID int64, name, logoPath string) *Employer {
	now := time.Now()
	return &Employer{
		UserID:    userID,
		Name:      name,
		Logo:      logoPath,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
