package docsystem

import (
	"time"
)

type Project struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ProfileID *string   `json:"profile_id" db:"profile_id"` // NULL = created before profiles existed
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasProfile reports whether the project carries an explicit owning profile.
func (p *Project) HasProfile() bool {
	return p.ProfileID != nil && *p.ProfileID != ""
}
