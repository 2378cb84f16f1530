package docsystem

import (
	"time"
)

type Document struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	FolderID  *string   `json:"folder_id" db:"folder_id"` // NULL = root level of the project
	Name      string    `json:"name" db:"name"`
	Content   *string   `json:"content" db:"content"` // Rich text (HTML) from the editor
	WordCount int       `json:"word_count" db:"word_count"`
	Order     int       `json:"order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsRoot reports whether the document lives directly under its project.
func (d *Document) IsRoot() bool {
	return d.FolderID == nil || *d.FolderID == ""
}
