package sqlite

import (
	"context"
	"fmt"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// ProfileRepository implements docsystem.ProfileRepository for SQLite
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ListByUser retrieves a user's profiles, oldest first
func (r *ProfileRepository) ListByUser(ctx context.Context, userID string) ([]models.Profile, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM profiles
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`

	rows, err := r.db.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ProjectRepository implements docsystem.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByUser retrieves all of a user's projects, ordered by created_at, id
func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	query := `
		SELECT id, user_id, profile_id, name, created_at, updated_at
		FROM projects
		WHERE user_id = ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`

	rows, err := r.db.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.ProfileID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FolderRepository implements docsystem.FolderRepository for SQLite
type FolderRepository struct {
	db *DB
}

// NewFolderRepository creates a new FolderRepository
func NewFolderRepository(db *DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// ListByUser retrieves the folders of every live project the user owns
func (r *FolderRepository) ListByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	query := `
		SELECT f.id, f.project_id, f.name, f.sort_order, f.created_at, f.updated_at
		FROM folders f
		JOIN projects p ON p.id = f.project_id
		WHERE p.user_id = ? AND p.deleted_at IS NULL AND f.deleted_at IS NULL
		ORDER BY f.created_at, f.id
	`

	rows, err := r.db.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Name, &f.Order, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// DocumentRepository implements docsystem.DocumentRepository for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// ListByUser retrieves every live document in the user's live projects
func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	query := `
		SELECT d.id, d.project_id, d.folder_id, d.name, d.content, d.word_count,
		       d.sort_order, d.created_at, d.updated_at
		FROM documents d
		JOIN projects p ON p.id = d.project_id
		WHERE p.user_id = ? AND p.deleted_at IS NULL AND d.deleted_at IS NULL
		ORDER BY d.created_at, d.id
	`

	rows, err := r.db.executor(ctx).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(
			&d.ID, &d.ProjectID, &d.FolderID, &d.Name, &d.Content, &d.WordCount,
			&d.Order, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}
