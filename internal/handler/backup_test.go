package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuFicFac/vibe-writer/internal/domain"
	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/httputil"
)

type fakeBackupService struct {
	lastReq *docsysSvc.BackupRequest
	err     error
}

func (f *fakeBackupService) Export(ctx context.Context, req *docsysSvc.BackupRequest) (*docsysSvc.Archive, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &docsysSvc.Archive{
		FileName:  "alex_vibe_writer_backup_2025-01-31.zip",
		ProfileID: req.ProfileID,
		Data:      []byte("PK\x05\x06zip"),
		CreatedAt: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeBackupService) Preview(ctx context.Context, req *docsysSvc.BackupRequest) (*docsysSvc.Manifest, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &docsysSvc.Manifest{
		FileName:  "alex_vibe_writer_backup_2025-01-31.zip",
		ProfileID: req.ProfileID,
		Entries: []docsysSvc.ManifestEntry{
			{Path: "My Novel", Dir: true},
			{Path: "My Novel/Scene A.md", Size: 7, WordCount: 1},
		},
	}, nil
}

func (f *fakeBackupService) ListProfiles(ctx context.Context, userID string) ([]docsysSvc.ProfileSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []docsysSvc.ProfileSummary{{ID: "P1", Name: "Alex", Projects: 2}}, nil
}

func newTestMux(svc docsysSvc.BackupService) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewBackupHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, httputil.WithUserID(r, "user-1"))
	})
}

func TestDownloadBackup(t *testing.T) {
	svc := &fakeBackupService{}
	rec := httptest.NewRecorder()

	newTestMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/P1/backup", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=alex_vibe_writer_backup_2025-01-31.zip`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK\x05\x06zip", rec.Body.String())
	assert.Equal(t, &docsysSvc.BackupRequest{UserID: "user-1", ProfileID: "P1"}, svc.lastReq)
}

func TestDownloadBackup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("backup: %w", &domain.NotFoundError{Resource: "profile", ID: "P1"}),
			wantStatus: http.StatusNotFound,
			wantDetail: "backup: profile P1 not found",
		},
		{
			name:       "validation",
			err:        fmt.Errorf("%w: profile_id: cannot be blank", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantDetail: "validation failed: profile_id: cannot be blank",
		},
		{
			name:       "packaging",
			err:        &domain.PackagingError{Stage: "limit", Err: fmt.Errorf("archive exceeds size limit")},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "failed to generate backup archive",
		},
		{
			name:       "unexpected",
			err:        fmt.Errorf("load profiles: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestMux(&fakeBackupService{err: tt.err}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/P1/backup", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.wantDetail, problem["detail"])
			assert.EqualValues(t, tt.wantStatus, problem["status"])
		})
	}
}

func TestGetManifest(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestMux(&fakeBackupService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/P1/backup/manifest", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var manifest docsysSvc.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifest))
	assert.Equal(t, "P1", manifest.ProfileID)
	require.Len(t, manifest.Entries, 2)
	assert.True(t, manifest.Entries[0].Dir)
	assert.Equal(t, 1, manifest.Entries[1].WordCount)
}

func TestListProfiles(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestMux(&fakeBackupService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"P1","name":"Alex","projects":2}]`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestMux(&fakeBackupService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
