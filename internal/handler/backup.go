package handler

import (
	"context"
	"log/slog"
	"net/http"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/httputil"
)

// BackupHandler handles profile backup HTTP requests
type BackupHandler struct {
	backupService docsysSvc.BackupService
	logger        *slog.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService docsysSvc.BackupService, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// HealthCheck reports that the server is up
// GET /health
func (h *BackupHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListProfiles lists the caller's profiles with project counts
// GET /api/profiles
func (h *BackupHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.backupService.ListProfiles(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profiles)
}

// DownloadBackup builds the profile's backup and sends it as a zip download
// GET /api/profiles/{id}/backup
func (h *BackupHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	archive, err := h.backupService.Export(r.Context(), h.request(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if err := (&responseDeliverer{w: w}).Deliver(r.Context(), archive); err != nil {
		// Headers are already sent; nothing left to tell the client
		h.logger.Warn("backup download interrupted",
			"profile_id", archive.ProfileID,
			"request_id", httputil.GetRequestID(r),
			"error", err,
		)
	}
}

// GetManifest previews the entries of the profile's backup
// GET /api/profiles/{id}/backup/manifest
func (h *BackupHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	manifest, err := h.backupService.Preview(r.Context(), h.request(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, manifest)
}

func (h *BackupHandler) request(r *http.Request) *docsysSvc.BackupRequest {
	return &docsysSvc.BackupRequest{
		UserID:    httputil.GetUserID(r),
		ProfileID: r.PathValue("id"),
	}
}

// responseDeliverer sends an archive as the HTTP response body
type responseDeliverer struct {
	w http.ResponseWriter
}

func (d *responseDeliverer) Deliver(ctx context.Context, archive *docsysSvc.Archive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httputil.RespondAttachment(d.w, "application/zip", archive.FileName, archive.Data)
	return nil
}

var _ docsysSvc.Deliverer = (*responseDeliverer)(nil)
