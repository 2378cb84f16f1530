package handler

import "net/http"

// RegisterRoutes adds the backup API to mux (Go 1.22+ route patterns)
func RegisterRoutes(mux *http.ServeMux, h *BackupHandler) {
	mux.HandleFunc("GET /health", h.HealthCheck)

	mux.HandleFunc("GET /api/profiles", h.ListProfiles)
	mux.HandleFunc("GET /api/profiles/{id}/backup", h.DownloadBackup)
	mux.HandleFunc("GET /api/profiles/{id}/backup/manifest", h.GetManifest)
}
