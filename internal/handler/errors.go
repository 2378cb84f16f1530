package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FuFicFac/vibe-writer/internal/domain"
	"github.com/FuFicFac/vibe-writer/internal/httputil"
)

// handleError converts domain errors to RFC 7807 responses
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	extras := map[string]any{"request_id": httputil.GetRequestID(r)}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, err.Error(), extras)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondErrorWithExtras(w, http.StatusNotFound, err.Error(), extras)
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondErrorWithExtras(w, http.StatusUnauthorized, "unauthorized", extras)
	case errors.Is(err, domain.ErrPackaging):
		logger.Error("backup packaging failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", extras["request_id"],
		)
		httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "failed to generate backup archive", extras)
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", extras["request_id"],
		)
		httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
	}
}
