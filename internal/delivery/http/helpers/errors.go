package helpers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"timetableportal/internal/adapters/campusapi"
	"timetableportal/internal/domain"
)

// WriteServiceError maps a service-layer error onto the response envelope:
// local validation failures become 400, upstream-reported failures surface
// their message verbatim as 502, transport failures become a generic 502,
// anything else is a logged 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, verr.Error())
		return
	}
	var apiErr *campusapi.APIError
	if errors.As(err, &apiErr) {
		WriteJSONError(w, http.StatusBadGateway, ErrCodeBadGateway, apiErr.Message)
		return
	}
	if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrNotFound) {
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "session expired or not found")
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	if strings.Contains(err.Error(), "failed to reach upstream api") {
		WriteJSONError(w, http.StatusBadGateway, ErrCodeBadGateway, "could not reach the timetable service")
		return
	}
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
}
