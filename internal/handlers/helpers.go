package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

// maxBodyBytes caps request bodies; the largest payload is a menu item
const maxBodyBytes = 64 << 10

var errInvalidBody = errors.New("invalid request body")

// decodeJSON reads the request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidPrepTime),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrDuplicateID),
		errors.Is(err, service.ErrOrderCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err with the status it maps to.
// Unexpected errors are logged and hidden from the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		WriteError(w, status, "Internal server error", logger)
		return
	}

	logger.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err)
	WriteError(w, status, err.Error(), logger)
}
