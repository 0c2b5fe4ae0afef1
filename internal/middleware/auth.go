package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
)

// SessionSource reports the current admin session
type SessionSource interface {
	Session() (*models.Admin, bool)
}

// RequireAdmin rejects requests with 403 unless admin mode is active
func RequireAdmin(sessions SessionSource, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, adminMode := sessions.Session(); !adminMode {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				if err := json.NewEncoder(w).Encode(map[string]string{"error": "Forbidden: admin login required"}); err != nil {
					logger.Error("failed to encode error response", "error", err)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
