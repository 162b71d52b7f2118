package server

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

const webhookSecretHeader = "X-Webhook-Secret"

// RequireWebhookSecret admits requests carrying the configured secret. With
// no secret configured the route does not exist.
func (s *Server) RequireWebhookSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.webhookSecret == "" {
			http.NotFound(w, r)
			return
		}
		got := r.Header.Get(webhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.webhookSecret)) != 1 {
			s.logger.Warn("Rejected webhook", zap.String("client_ip", r.RemoteAddr))
			s.writeJSON(w, http.StatusUnauthorized, apiError{Error: "invalid webhook secret"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleContentfulWebhook purges cached content after a publish.
func (s *Server) HandleContentfulWebhook(w http.ResponseWriter, r *http.Request) {
	topic := r.Header.Get("X-Contentful-Topic")
	if err := s.content.Invalidate(r.Context()); err != nil {
		s.logger.Error("Failed to invalidate content cache", zap.String("topic", topic), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to invalidate cache"})
		return
	}
	s.logger.Info("Content cache invalidated", zap.String("topic", topic))
	w.WriteHeader(http.StatusNoContent)
}
