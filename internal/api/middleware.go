package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ContextSessionIDKey holds the coach session id resolved from the bearer token.
const ContextSessionIDKey = "sessionID"

// SessionMiddleware resolves the Bearer token to a coach session id.
func SessionMiddleware(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		sessionID, err := sessions.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Session token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid session token")
			}
			return
		}

		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

// MetricsMiddleware records request counts, in-flight requests and latency.
func MetricsMiddleware(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.GaugeRequests.Inc()
		defer m.GaugeRequests.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.CounterRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HistRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// RecoveryMiddleware turns handler panics into 500s and counts them.
func RecoveryMiddleware(m *metrics.Manager) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("http: panic serving %s: %v", c.Request.URL.Path, recovered)
		if m != nil {
			m.CounterHandleRequestPanic.Inc()
		}
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	})
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func getSessionIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextSessionIDKey)
	if !exists {
		return "", errors.New("session ID not found in context")
	}
	id, ok := idRaw.(string)
	if !ok || id == "" {
		return "", errors.New("invalid session ID type in context")
	}
	return id, nil
}
