package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"counsellor-backend/internal/shared/server/respond"
	"counsellor-backend/internal/shared/telemetry"
)

const (
	apiKeyKey    = "apiKey"
	anonymousKey = "isAnonymous"

	// AnonymousCaller identifies requests admitted without an API key.
	AnonymousCaller = "anonymous"
)

// APIKeyAuthConfig controls API key validation.
type APIKeyAuthConfig struct {
	ValidKeys      []string
	AllowAnonymous bool
}

// APIKeyAuth validates the X-API-Key header against a static allow-list and
// stores the caller identity in context. Requests without a key pass as
// "anonymous" when AllowAnonymous is set.
func APIKeyAuth(cfg APIKeyAuthConfig) gin.HandlerFunc {
	valid := make(map[string]struct{}, len(cfg.ValidKeys))
	for _, k := range cfg.ValidKeys {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			valid[trimmed] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		apiKey := strings.TrimSpace(c.GetHeader("X-API-Key"))
		if apiKey == "" {
			if cfg.AllowAnonymous {
				telemetry.Warn("auth.anonymous", map[string]any{
					"request_id": RequestIDFromContext(c),
					"path":       c.Request.URL.Path,
				})
				c.Set(apiKeyKey, AnonymousCaller)
				c.Set(anonymousKey, true)
				c.Next()
				return
			}
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "API key required", nil)
			return
		}

		if _, ok := valid[apiKey]; !ok {
			telemetry.Warn("auth.invalid_key", map[string]any{
				"request_id": RequestIDFromContext(c),
				"key_prefix": keyPrefix(apiKey),
			})
			respond.Error(c, http.StatusForbidden, "forbidden", "Invalid API key", nil)
			return
		}

		c.Set(apiKeyKey, apiKey)
		c.Set(anonymousKey, false)
		c.Next()
	}
}

// APIKeyFromContext fetches the caller identity set by APIKeyAuth.
func APIKeyFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(apiKeyKey)
	if key, ok := val.(string); ok {
		return key
	}
	return ""
}

// IsAnonymous reports whether the caller was admitted without an API key.
func IsAnonymous(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get(anonymousKey)
	anon, _ := val.(bool)
	return anon
}

func keyPrefix(apiKey string) string {
	if len(apiKey) <= 10 {
		return apiKey
	}
	return apiKey[:10] + "..."
}
