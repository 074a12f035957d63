package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/config"
)

var (
	defaultCORSOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://127.0.0.1:3000",
	}
	defaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Request-ID"}

	// request headers the receipt API reads
	requiredCORSHeaders = []string{IdempotencyKeyHeader}

	// response headers a till front end needs to see
	exposedCORSHeaders = []string{
		"Content-Length",
		"Content-Type",
		"Content-Disposition",
		"X-Request-ID",
		"X-Idempotency-Replayed",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
	}
)

// CORSMiddleware creates a CORS middleware with the provided configuration
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(buildCORSConfig(cfg))
}

// buildCORSConfig fills unset values with defaults. Auth uses bearer tokens,
// so credentials are never allowed; "*" switches to any origin.
func buildCORSConfig(cfg *config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  cfg.AllowedMethods,
		AllowHeaders:  cfg.AllowedHeaders,
		ExposeHeaders: exposedCORSHeaders,
		MaxAge:        12 * time.Hour,
	}

	if len(out.AllowOrigins) == 0 {
		out.AllowOrigins = defaultCORSOrigins
	}
	for _, o := range out.AllowOrigins {
		if o == "*" {
			out.AllowAllOrigins = true
			out.AllowOrigins = nil
			break
		}
	}
	if len(out.AllowMethods) == 0 {
		out.AllowMethods = defaultCORSMethods
	}
	if len(out.AllowHeaders) == 0 {
		out.AllowHeaders = append([]string(nil), defaultCORSHeaders...)
	}
	for _, h := range requiredCORSHeaders {
		if !containsFold(out.AllowHeaders, h) {
			out.AllowHeaders = append(out.AllowHeaders, h)
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
