package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/kuittikone/internal/config"
	domainRepo "github.com/sangkips/kuittikone/internal/domain/repository"
	"github.com/sangkips/kuittikone/internal/presentation/http/handler"
	"github.com/sangkips/kuittikone/internal/presentation/http/middleware"
	"github.com/sangkips/kuittikone/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Warranty *handler.WarrantyHandler
	Receipt  *handler.ReceiptHandler
	Logo     *handler.LogoHandler
	Printer  *handler.PrinterHandler
	Backup   *handler.BackupHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
	// Gatherer backs /metrics; nil skips the endpoint
	Gatherer prometheus.Gatherer
}

// NewRateLimiter builds the per-client limiter from configuration
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.ClientRateLimiter {
	window := time.Duration(cfg.Duration) * time.Second
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfigFor(cfg.Requests, window))
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = NewRateLimiter(deps.Cfg.RateLimit)
	}

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		v1.POST("/auth/login", h.Auth.Login)
		registerPublicRoutes(v1, h, deps)

		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		admin.GET("/auth/me", h.Auth.Me)
		admin.Use(middleware.RequireRole(utils.RoleAdmin))
		registerAdminRoutes(admin, h)
	}

	return router
}

// registerPublicRoutes serves the point-of-sale terminal: reads, composing
// and printing need no token.
func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	profiles := v1.Group("/profiles")
	{
		profiles.GET("", h.Profile.ListProfiles)
		profiles.GET("/active", h.Profile.GetActiveProfile)
		profiles.GET("/:id", h.Profile.GetProfile)
	}

	warranties := v1.Group("/warranties")
	{
		warranties.GET("", h.Warranty.ListWarranties)
		warranties.GET("/:serial", h.Warranty.GetWarranty)
	}

	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.ListJournal)
		receipts.POST("", middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}), h.Receipt.IssueReceipt)
	}

	v1.GET("/settings", h.Settings.GetSettings)

	v1.GET("/logos", h.Logo.ListStyles)
	v1.GET("/logos/:style", h.Logo.RenderLogo)
	v1.GET("/fonts/:style", h.Logo.RenderFont)

	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	admin.PUT("/profiles/:id", h.Profile.PutProfile)
	admin.DELETE("/profiles/:id", h.Profile.DeleteProfile)
	admin.POST("/profiles/:id/activate", h.Profile.ActivateProfile)

	admin.PUT("/settings", h.Settings.UpdateSettings)

	admin.PUT("/warranties/:serial", h.Warranty.PutWarranty)
	admin.DELETE("/warranties/:serial", h.Warranty.DeleteWarranty)

	backups := admin.Group("/backups")
	{
		backups.GET("", h.Backup.ListBackups)
		backups.POST("", h.Backup.CreateBackup)
		backups.POST("/restore", h.Backup.RestoreBackup)
	}
}
