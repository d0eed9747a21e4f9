package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
	"resume-builder/internal/users"
)

// RouterDeps carries the handlers mounted by NewRouter. Nil handlers are skipped.
type RouterDeps struct {
	Config          config.Config
	Verifier        middleware.TokenVerifier
	Health          *health.Service
	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from Resume Maker Backend!")
	})
	r.GET("/health", func(c *gin.Context) {
		st, ok := deps.Health.Check(c.Request.Context())
		if !ok {
			respond.JSON(c, http.StatusServiceUnavailable, st)
			return
		}
		respond.OK(c, st)
	})
	r.GET("/metrics", metrics.Handler())

	if deps.TemplateHandler != nil {
		deps.TemplateHandler.RegisterRoutes(r.Group("/templates"))
	}

	authMW := middleware.Auth(deps.Verifier, deps.Config.AllowGuests)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(r.Group("/auth"))
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(r.Group("/auth", authMW))
	}

	if deps.ResumeHandler != nil {
		resumeGroup := r.Group("/resume", authMW, middleware.RateLimit(resumeRateLimit(deps)))
		deps.ResumeHandler.RegisterRoutes(resumeGroup)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "Route not found", nil)
	})

	return r
}

// Reads get a larger budget than writes.
func resumeRateLimit(deps RouterDeps) middleware.RateLimitConfig {
	rps := deps.Config.RateLimitRPS
	burst := deps.Config.RateLimitBurst
	return middleware.RateLimitConfig{
		DefaultGroup: "WRITE",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodGet {
				return "READ"
			}
			return "WRITE"
		},
		Limiter: deps.RateLimiter,
		Rules: map[string]middleware.RateLimitRule{
			"WRITE": {Rate: rps, Burst: burst},
			"READ":  {Rate: rps * 4, Burst: burst * 2},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
