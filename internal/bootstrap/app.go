package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	sharedauth "resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/templates"
	"resume-builder/internal/users"
)

const devJWTSecret = "dev-only-jwt-secret"

// App holds shared dependencies and the fully wired router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Issuer          *sharedauth.Issuer
	Catalog         *templates.Catalog
	ResumesRepo     resumes.Repo
	UsersRepo       users.Repo
	ResumesService  *resumes.Service
	UsersService    *users.Service
	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
	Health          *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	issuer, err := buildIssuer(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := templates.Load(cfg.TemplateCatalogPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Issuer:  issuer,
		Catalog: catalog,
		Health:  health.NewService(sqlDB),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Verifier:        app.Issuer,
		Health:          app.Health,
		ResumeHandler:   app.ResumeHandler,
		TemplateHandler: app.TemplateHandler,
		UserHandler:     app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
		RateLimiter:     middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_storage", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func buildIssuer(cfg config.Config) (*sharedauth.Issuer, error) {
	secret := cfg.JWTSecret
	if strings.TrimSpace(secret) == "" {
		if !config.IsDevLike(cfg.Env) {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
		telemetry.Warn("bootstrap.dev_jwt_secret", nil)
		secret = devJWTSecret
	}
	return sharedauth.NewIssuer(secret, cfg.JWTTTL)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.ResumesService = &resumes.Service{
		Repo:           app.ResumesRepo,
		InsertAttempts: app.Config.InsertAttempts,
	}
	app.UsersService = users.NewService(app.UsersRepo)

	app.ResumeHandler = resumes.NewHandler(app.ResumesService)
	app.TemplateHandler = templates.NewHandler(app.Catalog)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(googleauth.GoogleConfig{
		ClientID:     app.Config.GoogleClientID,
		ClientSecret: app.Config.GoogleClientSecret,
		RedirectURL:  app.Config.GoogleRedirectURL,
		UIRedirect:   app.Config.UIRedirectURL,
	}, app.Issuer, app.UsersService)
}
