// Package bootstrap wires configuration, storage, services, and the HTTP
// router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/analysis"
	"comply-backend/internal/regulations"
	"comply-backend/internal/reports"
	"comply-backend/internal/shared/config"
	"comply-backend/internal/shared/server"
	"comply-backend/internal/shared/storage/db"
	"comply-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Repo            reports.Repo
	RulesService    *regulations.Service
	AnalysisService *analysis.Service
}

// Build prepares dependencies and registers all routes.
func Build(cfg config.Config) (*App, error) {
	sqlDB := buildDB(cfg)

	var repo reports.Repo
	if sqlDB != nil {
		repo = &reports.PGRepo{DB: sqlDB}
	} else {
		jsonRepo, err := reports.NewJSONRepo(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		repo = jsonRepo
	}

	rulesSvc := regulations.NewService(cfg.RegulationsDir)
	analysisSvc := analysis.NewService(cfg.FormsDir, rulesSvc, repo, reports.NewRandomAssessor(), cfg.AnalysisStagePause)

	engine := server.NewEngine(cfg)
	api := server.APIGroup(engine)
	regulations.NewHandler(rulesSvc).RegisterRoutes(api)
	reports.NewHandler(repo).RegisterRoutes(api)
	analysis.NewHandler(analysisSvc).RegisterRoutes(api)

	return &App{
		Config:          cfg,
		Router:          engine,
		DB:              sqlDB,
		Repo:            repo,
		RulesService:    rulesSvc,
		AnalysisService: analysisSvc,
	}, nil
}

// buildDB connects to Postgres when configured, falling back to the JSON
// file store on any failure so a missing database never blocks analysis.
func buildDB(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("db.connect_failed", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		telemetry.Warn("db.migrate_failed", map[string]any{"error": err.Error()})
		conn.Close()
		return nil
	}
	return conn
}
