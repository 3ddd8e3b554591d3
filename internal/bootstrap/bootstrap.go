package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/pathwayplanner/planner/internal/app/controllers"
	appMigrations "github.com/pathwayplanner/planner/internal/app/migrations"
	appRepos "github.com/pathwayplanner/planner/internal/app/repositories"
	appRoutes "github.com/pathwayplanner/planner/internal/app/routes"
	appServices "github.com/pathwayplanner/planner/internal/app/services"
	"github.com/pathwayplanner/planner/internal/config"
	"github.com/pathwayplanner/planner/internal/db"
	appMiddleware "github.com/pathwayplanner/planner/internal/middleware"
	"github.com/pathwayplanner/planner/internal/pkg/helpers"
	"github.com/pathwayplanner/planner/internal/pkg/logger"
	"github.com/pathwayplanner/planner/internal/planner"
	"github.com/pathwayplanner/planner/internal/seed"
)

// DefaultConfigPath is used when PLANNER_CONFIG is not set
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

const defaultVerifyTimeout = 10 * time.Second

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService        appServices.CatalogService
	CourseService         appServices.CourseService
	RequirementService    appServices.RequirementService
	PlannerService        appServices.PlannerService
	CatalogController     *appControllers.CatalogController
	CourseController      *appControllers.CourseController
	RequirementController *appControllers.RequirementController
	PlannerController     *appControllers.PlannerController
	Repos                 *appRepos.Repositories
	Engine                *planner.Engine
	Logger                zerolog.Logger
}

// ConfigPath resolves the configuration file location
func ConfigPath() string {
	if p := os.Getenv("PLANNER_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Server.MigrationsPath
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Server.SeedDefaults {
		if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbConn appRepos.DBTX, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbConn)

	store := appServices.NewPlannerStore(deps.Repos.CourseRepository, deps.Repos.PrerequisiteRepository)
	deps.Engine = planner.NewEngine(store, store, planner.Options{
		MaxChainDepth:     cfg.Planner.MaxChainDepth,
		LookupConcurrency: cfg.Planner.LookupConcurrency,
	}, lgr)

	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CollegeRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.RequirementService = appServices.NewRequirementService(
		deps.Repos.CollegeRepository,
		deps.Repos.DegreeRequirementRepository,
		store,
		cfg.Planner.LookupConcurrency,
	)
	deps.PlannerService = appServices.NewPlannerService(
		deps.Engine,
		helpers.ParseDuration(cfg.Planner.VerifyTimeout, defaultVerifyTimeout),
		lgr,
	)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.RequirementController = appControllers.NewRequirementController(deps.RequirementService)
	deps.PlannerController = appControllers.NewPlannerController(deps.PlannerService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Catalog:     deps.CatalogController,
		Course:      deps.CourseController,
		Requirement: deps.RequirementController,
		Planner:     deps.PlannerController,
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
