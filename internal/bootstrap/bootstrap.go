package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mertkaya/gradekeeper/internal/app/controllers"
	appMigrations "github.com/mertkaya/gradekeeper/internal/app/migrations"
	appRepos "github.com/mertkaya/gradekeeper/internal/app/repositories"
	appRoutes "github.com/mertkaya/gradekeeper/internal/app/routes"
	appServices "github.com/mertkaya/gradekeeper/internal/app/services"
	"github.com/mertkaya/gradekeeper/internal/config"
	"github.com/mertkaya/gradekeeper/internal/db"
	appMiddleware "github.com/mertkaya/gradekeeper/internal/middleware"
	"github.com/mertkaya/gradekeeper/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService   appServices.FacultyService
	StudentService   appServices.StudentService
	CourseService    appServices.CourseService
	GradeService     appServices.GradeService
	ReportService    appServices.ReportService
	SeedService      appServices.SeedService
	FacultyController *appControllers.FacultyController
	StudentController *appControllers.StudentController
	CourseController  *appControllers.CourseController
	GradeController   *appControllers.GradeController
	ReportController  *appControllers.ReportController
	AdminController   *appControllers.AdminController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSentry initializes Sentry error reporting when a DSN is configured.
func SetupSentry(cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Sentry.DSN == "" {
		lgr.Debug().Msg("Sentry DSN not set, error reporting disabled")
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	lgr.Info().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")
	return nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// RunMigrations applies all pending SQL migrations from the migrations directory.
func RunMigrations(database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.FacultyRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository, deps.Repos.StudentRepository, deps.Repos.CourseRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)
	deps.SeedService = appServices.NewSeedService(database, cfg.Server.Mode, lgr)

	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.AdminController = appControllers.NewAdminController(deps.SeedService)

	return deps, nil
}

// SetupRouter creates the gin engine with middleware and all routes registered.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.CustomRecovery(appMiddleware.RecoveryHandler(lgr)))

	appRoutes.SetupRouter(
		router,
		deps.FacultyController,
		deps.StudentController,
		deps.CourseController,
		deps.GradeController,
		deps.ReportController,
		deps.AdminController,
	)

	return router
}
