package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/academico/internal/app/controllers"
	appMigrations "github.com/yigit/academico/internal/app/migrations"
	appRepos "github.com/yigit/academico/internal/app/repositories"
	appRoutes "github.com/yigit/academico/internal/app/routes"
	appServices "github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/config"
	"github.com/yigit/academico/internal/db"
	appMiddleware "github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
	"github.com/yigit/academico/internal/pkg/validation"
	"github.com/yigit/academico/internal/seed"
)

// DefaultConfigPath is where the YAML configuration is looked up
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	AlumnoService       appServices.AlumnoService
	ProfesorService     appServices.ProfesorService
	CarreraService      appServices.CarreraService
	CursoService        appServices.CursoService
	CarreraCursoService appServices.CarreraCursoService
	CicloService        appServices.CicloService
	GrupoService        appServices.GrupoService
	MatriculaService    appServices.MatriculaService
	UsuarioService      appServices.UsuarioService
	Controllers         appRoutes.Controllers
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath, ".env")
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens and pings the connection pool
func ConnectDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// SetupDatabase connects, applies pending migrations when configured to and loads
// the demo catalogue when seeding is enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := ConnectDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.Database.MigrateOnStart {
		lgr.Info().Msg("Running database migrations...")
		migrator, err := appMigrations.NewMigrator(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to prepare migrations: %w", err)
		}
		err = migrator.Up(ctx)
		migrator.Close()
		if err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(dbPool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(pool db.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(pool)

	deps.AlumnoService = appServices.NewAlumnoService(deps.Repos.AlumnoRepository)
	deps.ProfesorService = appServices.NewProfesorService(deps.Repos.ProfesorRepository)
	deps.CarreraService = appServices.NewCarreraService(deps.Repos.CarreraRepository, deps.Repos.CarreraCursoRepository)
	deps.CursoService = appServices.NewCursoService(deps.Repos.CursoRepository)
	deps.CarreraCursoService = appServices.NewCarreraCursoService(deps.Repos.CarreraCursoRepository)
	deps.CicloService = appServices.NewCicloService(deps.Repos.CicloRepository)
	deps.GrupoService = appServices.NewGrupoService(deps.Repos.GrupoRepository)
	deps.MatriculaService = appServices.NewMatriculaService(deps.Repos.MatriculaRepository)
	deps.UsuarioService = appServices.NewUsuarioService(deps.Repos.UsuarioRepository)

	deps.Controllers = appRoutes.Controllers{
		Alumno:       appControllers.NewAlumnoController(deps.AlumnoService),
		Profesor:     appControllers.NewProfesorController(deps.ProfesorService),
		Carrera:      appControllers.NewCarreraController(deps.CarreraService),
		Curso:        appControllers.NewCursoController(deps.CursoService),
		CarreraCurso: appControllers.NewCarreraCursoController(deps.CarreraCursoService),
		Ciclo:        appControllers.NewCicloController(deps.CicloService),
		Grupo:        appControllers.NewGrupoController(deps.GrupoService),
		Matricula:    appControllers.NewMatriculaController(deps.MatriculaService),
		Usuario:      appControllers.NewUsuarioController(deps.UsuarioService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg),
	)
	router.NoRoute(appMiddleware.NoRoute())
	router.NoMethod(appMiddleware.NoMethod())

	appRoutes.SetupRouter(router, deps.Controllers)

	return router, nil
}
