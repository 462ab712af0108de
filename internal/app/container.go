package app

import (
	"context"
	"fmt"
	"time"

	"project-recommender/internal/config"
	"project-recommender/internal/database"
	"project-recommender/internal/database/migration"
	dbpostgres "project-recommender/internal/database/postgres"
	"project-recommender/internal/database/seeder"
	"project-recommender/internal/infrastructure/cache"
	"project-recommender/internal/pkg/jwt"
	"project-recommender/internal/pkg/logger"
	"project-recommender/internal/repository"
	"project-recommender/internal/usecase"
	"project-recommender/internal/ws"
)

// Container owns the process-wide collaborators: connections, repositories,
// usecases and the live feed hub.
type Container struct {
	Config config.Config
	Log    *logger.Logger
	DB     database.DB
	Redis  *cache.Redis
	JWT    jwt.Service
	Hub    *ws.Hub

	Auth            usecase.AuthUsecase
	Students        usecase.StudentUsecase
	Skills          usecase.SkillUsecase
	Projects        usecase.ProjectUsecase
	Recommendations usecase.RecommendationUsecase
}

// NewDatabaseContainer connects to Postgres only. The migrate and seed
// commands use it.
func NewDatabaseContainer(cfg config.Config, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return &Container{Config: cfg, Log: log, DB: db}, nil
}

func NewContainer(cfg config.Config, log *logger.Logger) (*Container, error) {
	c, err := NewDatabaseContainer(cfg, log)
	if err != nil {
		return nil, err
	}
	db := c.DB
	log = c.Log

	if cfg.Database.RunMigrations {
		if err := c.Migrate(context.Background()); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	if cfg.Database.RunSeeders {
		if err := c.Seed(context.Background()); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Redis = cache.NewRedis(ctx, cfg.Redis, log)
	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	c.Hub = ws.NewHub(log)

	students := repository.NewPostgresStudentRepository(db)
	studentSkills := repository.NewPostgresStudentSkillRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	projects := repository.NewPostgresProjectRepository(db)
	projectSkills := repository.NewPostgresProjectSkillRepository(db)

	throttle := usecase.NewLoginThrottle(c.Redis, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockWindow, log)

	c.Auth = usecase.NewAuthUsecase(students, studentSkills, c.JWT, throttle)
	c.Students = usecase.NewStudentUsecase(students, studentSkills)
	c.Skills = usecase.NewSkillUsecase(skills)
	c.Projects = usecase.NewProjectUsecase(projects, projectSkills, ws.NewProjectNotifier(c.Hub))
	c.Recommendations = usecase.NewRecommendationUsecase(students, studentSkills, projects, projectSkills)

	return c, nil
}

// Migrate applies pending schema migrations.
func (c *Container) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	applied, err := migration.Runner{}.Run(ctx, c.DB.SQLDB())
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	for _, m := range applied {
		c.Log.Info("migration applied", "version", m.Version, "name", m.Name)
	}
	return nil
}

// Seed loads the default skills catalogue and sample projects.
func (c *Container) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	c.Log.Info("seeders completed")
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
