package cli

import (
	"fmt"

	"github.com/sietse/jobboard/internal/core/repository"
	"github.com/sietse/jobboard/internal/core/service"
	"github.com/sietse/jobboard/internal/infrastructure/sqlite"
	"github.com/sietse/jobboard/internal/infrastructure/storage"
	"github.com/sietse/jobboard/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Jobboard - job listing board with employer accounts",
	Long: `Jobboard is a small job board service.

It provides:
- Job listings with employer profiles and tags
- User registration with employer creation and logo upload
- Session-based authentication
- Text search and tag filtering
- REST API for a frontend`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/jobboard/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)
	employerRepo := sqlite.NewEmployerRepository(db)
	accountRepo := sqlite.NewAccountRepository(db)
	jobRepo := sqlite.NewJobRepository(db)
	tagRepo := sqlite.NewTagRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)

	// Initialize file storage
	logoStore := storage.NewLogoStore(cfg.UploadDir)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	accountService := service.NewAccountService(accountRepo, userRepo, logoStore, authService)
	jobService := service.NewJobService(jobRepo, employerRepo, tagRepo)

	return &Services{
		DB:             db,
		UserRepo:       userRepo,
		AccountRepo:    accountRepo,
		EmployerRepo:   employerRepo,
		JobRepo:        jobRepo,
		TagRepo:        tagRepo,
		SessionRepo:    sessionRepo,
		LogoStore:      logoStore,
		AuthService:    authService,
		AccountService: accountService,
		JobService:     jobService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB             *sqlite.DB
	UserRepo       repository.UserRepository
	AccountRepo    repository.AccountRepository
	EmployerRepo   repository.EmployerRepository
	JobRepo        repository.JobRepository
	TagRepo        repository.TagRepository
	SessionRepo    repository.SessionRepository
	LogoStore      *storage.LogoStore
	AuthService    *service.AuthService
	AccountService *service.AccountService
	JobService     *service.JobService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
