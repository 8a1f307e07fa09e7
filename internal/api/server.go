package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sietse/jobboard/internal/api/handler"
	"github.com/sietse/jobboard/internal/api/middleware"
	"github.com/sietse/jobboard/internal/core/service"
	"github.com/sietse/jobboard/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	accountService *service.AccountService,
	jobService *service.JobService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	secureCookies := cfg.SSLCert != "" && cfg.SSLKey != ""

	// Initialize handlers
	jobHandler := handler.NewJobHandler(jobService)
	sessionHandler := handler.NewSessionHandler(authService, secureCookies)
	registrationHandler := handler.NewRegistrationHandler(accountService, authService, secureCookies)
	tagHandler := handler.NewTagHandler(jobService)
	searchHandler := handler.NewSearchHandler(jobService)

	authMiddleware := middleware.AuthMiddleware(authService)
	guestMiddleware := middleware.GuestMiddleware(authService)

	// Public routes
	router.GET("/", jobHandler.ListJobs)
	router.GET("/search", searchHandler.Search)
	router.GET("/tags/:name", tagHandler.ShowTag)

	// Uploaded employer logos
	router.Static("/uploads", cfg.UploadDir)

	// Guest-only routes
	guest := router.Group("")
	guest.Use(guestMiddleware)
	{
		guest.GET("/register", registrationHandler.CreateForm)
		guest.POST("/register", registrationHandler.Store)
		guest.GET("/login", sessionHandler.CreateForm)
		guest.POST("/login", sessionHandler.Store)
	}

	// Session teardown
	router.DELETE("/logout", authMiddleware, sessionHandler.Destroy)

	// Jobs
	jobs := router.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/create", authMiddleware, jobHandler.CreateForm)
		jobs.POST("", authMiddleware, jobHandler.StoreJob)
		jobs.GET("/:id", jobHandler.ShowJob)
		jobs.GET("/:id/edit", authMiddleware, jobHandler.EditForm)
		jobs.PUT("/:id", authMiddleware, jobHandler.UpdateJob)
		jobs.DELETE("/:id", authMiddleware, jobHandler.DestroyJob)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
