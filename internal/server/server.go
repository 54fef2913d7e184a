package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schoolportal/internal/config"
	"schoolportal/internal/middleware"
	"schoolportal/internal/store"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	store  *store.Store
	logger *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	st, err := store.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firebase: %w", err)
	}

	repos := InitRepositories(st)
	services := InitServices(repos, store.NewFirebaseIdentity(st.Auth), logger)
	handlers := InitHandlers(services)

	router := setupRouter(cfg, handlers, logger)

	return &Server{
		cfg:    cfg,
		router: router,
		store:  st,
		logger: logger,
	}, nil
}

// Close releases the store clients
func (s *Server) Close() error {
	return s.store.Close()
}

// Run starts the server
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.cfg.Server.Address()))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg))

	r.GET("/healthz", h.Health.Check)

	r.POST("/validate-school", h.School.Validate)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.GET("/profile/:email", h.Profile.Get)
	r.POST("/updateProfile", h.Profile.Update)
	r.GET("/students/:email", h.Student.List)
	r.POST("/changeSchoolKey", h.Profile.ChangeSchoolKey)
	r.GET("/opportunities", h.Report.Opportunities)

	return r
}
