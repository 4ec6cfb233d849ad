package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/storage/sqlite"
)

// Server provides HTTP handlers for the task tracker backend.
type Server struct {
	engine    *gin.Engine
	store     *sqlite.Store
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(store *sqlite.Store, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter))

	srv := &Server{
		engine:    router,
		store:     store,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires the welcome, API and static handlers together.
func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleWelcome)

	api := s.engine.Group("/api")
	{
		api.POST("/addtask", s.handleCreateTask)
		api.GET("/tasks", s.handleListTasks)
		api.PUT("/updateStatus/:id", s.handleUpdateStatus)
		api.DELETE("/deleteTask/:id", s.handleDeleteTask)
	}

	s.mountStatic()
}

// handleWelcome answers the plain text health check at the root.
func (s *Server) handleWelcome(c *gin.Context) {
	c.String(http.StatusOK, "welcome to my todo app")
}

// respondError logs the error and returns the JSON failure envelope.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"success": false, "message": err.Error()})
}
