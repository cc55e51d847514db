package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/api/rest/handler"
	"github.com/dtroode/postfeed-server/internal/api/rest/middleware"
	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

// Config holds the HTTP surface settings the router needs.
type Config struct {
	APIPrefix      string
	MaxPayloadSize int64
}

// Router wires handlers and middleware into a gin engine.
type Router struct {
	cfg            Config
	authService    handler.AuthService
	postService    handler.PostService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	db             model.Pinger
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	cfg Config,
	authService handler.AuthService,
	postService handler.PostService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	db model.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		cfg:            cfg,
		authService:    authService,
		postService:    postService,
		tokenService:   tokenService,
		contextManager: contextManager,
		db:             db,
		logger:         logger,
	}
}

// Register builds the engine with cross-cutting middleware and all routes.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logging.Handle,
		gin.CustomRecovery(r.recover),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:    []string{"*"},
			ExposeHeaders:   []string{"X-Request-ID"},
		}),
	)
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	health := handler.NewHealth(r.db, r.logger)
	engine.GET("/healthz", health.Liveness)
	engine.GET("/readyz", health.Readiness)

	api := engine.Group(r.cfg.APIPrefix)
	r.registerAuthRoutes(api)
	r.registerPostRoutes(api)

	return engine
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
}

func (r *Router) registerPostRoutes(api *gin.RouterGroup) {
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	postHandler := handler.NewPost(r.postService, r.contextManager, r.logger)

	posts := api.Group("/posts")
	// size guard runs before authentication
	posts.POST("", middleware.PayloadLimit(r.cfg.MaxPayloadSize), authenticate.Handle, postHandler.Create)
	posts.GET("", authenticate.Handle, postHandler.List)
	posts.DELETE("/:id", authenticate.Handle, postHandler.Delete)
}

func (r *Router) recover(c *gin.Context, err any) {
	r.logger.Error("HTTP handler panicked",
		"path", c.Request.URL.Path,
		"request_id", middleware.RequestIDFromContext(c),
		"panic", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
