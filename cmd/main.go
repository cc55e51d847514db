package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	restctx "github.com/dtroode/postfeed-server/internal/api/rest/context"
	"github.com/dtroode/postfeed-server/internal/api/rest/router"
	httpServer "github.com/dtroode/postfeed-server/internal/api/rest/server"
	"github.com/dtroode/postfeed-server/internal/cache"
	"github.com/dtroode/postfeed-server/internal/config"
	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
	"github.com/dtroode/postfeed-server/internal/password"
	"github.com/dtroode/postfeed-server/internal/repository/postgres"
	"github.com/dtroode/postfeed-server/internal/repository/sqlite"
	"github.com/dtroode/postfeed-server/internal/server"
	"github.com/dtroode/postfeed-server/internal/service"
	"github.com/dtroode/postfeed-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type database interface {
	model.Pinger
	Close() error
}

type storage struct {
	db    database
	users model.UserStore
	posts model.PostStore
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	hasher, err := password.New(password.Algorithm(cfg.Hasher.Algorithm), password.WithBcryptCost(cfg.Hasher.BcryptCost))
	if err != nil {
		logger.Fatal("failed to create password hasher", "error", err)
	}

	st, err := openStorage(ctx, cfg.Database, hasher, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer st.db.Close()

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		logger.Fatal("failed to create token manager", "error", err)
	}

	tokenService := service.NewTokenService(tokenManager, cfg.JWT.TTL(), logger)
	authService := service.NewAuth(st.users, tokenService, logger)
	postService := service.NewPost(st.posts, st.users, cache.New[[]model.PostView](), cfg.Cache.TTL(), logger)
	ctxMgr := restctx.NewManager()

	srv := registerHTTPServer(cfg, logger, authService, postService, tokenService, ctxMgr, st.db)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStorage(ctx context.Context, cfg config.Database, hasher model.PasswordHasher, logger *logger.Logger) (storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.New(ctx, cfg.Path, logger)
		if err != nil {
			return storage{}, err
		}
		return storage{
			db:    db,
			users: sqlite.NewUserRepository(db, hasher),
			posts: sqlite.NewPostRepository(db),
		}, nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.ConnString(), logger)
		if err != nil {
			return storage{}, err
		}
		return storage{
			db:    db,
			users: postgres.NewUserRepository(db, hasher),
			posts: postgres.NewPostRepository(db),
		}, nil
	default:
		return storage{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func registerHTTPServer(
	cfg *config.Config,
	logger *logger.Logger,
	authService *service.Auth,
	postService *service.Post,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	db model.Pinger,
) *httpServer.HTTPServer {
	if cfg.LogLevel >= 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(
		router.Config{APIPrefix: cfg.HTTP.APIPrefix, MaxPayloadSize: cfg.HTTP.MaxPayloadSize},
		authService,
		postService,
		tokenService,
		ctxMgr,
		db,
		logger,
	)

	return httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
}
