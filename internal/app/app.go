package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/accounts"
	"github.com/ocevave/ocevave/internal/auth"
	"github.com/ocevave/ocevave/internal/blobstore"
	"github.com/ocevave/ocevave/internal/catalog"
	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/content"
	"github.com/ocevave/ocevave/internal/db"
	apihttp "github.com/ocevave/ocevave/internal/http"
	"github.com/ocevave/ocevave/internal/http/api"
	"github.com/ocevave/ocevave/internal/logging"
	"github.com/ocevave/ocevave/internal/orders"
	"github.com/ocevave/ocevave/internal/records"
	"github.com/ocevave/ocevave/internal/security"
	"github.com/ocevave/ocevave/internal/session"
	"github.com/ocevave/ocevave/internal/settings"
	"github.com/ocevave/ocevave/internal/util"
	"github.com/sethvargo/go-retry"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// shutdownTimeout bounds graceful HTTP shutdown.
	shutdownTimeout = 10 * time.Second
	// dbOpenAttempts is the number of retries when the database is not yet reachable.
	dbOpenAttempts = 5
)

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	dsn, err := config.LoadDatabaseDSN(configPath)
	if err != nil {
		return err
	}
	conn, err := openDatabase(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(conn) }()
	return db.Migrate(conn)
}

// RunServer boots the storefront and admin API and blocks until ctx is done.
func RunServer(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	runtimeCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if errValidate := runtimeCfg.Validate(); errValidate != nil {
		return errValidate
	}
	logCloser, errLog := logging.Setup(runtimeCfg.Log)
	if errLog != nil {
		return errLog
	}
	defer func() { _ = logCloser.Close() }()

	conn, err := openDatabase(ctx, runtimeCfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(conn) }()
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errRefresh := settings.RefreshDBConfigSnapshot(ctx, conn); errRefresh != nil {
		return errRefresh
	}

	revoker, closeRevoker, errRevoker := buildRevoker(ctx, runtimeCfg.Redis)
	if errRevoker != nil {
		return errRevoker
	}
	defer func() {
		if errClose := closeRevoker(); errClose != nil {
			log.WithError(errClose).Warn("close session revoker")
		}
	}()
	images, errImages := buildImages(ctx, runtimeCfg.S3, conn)
	if errImages != nil {
		return errImages
	}

	svc := buildServices(runtimeCfg, conn, revoker, images)
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              runtimeCfg.Server.Addr,
		Handler:           apihttp.NewEngine(runtimeCfg.Server, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Infof("listening on %s (config=%s, database=%s)", srv.Addr, configPath, db.DialectName(conn))
		if errServe := srv.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", errServe)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			return fmt.Errorf("http shutdown: %w", errShutdown)
		}
		log.Info("server stopped")
		return nil
	})
	return group.Wait()
}

// openDatabase opens the DSN, retrying with backoff while the server is unreachable.
func openDatabase(ctx context.Context, dsn string) (*gorm.DB, error) {
	var conn *gorm.DB
	backoff := retry.WithMaxRetries(dbOpenAttempts, retry.NewExponential(500*time.Millisecond))
	errOpen := retry.Do(ctx, backoff, func(ctx context.Context) error {
		opened, errDial := db.Open(dsn)
		if errDial != nil {
			log.WithError(errDial).Warn("database not ready, retrying")
			return retry.RetryableError(errDial)
		}
		conn = opened
		return nil
	})
	if errOpen != nil {
		return nil, errOpen
	}
	return conn, nil
}

// buildRevoker uses Redis when configured and an in-process store otherwise.
// The returned func releases the Redis connection pool.
func buildRevoker(ctx context.Context, cfg config.RedisConfig) (session.Revoker, func() error, error) {
	if cfg.Enabled() {
		client, errDial := session.DialRedis(ctx, cfg)
		if errDial != nil {
			return nil, nil, errDial
		}
		log.Infof("session revocation backed by redis at %s", cfg.Addr)
		return session.NewRedisRevoker(client), client.Close, nil
	}
	revoker := session.NewMemoryRevoker()
	revoker.Start(ctx)
	return revoker, func() error { return nil }, nil
}

// buildImages wires S3 as the primary image store when configured. The
// database store is always the fallback.
func buildImages(ctx context.Context, cfg config.S3Config, conn *gorm.DB) (*blobstore.Images, error) {
	fallback := blobstore.NewDBStore(conn)
	if !cfg.Enabled() {
		return blobstore.NewImages(nil, fallback), nil
	}
	primary, errS3 := blobstore.NewS3Store(ctx, cfg)
	if errS3 != nil {
		return nil, errS3
	}
	log.WithFields(log.Fields{
		"bucket":     cfg.Bucket,
		"endpoint":   cfg.Endpoint,
		"access_key": util.MaskSecret(cfg.AccessKey),
	}).Info("image uploads stored in object storage")
	return blobstore.NewImages(primary, fallback), nil
}

func buildServices(cfg config.Config, conn *gorm.DB, revoker session.Revoker, images *blobstore.Images) api.Services {
	admin := auth.NewPrivilegedAccount(cfg.Admin)
	accountsSvc := accounts.NewService(conn, admin)
	codec := security.NewSessionCodec(cfg.Session.Secret, cfg.Session.TTL)
	return api.Services{
		DB:       conn,
		Accounts: accountsSvc,
		Catalog:  catalog.New(conn),
		Orders:   orders.NewService(conn, orders.Options{}),
		Records:  records.NewService(conn),
		Content:  content.NewService(conn),
		Images:   images,
		Resolver: auth.NewResolver(codec, revoker, admin, accountsSvc, cfg.Server.CookieSecure),
		Gate:     auth.NewGate(admin),
	}
}
