// Command server runs the OCEVAVE storefront and admin API.
//
// Usage:
//
//	server [-config path]          start the HTTP server
//	server [-config path] migrate  apply database migrations and exit
//	server hash-password <pw>       print a bcrypt hash for admin.password_hash
//	server gen-secret               print a random session.secret
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ocevave/ocevave/internal/app"
	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/security"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults to OCEVAVE_CONFIG or ./config.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := config.AppConfig{ConfigPath: *configPath}
	var err error
	switch flag.Arg(0) {
	case "":
		err = app.RunServer(ctx, appCfg)
	case "migrate":
		err = app.Migrate(ctx, appCfg)
		if err == nil {
			log.Info("migrations applied")
		}
	case "hash-password":
		if flag.NArg() < 2 {
			log.Error("usage: server hash-password <password>")
			os.Exit(2)
		}
		var hash string
		if hash, err = security.HashPasswordBcrypt(flag.Arg(1)); err == nil {
			fmt.Println(hash)
		}
	case "gen-secret":
		var secret []byte
		if secret, err = security.RandomBytes(config.MinSessionSecretLength); err == nil {
			fmt.Println(hex.EncodeToString(secret))
		}
	default:
		log.Errorf("unknown command %q", flag.Arg(0))
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}
}
