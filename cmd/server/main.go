// Command server runs the blogging platform backend.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/api"
	"github.com/Rahulstark2/blogging-platform-backend/appconfig"
	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
	"github.com/Rahulstark2/blogging-platform-backend/log"
	"github.com/Rahulstark2/blogging-platform-backend/models"
)

func main() {
	defer log.Sync()

	if err := appconfig.Load(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := appconfig.Get()

	if err := models.InitDatabase(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	authCfg, err := jwtauth.NewConfig(
		jwtauth.WithSecret(cfg.JWTSecretKey()),
		jwtauth.WithTokenTTL(cfg.TokenTTL()),
		jwtauth.WithLogger(log.Zap()),
	)
	if err != nil {
		log.Fatalf("failed to configure auth: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.BindAddr(),
		Handler:      api.BuildRouter(authCfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infof("server listening on %s", cfg.BindAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Info("server stopped gracefully")
}
