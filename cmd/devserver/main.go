package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"aidconnect/internal/devapi"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// A .env next to the binary is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("read .env: %v", err)
	}

	cfg, err := devapi.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Infof("Configuration loaded: %v", cfg)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           devapi.New(cfg, devapi.WithLogger(log)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infof("dev API listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
