package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bipulsingh126/biziwit-admin/internal/config"
	"github.com/bipulsingh126/biziwit-admin/mockapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("mockapi stopped")
	}
	log.Info().Msg("mockapi stopped")
}

func run() error {
	c := config.New()
	displayAppname(c.GetAppName() + " mock")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if c.GetEnv() == "DEV" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	backend, err := mockapi.New(mockapi.Options{
		AdminEmail:    c.GetAdminEmail(),
		AdminPassword: c.GetAdminPassword(),
		JWTSecret:     c.GetJWTSecret(),
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("mockapi.New: %w", err)
	}

	server := &http.Server{Addr: c.GetPort(), Handler: backend}
	go listenAndServe(server, logger)
	waitForStopSignal()
	return shutdown(server)
}

func listenAndServe(server *http.Server, logger zerolog.Logger) {
	logger.Info().Str("addr", server.Addr).Msg("mockapi listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
