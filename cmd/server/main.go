// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/19player/internal/api/connect"
	"github.com/osa030/19player/internal/app/catalog"
	"github.com/osa030/19player/internal/app/entitlement"
	"github.com/osa030/19player/internal/app/filter"
	"github.com/osa030/19player/internal/app/library"
	"github.com/osa030/19player/internal/app/playback"
	"github.com/osa030/19player/internal/app/session"
	"github.com/osa030/19player/internal/gen/player/v1/playerv1connect"
	"github.com/osa030/19player/internal/infra/audio"
	"github.com/osa030/19player/internal/infra/config"
	"github.com/osa030/19player/internal/infra/database"
	"github.com/osa030/19player/internal/infra/logger"
	"github.com/osa030/19player/internal/infra/spotify"
)

var (
	app        = kingpin.New("19player-server", "19player music player server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (overrides config)").String()

	// list-backends command
	listBackendsCmd = app.Command("list-backends", "List catalog, entitlement and audio backends and exit")

	// list-filters command
	listFiltersCmd = app.Command("list-filters", "List available queue filters and exit")
)

func init() {
	// start command (default)
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listBackendsCmd.FullCommand() {
		printBackends()
		return
	}

	// Handle list-filters command
	if command == listFiltersCmd.FullCommand() {
		printFilters()
		return
	}

	// Bootstrap logger until the config is loaded
	if _, err := logger.Init(loggerConfig(config.LogConfig{Output: "stdout", Level: "info"})); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	closeLog, err := logger.Init(loggerConfig(cfg.Log))
	if err != nil {
		zlog.Fatal().Msgf("Failed to initialize logger: %v", err)
	}
	defer closeLog()

	// Run server (defer ensures shutdown hook is called)
	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		closeLog()
		os.Exit(1)
	}
}

// loggerConfig applies the command-line flags on top of the config file.
func loggerConfig(c config.LogConfig) logger.Config {
	lc := logger.Config{Output: c.Output, Level: c.Level, File: c.File}
	if *verbose {
		lc.Level = "debug"
	}
	if *logfile != "" {
		lc.Output = "file"
		lc.File = *logfile
	}
	return lc
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Library.Path)
	if err != nil {
		return errors.Wrap(err, "failed to open library database")
	}
	defer db.Close()

	source, err := entitlement.New(cfg.Entitlement.Type, cfg.Entitlement.Settings)
	if err != nil {
		return errors.Wrap(err, "failed to create entitlement source")
	}

	var spotifyClient catalog.SpotifyClient
	if cfg.Catalog.Type == "spotify" {
		c, err := spotify.New(ctx, spotify.Config{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			Market:       cfg.Spotify.Market,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create Spotify client")
		}
		spotifyClient = c
	}

	cat, err := catalog.New(cfg.Catalog.Type, cfg.Catalog.Settings, spotifyClient)
	if err != nil {
		return err
	}

	handle, err := audio.New(cfg.Audio.Backend, cfg.Audio.Settings)
	if err != nil {
		return errors.Wrapf(err, "failed to create audio backend %s", cfg.Audio.Backend)
	}

	controller := playback.NewController(playback.Config{
		DefaultVolume:    cfg.Playback.DefaultVolume,
		UpsellTimeout:    cfg.Playback.UpsellTimeout(),
		RestartThreshold: cfg.Playback.RestartThreshold(),
	}, handle, source)

	filters, err := filter.Build(cfg.EnabledFilters())
	if err != nil {
		controller.Close()
		return errors.Wrap(err, "invalid filter config")
	}

	sessionMgr, err := session.NewManager(ctx, controller, cat, library.New(db), source, filters)
	if err != nil {
		controller.Close()
		return errors.Wrap(err, "failed to create session manager")
	}

	// Create HTTP mux
	mux := http.NewServeMux()

	playerPath, playerHandler := playerv1connect.NewPlayerServiceHandler(apiconnect.NewPlayerService(sessionMgr))
	adminPath, adminHandler := playerv1connect.NewAdminServiceHandler(
		apiconnect.NewAdminService(sessionMgr),
		connect.WithInterceptors(apiconnect.NewAdminAuthInterceptor(cfg.Admin.Token)),
	)
	mux.Handle(playerPath, playerHandler)
	mux.Handle(adminPath, adminHandler)

	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	sessionMgr.Start()

	go func() {
		zlog.Info().Msgf("Starting server: addr=%s catalog=%s audio=%s entitlement=%s",
			cfg.Server.Addr, cat.Name(), cfg.Audio.Backend, source.Name())
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh
	// Give the server a moment to fully initialize
	time.Sleep(100 * time.Millisecond)

	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		sessionMgr.Close()
		return errors.Wrap(err, "server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Close session manager first to terminate notification streams
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")

	return nil
}

// printBackends prints the pluggable backends.
func printBackends() {
	fmt.Println("Catalog types:")
	for _, t := range catalog.Types {
		fmt.Printf("  %s\n", t)
	}

	fmt.Println("Entitlement sources:")
	for _, t := range entitlement.Types {
		fmt.Printf("  %s\n", t)
	}

	fmt.Println("Audio backends:")
	backends := audio.Backends()
	for _, name := range audio.BackendNames() {
		status := "available"
		if !backends[name] {
			status = "unavailable in this build (requires cgo)"
		}
		fmt.Printf("  %-12s %s\n", name, status)
	}
}

// printFilters prints available queue filters.
func printFilters() {
	fmt.Println("Available Filters:")
	registry := filter.GetRegistered()
	for _, name := range filter.Names() {
		f := registry[name]()
		fmt.Printf("  %s: %s (codes: %s)\n", f.Name(), f.Description(), strings.Join(f.ReturnCodes(), ", "))
	}
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", strings.TrimSpace(hook))
		// Use sh -c to allow shell features like redirection or pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
