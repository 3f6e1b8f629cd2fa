package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gfxmanager/conffile"
	"gfxmanager/config"
	"gfxmanager/probe"
	"gfxmanager/registry"
	"gfxmanager/session"
	"gfxmanager/steam"
	"gfxmanager/storage"
)

// loadConfig reads the configuration file named by GFXMANAGER_CONFIG or the default one
func loadConfig() (*config.Config, error) {
	path := os.Getenv(config.EnvPrefix + "CONFIG")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the standard logger, plus a debug logger that is silent unless enabled
func newLogger(cfg *config.Config) (*log.Logger, *log.Logger) {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	debug := log.New(io.Discard, "", 0)
	if cfg.Log.Debug {
		debug = log.New(os.Stderr, "DEBUG: ", log.LstdFlags)
	}
	return logger, debug
}

// newSession wires the core packages from cfg
func newSession(cfg *config.Config, logger, debug *log.Logger) *session.Session {
	store := storage.NewManager(cfg.Storage.Path)
	store.SetLogger(debug)

	writer := conffile.NewWriter()
	writer.DXVK = cfg.Emit.DXVK
	writer.VkBasalt = cfg.Emit.VkBasalt

	deps := session.Deps{
		Store:    store,
		Registry: registry.New(probe.New()),
		Writer:   writer,
		Logger:   logger,
	}

	if cfg.Steam.LaunchOptions {
		sm := steam.NewManager(cfg.Steam.Root)
		sm.SetLogger(debug)
		deps.Steam = sm
	}

	return session.New(deps)
}

// setup loads the configuration and opens a session, exiting on failure
func setup() (*session.Session, *log.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger, debug := newLogger(cfg)
	debug.Printf("Using settings document %s", cfg.Storage.Path)
	return newSession(cfg, logger, debug), logger
}
