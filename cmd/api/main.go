package main

import (
	"fmt"
	"os"

	"bordoodles-api/internal/app"
	"bordoodles-api/internal/platform/config"
	"bordoodles-api/internal/platform/logger"
)

// @title          Bordoodles API
// @version        1.0
// @description    Catálogo de reproductores y cachorros, uploads de imágenes y formulario de contacto.
// @BasePath       /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	a, err := app.NewApp(cfg, log)
	if err != nil {
		log.Error("failed to create app", map[string]any{"error": err})
		_ = log.Sync()
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		log.Error("application error", map[string]any{"error": err})
		_ = log.Sync()
		os.Exit(1)
	}
}
