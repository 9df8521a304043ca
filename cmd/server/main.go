package main

import (
	"fmt"

	"rawtails/internal/app"
	"rawtails/internal/config"
	"rawtails/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.New("rawtails", cfg.LogLevel)

	router := app.NewRouter(cfg, log)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	log.WithField("addr", addr).Info("Server starting")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
