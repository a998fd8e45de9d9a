package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tmdict/stargazer-sub002/internal/agent"
	"github.com/tmdict/stargazer-sub002/internal/engine"
	"github.com/tmdict/stargazer-sub002/internal/server"
	"github.com/tmdict/stargazer-sub002/internal/skill/catalog"
	"github.com/tmdict/stargazer-sub002/internal/version"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var demo bool
	var arenaPreset string
	flag.BoolVar(&demo, "demo", false, "Run the scripted demo lineup on startup")
	flag.StringVar(&arenaPreset, "arena", "", "Arena preset override (arena, skirmish)")
	flag.Parse()

	logger.Log.Info("Starting Stargazer grid server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}
	if arenaPreset != "" {
		cfg.ArenaPreset = arenaPreset
	}
	logger.Log.Infof("Arena preset: %s", cfg.ArenaPreset)

	// 2. Инициализация ядра с каталогом навыков
	service, err := engine.NewService(cfg, catalog.Default())
	if err != nil {
		logger.Log.Fatal("Engine init error:", err)
	}

	// РЕЖИМ ДЕМО: скриптовый клиент прогоняет расстановку через движок
	if demo {
		logger.Log.Info("Mode: demo lineup")
		agent.NewAgent(service).Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(service, cfg.Addr)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}
