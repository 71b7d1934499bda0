// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"farm-flies/internal/app"
	"farm-flies/internal/assets"
	"farm-flies/internal/audio"
	"farm-flies/internal/config"
	"farm-flies/internal/debug"
	"farm-flies/internal/defs"
	"farm-flies/internal/input"
	"farm-flies/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run возвращает ошибку вместо выхода, чтобы отложенные остановки успели отработать.
func run(args []string) error {
	flags := flag.NewFlagSet("farm-flies", flag.ContinueOnError)
	settingsPath := flags.String("settings", config.DefaultSettingsPath, "path to settings.json")
	debugServer := flags.Bool("debug", false, "start the debug HTTP server")
	seed := flags.Int64("seed", 0, "random seed (0 = from settings or time)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	levels := defs.DefaultLevels()
	if settings.LevelsFile != "" {
		levels, err = defs.LoadLevels(settings.LevelsFile)
		if err != nil {
			return err
		}
	}

	res := app.NewResources(settings, assets.NewManager(), input.EbitenPoller{}, audio.NewEbitenBackend())
	game, err := app.NewGameInstance(settings, levels, res)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := config.WatchSettings(ctx, settings.Path, game.ApplySettings); err != nil {
		logger.Warnf("settings hot reload disabled: %v", err)
	}

	if *debugServer {
		srv := debug.NewServer(settings.DebugAddr, game)
		if err := srv.Start(); err != nil {
			return err
		}
		defer shutdown(srv)
	}

	return game.Run()
}

func shutdown(srv *debug.Server) {
	ctx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("debug server shutdown: %v", err)
	}
}
