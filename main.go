package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lumen/config"
	"lumen/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		Headless:  *headless,
	}

	if *headless {
		// Headless mode, pure CPU simulation, no raylib needed
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_frames", *maxFrames,
		)

		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
				slog.Info("max frames reached", "frame", g.Frame())
				return
			}
		}
	} else {
		// Graphical mode
		rl.SetConfigFlags(rl.FlagWindowResizable)
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Lumen")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
				break
			}
		}
	}
}
