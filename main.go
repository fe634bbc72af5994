package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/game"
	"github.com/iburimskiy/valentine/internal/logging"
)

const logDir = "logs"

func main() {
	configPath := flag.String("config", "valentine.yaml", "YAML file overriding names, messages, photo and sounds")
	debug := flag.Bool("debug", false, "Write logs to "+logDir+"/ and show the debug overlay")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	flag.Parse()

	logFile, err := logging.Setup(*debug, logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("starting with seed %d", *seed)

	g, err := game.New(game.Options{
		Settings: settings,
		Seed:     *seed,
		Debug:    *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		panic(runErr)
	}
}
