// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-tankr/internal/audio"
	"go-tankr/internal/config"
	"go-tankr/internal/defs"
	"go-tankr/internal/state"
	"go-tankr/internal/system"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tanksPath := flag.String("tanks", "", "JSON file with tank definitions")
	tankID := flag.String("tank", "TANK_BLUE", "tank definition id for the player")
	jump := flag.Bool("jump", false, "enable jump on down while touching the bottom bound")
	lifetime := flag.Duration("lifetime", config.ProjectileLifetime, "max projectile lifetime, 0 disables")
	mute := flag.Bool("mute", false, "disable audio cues")
	debug := flag.Bool("debug", false, "debug logging and overlay")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	log.SetReportTimestamp(true)
	log.SetPrefix("tankr")
	if *debug {
		log.SetLevel(log.DebugLevel)
	} else if lvl, err := log.ParseLevel(config.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if *pprofAddr != "" {
		go func() {
			log.Error("pprof server stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tank := defs.DefaultTank()
	if *tanksPath != "" {
		if err := defs.LoadTankDefinitions(*tanksPath); err != nil {
			log.Fatal("cannot load tank definitions", "err", err)
		}
		if def, ok := defs.Lookup(*tankID); ok {
			tank = def
		} else {
			log.Warn("tank definition not found, using default", "id", *tankID)
		}
	}

	features := config.DefaultFeatures()
	features.JumpOnDown = *jump
	features.ProjectileLifetime = *lifetime

	var cues system.CuePlayer = audio.Mute{}
	if !*mute {
		bank, err := audio.NewBank()
		if err != nil {
			log.Warn("audio disabled", "err", err)
		} else {
			cues = bank
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, state.Settings{
		Tank:     tank,
		Features: features,
		Cues:     cues,
		Debug:    *debug,
	}))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tankr")
	if err := ebiten.RunGame(app); err != nil {
		log.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
