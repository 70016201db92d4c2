// internal/state/game_state.go
package state

import (
	"fmt"

	"go-tankr/internal/app"
	"go-tankr/internal/config"
	"go-tankr/internal/defs"
	"go-tankr/internal/input"
	"go-tankr/internal/system"
	"go-tankr/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Settings — параметры новой партии
type Settings struct {
	Tank     defs.TankDefinition
	Features config.Features
	Cues     system.CuePlayer
	Debug    bool
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	source   *input.KeyboardSource
	reload   *ui.ReloadIndicator
	settings Settings
}

func NewGameState(sm *StateMachine, settings Settings) *GameState {
	game := app.NewGame(settings.Tank, settings.Features, settings.Cues)
	return &GameState{
		sm:       sm,
		game:     game,
		source:   input.NewKeyboardSource(input.DefaultBindings()),
		reload:   ui.NewReloadIndicator(game.Player, config.ReloadIndicatorX, config.ReloadIndicatorY, config.ReloadIndicatorRadius),
		settings: settings,
	}
}

func (g *GameState) Enter() {
	log.Debug("enter game state")
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	// H переключает обычные и тяжёлые снаряды
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.game.Player.SetBulletDamage(nextBulletDamage(g.game.Player.BulletDamage()))
	}

	snap := g.source.Snapshot(g.game.Camera.ScreenToWorld)
	g.game.Update(deltaTime, snap)
	g.reload.Update(g.game.GameTime())

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.reload.Draw(screen)
	if g.settings.Debug {
		hp, max := g.game.Player.Health()
		pool := g.game.Player.Projectiles()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("HP: %d/%d  Shells: %d/%d (dmg %d)  Missed: %d  TPS: %0.1f",
			hp, max, pool.Active(), pool.Capacity(), g.game.Player.BulletDamage(), g.game.Expired(), ebiten.ActualTPS()))
	}
}

// nextBulletDamage чередует урон 1 и 2
func nextBulletDamage(current int) int {
	if current >= 2 {
		return 1
	}
	return 2
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
