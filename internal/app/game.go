// internal/app/game.go
package app

import (
	"image/color"
	"time"

	"go-tankr/internal/camera"
	"go-tankr/internal/config"
	"go-tankr/internal/defs"
	"go-tankr/internal/entity"
	"go-tankr/internal/event"
	"go-tankr/internal/input"
	"go-tankr/internal/system"
	"go-tankr/internal/types"
	"go-tankr/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay — оверлей, который умеет себя рисовать
type Overlay interface {
	Update()
	Kill()
	Draw(screen *ebiten.Image, cam *camera.Camera)
}

// Game holds the world state and runs one tick per frame.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Camera           *camera.Camera
	Bounds           system.Bounds
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	RenderSystem     *system.RenderSystem
	AudioSystem      *system.AudioSystem
	VisualEffects    *system.VisualEffectSystem
	Player           *system.TankController
	Target           *system.TankController

	tanks    map[types.EntityID]*system.TankController
	overlays map[types.EntityID][]Overlay
	gameTime time.Duration
	removed  []types.EntityID
	expired  int
}

// NewGame создаёт мир с танком игрока и неподвижной мишенью.
func NewGame(playerDef defs.TankDefinition, features config.Features, cues system.CuePlayer) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bounds := system.Bounds{MinX: 0, MinY: 0, MaxX: config.WorldWidth, MaxY: config.WorldHeight}

	g := &Game{
		ECS:              ecs,
		EventDispatcher:  dispatcher,
		Camera:           camera.New(config.ScreenWidth, config.ScreenHeight),
		Bounds:           bounds,
		MovementSystem:   system.NewMovementSystem(ecs, bounds),
		ProjectileSystem: system.NewProjectileSystem(ecs, dispatcher, bounds, features.ProjectileLifetime),
		RenderSystem:     system.NewRenderSystem(ecs, bounds),
		AudioSystem:      system.NewAudioSystem(dispatcher, cues),
		VisualEffects:    system.NewVisualEffectSystem(ecs),
		tanks:            make(map[types.EntityID]*system.TankController),
		overlays:         make(map[types.EntityID][]Overlay),
	}
	g.CollisionSystem = system.NewCollisionSystem(ecs, config.ProjectileRadius, g.applyHit)

	startY := float64(config.WorldHeight) / 2
	g.Player = g.spawnTank(playerDef, config.TankStartX, startY, config.HealthBarColor,
		system.WithFeatures(features), system.WithCameraFollow())
	g.Target = g.spawnTank(defs.TargetTank(), config.TankStartX+config.TargetOffsetX, startY, config.HealthBarLowColor)
	g.Camera.CenterOn(g.Player.Position())

	dispatcher.Subscribe(event.TankDestroyed, g)
	dispatcher.Subscribe(event.ProjectileExpired, event.ListenerFunc(g.onProjectileExpired))
	return g
}

func (g *Game) spawnTank(def defs.TankDefinition, x, y float64, barColor color.RGBA, opts ...system.TankOption) *system.TankController {
	tank := system.NewTank(g.ECS, g, def, x, y, opts...)
	items := []Overlay{ui.NewCaption(tank, def.Name), ui.NewHealthBar(tank, barColor)}
	for _, o := range items {
		tank.Attach(o)
	}
	g.tanks[tank.ID()] = tank
	g.overlays[tank.ID()] = items
	return tank
}

// Update выполняет один кадр: ввод → танки → физика → снаряды → попадания.
func (g *Game) Update(deltaTime float64, in input.Snapshot) {
	g.gameTime += time.Duration(deltaTime * float64(time.Second))
	g.ECS.GameTime = g.gameTime.Seconds()

	for id, tank := range g.tanks {
		var snap input.Snapshot
		if id == g.Player.ID() {
			snap = in
		} else {
			// Мишень стоит и держит ствол опущенным
			x, y := tank.Position()
			snap = input.Snapshot{AimX: x, AimY: y + 1}
		}
		tank.Update(snap, g.gameTime, tank.Body().TouchingDown)
	}

	g.MovementSystem.Update(deltaTime)
	for _, tank := range g.tanks {
		tank.AfterPhysics()
	}
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.VisualEffects.Update(deltaTime)

	// Уничтоженные танки убираем в конце кадра
	for _, id := range g.removed {
		if tank, ok := g.tanks[id]; ok {
			tank.Terminate()
		}
	}
	g.removed = g.removed[:0]
}

func (g *Game) applyHit(target types.EntityID, damage int) {
	tank, ok := g.tanks[target]
	if !ok || !tank.IsAlive() || damage <= 0 {
		return
	}
	tank.ApplyDamage(damage)
	g.VisualEffects.Flash(target)
}

// OnEvent обрабатывает события, на которые подписана игра.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.TankDestroyed {
		return
	}
	if id, ok := e.Data.(types.EntityID); ok {
		g.removed = append(g.removed, id)
	}
}

func (g *Game) onProjectileExpired(e event.Event) {
	data, ok := e.Data.(event.ProjectileData)
	if !ok {
		return
	}
	g.expired++
	log.Debug("projectile expired", "owner", data.Owner, "slot", data.Slot)
}

// Expired — сколько снарядов погасло, не попав в цель
func (g *Game) Expired() int {
	return g.expired
}

// Dispatch отправляет событие от имени танка
func (g *Game) Dispatch(e event.Event) {
	g.EventDispatcher.Dispatch(e)
}

func (g *Game) CenterCamera(x, y float64) {
	g.Camera.CenterOn(x, y)
}

// RemoveTank убирает танк из мира. Его снаряды долетают до конца.
func (g *Game) RemoveTank(id types.EntityID) {
	g.ECS.RemoveEntity(id)
	delete(g.tanks, id)
	delete(g.overlays, id)
	log.Info("tank removed", "id", id)
}

// Over сообщает, что танк игрока уничтожен
func (g *Game) Over() bool {
	return !g.Player.IsAlive()
}

func (g *Game) GameTime() time.Duration {
	return g.gameTime
}

// Tanks возвращает количество танков в мире
func (g *Game) Tanks() int {
	return len(g.tanks)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen, g.Camera)
	for _, items := range g.overlays {
		for _, o := range items {
			o.Draw(screen, g.Camera)
		}
	}
}
