// internal/system/tank.go
package system

import (
	"time"

	"go-tankr/internal/component"
	"go-tankr/internal/config"
	"go-tankr/internal/defs"
	"go-tankr/internal/entity"
	"go-tankr/internal/event"
	"go-tankr/internal/input"
	"go-tankr/internal/interfaces"
	"go-tankr/internal/types"
	"go-tankr/internal/utils"

	"github.com/charmbracelet/log"
)

// turretOffset поправка на ориентацию спрайта ствола: по умолчанию он смотрит вниз.
const turretOffset = -90.0

// SpawnSpec — параметры выпущенного снаряда
type SpawnSpec struct {
	Slot   types.SlotID
	X, Y   float64
	VX, VY float64
	Damage int
}

// Command — результат одного кадра для мира
type Command struct {
	VX, VY          float64
	AngularVelocity float64
	TurretBearing   float64
	Moved           bool // танк стоит, если false: показываем кадр покоя
	Jumped          bool
	Fire            *SpawnSpec
}

// TankController управляет одним танком: движение, прицел, стрельба, урон.
type TankController struct {
	id       types.EntityID
	ctx      interfaces.TankContext
	def      defs.TankDefinition
	features config.Features

	body    *component.Body
	health  *component.Health
	turret  *component.Turret
	fire    *component.FireControl
	state   *component.TankState
	render  *component.Renderable
	pool    *entity.ProjectilePool
	overlay []interfaces.Overlay
	follow  bool // камера следует за этим танком
}

// TankOption настраивает танк при создании
type TankOption func(*TankController)

// WithOverlays привязывает подпись и полосу здоровья
func WithOverlays(overlays ...interfaces.Overlay) TankOption {
	return func(t *TankController) {
		t.overlay = append(t.overlay, overlays...)
	}
}

// WithCameraFollow центрирует камеру на танке каждый кадр
func WithCameraFollow() TankOption {
	return func(t *TankController) {
		t.follow = true
	}
}

// WithFeatures задаёт флаги возможностей
func WithFeatures(f config.Features) TankOption {
	return func(t *TankController) {
		t.features = f
	}
}

// NewTank создаёт танк в точке (x, y) и регистрирует его компоненты в ECS.
func NewTank(ecs *entity.ECS, ctx interfaces.TankContext, def defs.TankDefinition, x, y float64, opts ...TankOption) *TankController {
	id := ecs.NewEntity()
	t := &TankController{
		id:       id,
		ctx:      ctx,
		def:      def,
		features: config.DefaultFeatures(),
		body:     &component.Body{X: x, Y: y, Radius: def.Radius},
		health:   &component.Health{Value: def.MaxHealth, Max: def.MaxHealth},
		turret:   &component.Turret{Length: def.TurretLength, Visible: true},
		fire: &component.FireControl{
			ReloadInterval: def.Reload(),
			Damage:         def.BulletDamage,
		},
		state:  &component.TankState{Name: def.Name, State: component.Alive},
		render: &component.Renderable{BodyColor: def.BodyColor(), TurretColor: def.TurretColor(), Idle: true},
		pool:   entity.NewProjectilePool(id, def.PoolCapacity),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.health.Value <= 0 {
		t.state.State = component.Dead
	}

	ecs.Bodies[id] = t.body
	ecs.Healths[id] = t.health
	ecs.Turrets[id] = t.turret
	ecs.FireControls[id] = t.fire
	ecs.Tanks[id] = t.state
	ecs.Renderables[id] = t.render
	ecs.Projectiles[id] = t.pool

	log.Info("tank spawned", "id", id, "name", def.Name, "x", x, "y", y)
	return t
}

func (t *TankController) ID() types.EntityID { return t.id }
func (t *TankController) Name() string { return t.state.Name }
func (t *TankController) Body() *component.Body { return t.body }
func (t *TankController) Turret() *component.Turret { return t.turret }
func (t *TankController) Projectiles() *entity.ProjectilePool { return t.pool }

// Attach привязывает оверлей к уже созданному танку
func (t *TankController) Attach(o interfaces.Overlay) {
	t.overlay = append(t.overlay, o)
}

// Position возвращает центр корпуса
func (t *TankController) Position() (float64, float64) {
	return t.body.X, t.body.Y
}

// Health возвращает текущее и максимальное здоровье
func (t *TankController) Health() (int, int) {
	return t.health.Value, t.health.Max
}

// IsAlive сообщает, что здоровье больше нуля
func (t *TankController) IsAlive() bool {
	return t.health.Value > 0
}

// Ready сообщает, закончилась ли перезарядка к моменту now
func (t *TankController) Ready(now time.Duration) bool {
	return t.fire.Ready(now)
}

// ReloadProgress возвращает долю перезарядки к моменту now
func (t *TankController) ReloadProgress(now time.Duration) float64 {
	return t.fire.Progress(now)
}

// Update обрабатывает один кадр.
func (t *TankController) Update(in input.Snapshot, now time.Duration, touchingDown bool) Command {
	if t.state.State == component.Dead {
		t.body.Stop()
		return Command{TurretBearing: t.turret.Bearing}
	}

	var cmd Command
	t.body.Stop()

	// Поворот корпуса: левый имеет приоритет
	if in.Left {
		t.body.AngularVelocity = -t.def.RotateSpeed
	} else if in.Right {
		t.body.AngularVelocity = t.def.RotateSpeed
	}

	// Движение: "вниз" имеет приоритет над "вверх"
	if in.Down {
		cmd.Moved = true
		t.body.VX, t.body.VY = utils.VelocityFromAngle(t.body.Angle+90, t.def.Speed)
	} else if in.Up {
		cmd.Moved = true
		t.body.VX, t.body.VY = utils.VelocityFromAngle(t.body.Angle-90, t.def.Speed)
	}

	// Ствол крепится к центру корпуса и смотрит на прицел
	bearing := utils.RadToDeg(utils.AngleTo(t.body.X, t.body.Y, in.AimX, in.AimY)) + turretOffset
	t.turret.Bearing = bearing
	cmd.TurretBearing = bearing

	if in.Fire && t.fire.Ready(now) {
		cmd.Fire = t.spawnProjectile()
		// Перезарядка тратится, даже если свободной ячейки не нашлось
		t.fire.Consume(now)
		if cmd.Fire != nil {
			t.ctx.Dispatch(event.Event{
				Type: event.TankFired,
				Data: event.TankFiredData{Tank: t.id, Slot: cmd.Fire.Slot},
			})
		} else {
			log.Debug("projectile pool exhausted", "tank", t.id, "capacity", t.pool.Capacity())
		}
	}

	t.render.Idle = !cmd.Moved

	if t.features.JumpOnDown && in.Down && touchingDown {
		t.body.VY = -t.def.JumpImpulse
		cmd.Jumped = true
	}

	cmd.VX, cmd.VY = t.body.VX, t.body.VY
	cmd.AngularVelocity = t.body.AngularVelocity
	return cmd
}

// AfterPhysics вызывается, когда мир уже сдвинул корпус: оверлеи
// и камера получают позицию текущего кадра.
func (t *TankController) AfterPhysics() {
	if t.state.State == component.Dead {
		return
	}
	for _, o := range t.overlay {
		o.Update()
	}
	if t.follow {
		t.ctx.CenterCamera(t.body.X, t.body.Y)
	}
}

// SetBulletDamage меняет урон снарядов. Пул пересоздаётся: уже
// выпущенные снаряды старого типа гаснут.
func (t *TankController) SetBulletDamage(damage int) {
	if damage <= 0 || damage == t.fire.Damage {
		return
	}
	t.pool.DeactivateAll()
	t.fire.Damage = damage
	log.Info("bullet damage changed", "tank", t.id, "damage", damage)
}

// BulletDamage — текущий урон снаряда
func (t *TankController) BulletDamage() int {
	return t.fire.Damage
}

func (t *TankController) spawnProjectile() *SpawnSpec {
	slot, ok := t.pool.Acquire()
	if !ok {
		return nil
	}
	dir := t.turret.Bearing - turretOffset
	mx, my := utils.PointFromAngle(t.body.X, t.body.Y, t.turret.Length, dir)
	vx, vy := utils.VelocityFromAngle(dir, t.def.ProjectileSpeed)
	t.pool.Reset(slot, mx, my, vx, vy, t.fire.Damage)
	return &SpawnSpec{Slot: slot, X: mx, Y: my, VX: vx, VY: vy, Damage: t.fire.Damage}
}

// ApplyDamage уменьшает здоровье. Событие уничтожения отправляется
// один раз, на кадре, когда здоровье впервые достигло нуля.
func (t *TankController) ApplyDamage(amount int) {
	if amount <= 0 || t.state.State == component.Dead {
		return
	}
	t.health.Value -= amount
	if t.health.Value > 0 {
		return
	}
	t.health.Value = 0
	t.state.State = component.Dead
	t.body.Stop()
	log.Info("tank destroyed", "id", t.id, "name", t.state.Name)
	t.ctx.Dispatch(event.Event{Type: event.TankDestroyed, Data: t.id})
}

// Terminate убирает танк из мира. Повторный вызов ничего не делает.
func (t *TankController) Terminate() {
	if t.state.Removed {
		return
	}
	t.state.Removed = true
	t.turret.Visible = false
	for _, o := range t.overlay {
		o.Kill()
	}
	t.ctx.RemoveTank(t.id)
	t.ctx.Dispatch(event.Event{Type: event.TankRemoved, Data: t.id})
}
