package system

import (
	"math"
	"testing"
	"time"

	"go-tankr/internal/component"
	"go-tankr/internal/config"
	"go-tankr/internal/defs"
	"go-tankr/internal/entity"
	"go-tankr/internal/event"
	"go-tankr/internal/input"
	"go-tankr/internal/types"
)

const tol = 1e-6

type fakeContext struct {
	events  []event.Event
	camX    float64
	camY    float64
	centred int
	removed []types.EntityID
}

func (c *fakeContext) Dispatch(e event.Event) { c.events = append(c.events, e) }
func (c *fakeContext) CenterCamera(x, y float64) { c.camX, c.camY = x, y; c.centred++ }
func (c *fakeContext) RemoveTank(id types.EntityID) { c.removed = append(c.removed, id) }

func (c *fakeContext) count(t event.EventType) int {
	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fakeOverlay struct {
	updates, kills int
}

func (o *fakeOverlay) Update() { o.updates++ }
func (o *fakeOverlay) Kill() { o.kills++ }

func newTestTank(t *testing.T, opts ...TankOption) (*TankController, *fakeContext) {
	t.Helper()
	ctx := &fakeContext{}
	tank := NewTank(entity.NewECS(), ctx, defs.DefaultTank(), 100, config.WorldHeight/2, opts...)
	return tank, ctx
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

// aimRight ставит прицел справа от танка
func aimRight(tank *TankController) input.Snapshot {
	x, y := tank.Position()
	return input.Snapshot{AimX: x + 100, AimY: y}
}

func TestRotationPriority(t *testing.T) {
	tank, _ := newTestTank(t)
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -config.TankRotateSpeed},
		{"right", false, true, config.TankRotateSpeed},
		{"both, left wins", true, true, -config.TankRotateSpeed},
	}
	for _, tt := range tests {
		in := aimRight(tank)
		in.Left, in.Right = tt.left, tt.right
		cmd := tank.Update(in, 0, false)
		if cmd.AngularVelocity != tt.want {
			t.Errorf("%s: angular velocity = %v, want %v", tt.name, cmd.AngularVelocity, tt.want)
		}
		if tank.Body().AngularVelocity != tt.want {
			t.Errorf("%s: body angular velocity not updated", tt.name)
		}
	}
}

func TestMovementPriorityAndMagnitude(t *testing.T) {
	tank, _ := newTestTank(t)
	tank.Body().Angle = 0

	tests := []struct {
		name         string
		up, down     bool
		moved        bool
		wantX, wantY float64
	}{
		{"idle", false, false, false, 0, 0},
		{"up moves along angle-90", true, false, true, 0, -config.TankSpeed},
		{"down moves along angle+90", false, true, true, 0, config.TankSpeed},
		{"both, down wins", true, true, true, 0, config.TankSpeed},
	}
	for _, tt := range tests {
		in := aimRight(tank)
		in.Up, in.Down = tt.up, tt.down
		cmd := tank.Update(in, 0, false)
		if cmd.Moved != tt.moved {
			t.Errorf("%s: moved = %v, want %v", tt.name, cmd.Moved, tt.moved)
		}
		if math.Abs(cmd.VX-tt.wantX) > tol || math.Abs(cmd.VY-tt.wantY) > tol {
			t.Errorf("%s: velocity = (%v, %v), want (%v, %v)", tt.name, cmd.VX, cmd.VY, tt.wantX, tt.wantY)
		}
		speed := math.Hypot(cmd.VX, cmd.VY)
		if speed > tol && math.Abs(speed-config.TankSpeed) > tol {
			t.Errorf("%s: speed %v is neither 0 nor %v", tt.name, speed, config.TankSpeed)
		}
	}
}

func TestMovementFollowsBodyAngle(t *testing.T) {
	tank, _ := newTestTank(t)
	tank.Body().Angle = 90

	in := aimRight(tank)
	in.Up = true
	cmd := tank.Update(in, 0, false)
	// angle-90 = 0, вправо
	if math.Abs(cmd.VX-config.TankSpeed) > tol || math.Abs(cmd.VY) > tol {
		t.Errorf("expected (%v, 0), got (%v, %v)", config.TankSpeed, cmd.VX, cmd.VY)
	}
}

func TestVelocityResetEachFrame(t *testing.T) {
	tank, _ := newTestTank(t)
	in := aimRight(tank)
	in.Down, in.Left = true, true
	tank.Update(in, 0, false)

	cmd := tank.Update(aimRight(tank), ms(16), false)
	if cmd.VX != 0 || cmd.VY != 0 || cmd.AngularVelocity != 0 || cmd.Moved {
		t.Errorf("expected stopped tank, got %+v", cmd)
	}
}

func TestTurretBearing(t *testing.T) {
	tank, _ := newTestTank(t)
	x, y := tank.Position()
	tests := []struct {
		name       string
		aimX, aimY float64
		want       float64
	}{
		{"right", x + 50, y, -90},
		{"below", x, y + 50, 0},
		{"above", x, y - 50, -180},
		{"left", x - 50, y, 90},
	}
	for _, tt := range tests {
		cmd := tank.Update(input.Snapshot{AimX: tt.aimX, AimY: tt.aimY}, 0, false)
		if math.Abs(cmd.TurretBearing-tt.want) > tol {
			t.Errorf("%s: bearing = %v, want %v", tt.name, cmd.TurretBearing, tt.want)
		}
	}
}

func TestTurretIndependentOfBody(t *testing.T) {
	tank, _ := newTestTank(t)
	in := aimRight(tank)
	first := tank.Update(in, 0, false).TurretBearing
	tank.Body().Angle = 135
	second := tank.Update(in, ms(16), false).TurretBearing
	if first != second {
		t.Errorf("turret bearing changed with body angle: %v -> %v", first, second)
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	tank, ctx := newTestTank(t)
	x, y := tank.Position()
	in := aimRight(tank)
	in.Fire = true

	cmd := tank.Update(in, 0, false)
	if cmd.Fire == nil {
		t.Fatal("expected spawn on first shot")
	}
	if math.Abs(cmd.Fire.X-(x+config.TurretLength)) > tol || math.Abs(cmd.Fire.Y-y) > tol {
		t.Errorf("muzzle = (%v, %v), want (%v, %v)", cmd.Fire.X, cmd.Fire.Y, x+config.TurretLength, y)
	}
	if math.Abs(cmd.Fire.VX-config.ProjectileSpeed) > tol || math.Abs(cmd.Fire.VY) > tol {
		t.Errorf("spawn velocity = (%v, %v)", cmd.Fire.VX, cmd.Fire.VY)
	}
	if cmd.Fire.Damage != config.TankBulletDamage {
		t.Errorf("damage = %d, want %d", cmd.Fire.Damage, config.TankBulletDamage)
	}
	p := tank.Projectiles().Get(cmd.Fire.Slot)
	if !p.Active || p.X != cmd.Fire.X || p.VX != cmd.Fire.VX {
		t.Errorf("pool slot not initialised: %+v", *p)
	}
	if ctx.count(event.TankFired) != 1 {
		t.Errorf("expected one fire cue, got %d", ctx.count(event.TankFired))
	}
}

func TestReloadScenario(t *testing.T) {
	tank, ctx := newTestTank(t)
	in := aimRight(tank)
	in.Fire = true

	if tank.Update(in, ms(0), false).Fire == nil {
		t.Fatal("t=0: expected spawn")
	}
	if tank.Update(in, ms(150), false).Fire != nil {
		t.Fatal("t=150: expected cooldown")
	}
	if tank.Update(in, ms(201), false).Fire == nil {
		t.Fatal("t=201: expected second spawn")
	}
	if got := tank.Projectiles().Active(); got != 2 {
		t.Errorf("expected 2 active projectiles, got %d", got)
	}
	if ctx.count(event.TankFired) != 2 {
		t.Errorf("expected 2 fire cues, got %d", ctx.count(event.TankFired))
	}
}

func TestReloadBoundaryInclusive(t *testing.T) {
	tank, _ := newTestTank(t)
	in := aimRight(tank)
	in.Fire = true

	t0 := ms(1000)
	tank.Update(in, t0, false)
	if tank.Update(in, t0+config.TankReloadInterval-time.Millisecond, false).Fire != nil {
		t.Error("shot inside reload interval must not spawn")
	}
	if tank.Update(in, t0+config.TankReloadInterval, false).Fire == nil {
		t.Error("shot exactly at reload interval must spawn")
	}
}

func TestPoolExhaustionConsumesCooldown(t *testing.T) {
	tank, ctx := newTestTank(t)
	in := aimRight(tank)
	in.Fire = true

	capacity := tank.Projectiles().Capacity()
	now := time.Duration(0)
	for i := 0; i < capacity; i++ {
		if tank.Update(in, now, false).Fire == nil {
			t.Fatalf("shot %d: expected spawn", i)
		}
		now += config.TankReloadInterval
	}

	if cmd := tank.Update(in, now, false); cmd.Fire != nil {
		t.Fatal("pool exhausted: expected no spawn")
	}
	if got := tank.Projectiles().Active(); got != capacity {
		t.Errorf("expected %d active, got %d", capacity, got)
	}
	if ctx.count(event.TankFired) != capacity {
		t.Errorf("fire cue on failed spawn: %d cues", ctx.count(event.TankFired))
	}

	// Ячейка освободилась, но перезарядка уже потрачена
	tank.Projectiles().Deactivate(3)
	if tank.Update(in, now+time.Millisecond, false).Fire != nil {
		t.Error("cooldown should have been consumed by the failed shot")
	}
	cmd := tank.Update(in, now+config.TankReloadInterval, false)
	if cmd.Fire == nil || cmd.Fire.Slot != 3 {
		t.Errorf("expected reuse of slot 3, got %+v", cmd.Fire)
	}
}

func TestJumpBehindFeatureFlag(t *testing.T) {
	tank, _ := newTestTank(t)
	in := aimRight(tank)
	in.Down = true
	if cmd := tank.Update(in, 0, true); cmd.Jumped {
		t.Error("jump must be disabled by default")
	}

	features := config.DefaultFeatures()
	features.JumpOnDown = true
	jumper, _ := newTestTank(t, WithFeatures(features))
	in = aimRight(jumper)
	in.Down = true
	if cmd := jumper.Update(in, 0, false); cmd.Jumped {
		t.Error("jump requires touching ground")
	}
	cmd := jumper.Update(in, 0, true)
	if !cmd.Jumped || cmd.VY != -config.JumpImpulse {
		t.Errorf("expected jump impulse, got %+v", cmd)
	}
}

func TestApplyDamageSignalsDeathOnce(t *testing.T) {
	tank, ctx := newTestTank(t)
	for i := 0; i < 100; i++ {
		tank.ApplyDamage(1)
	}
	if hp, _ := tank.Health(); hp != 0 {
		t.Fatalf("expected 0 health, got %d", hp)
	}
	if tank.IsAlive() {
		t.Error("tank should be dead")
	}
	tank.ApplyDamage(1)
	if ctx.count(event.TankDestroyed) != 1 {
		t.Errorf("expected one death signal, got %d", ctx.count(event.TankDestroyed))
	}
}

func TestApplyDamageFloorAndIgnoresNonPositive(t *testing.T) {
	tank, ctx := newTestTank(t)
	tank.ApplyDamage(0)
	tank.ApplyDamage(-5)
	if hp, max := tank.Health(); hp != max {
		t.Errorf("non-positive damage changed health to %d", hp)
	}
	tank.ApplyDamage(250)
	if hp, _ := tank.Health(); hp != 0 {
		t.Errorf("health must be floored at 0, got %d", hp)
	}
	if ctx.count(event.TankDestroyed) != 1 {
		t.Errorf("expected one death signal, got %d", ctx.count(event.TankDestroyed))
	}
}

func TestDeadTankIgnoresInput(t *testing.T) {
	tank, ctx := newTestTank(t)
	tank.ApplyDamage(1000)
	in := aimRight(tank)
	in.Fire, in.Up, in.Left = true, true, true
	cmd := tank.Update(in, 0, false)
	if cmd.Fire != nil || cmd.Moved || cmd.AngularVelocity != 0 {
		t.Errorf("dead tank acted: %+v", cmd)
	}
	if ctx.count(event.TankFired) != 0 {
		t.Error("dead tank fired")
	}
}

func TestTerminateIdempotent(t *testing.T) {
	caption, bar := &fakeOverlay{}, &fakeOverlay{}
	tank, ctx := newTestTank(t, WithOverlays(caption, bar))

	tank.Terminate()
	tank.Terminate()

	if caption.kills != 1 || bar.kills != 1 {
		t.Errorf("overlays killed %d/%d times", caption.kills, bar.kills)
	}
	if len(ctx.removed) != 1 || ctx.removed[0] != tank.ID() {
		t.Errorf("expected one removal, got %v", ctx.removed)
	}
	if ctx.count(event.TankRemoved) != 1 {
		t.Errorf("expected one TankRemoved, got %d", ctx.count(event.TankRemoved))
	}
	if tank.Turret().Visible {
		t.Error("turret should be hidden")
	}
}

func TestOverlaysAndCamera(t *testing.T) {
	caption := &fakeOverlay{}
	tank, ctx := newTestTank(t, WithOverlays(caption), WithCameraFollow())
	tank.Body().X, tank.Body().Y = 321, 654

	tank.Update(aimRight(tank), 0, false)
	if caption.updates != 0 || ctx.centred != 0 {
		t.Fatal("overlays and camera wait for the physics step")
	}
	tank.AfterPhysics()
	tank.Update(aimRight(tank), ms(16), false)
	tank.AfterPhysics()

	if caption.updates != 2 {
		t.Errorf("expected 2 overlay updates, got %d", caption.updates)
	}
	if ctx.centred != 2 || ctx.camX != 321 || ctx.camY != 654 {
		t.Errorf("camera not centred on tank: (%v, %v) x%d", ctx.camX, ctx.camY, ctx.centred)
	}

	other, otherCtx := newTestTank(t)
	other.Update(aimRight(other), 0, false)
	other.AfterPhysics()
	if otherCtx.centred != 0 {
		t.Error("camera must follow only the tank created with WithCameraFollow")
	}
}

func TestFireControlSubState(t *testing.T) {
	tank, _ := newTestTank(t)
	if !tank.Ready(0) {
		t.Fatal("fresh tank should be ready")
	}
	in := aimRight(tank)
	in.Fire = true
	tank.Update(in, ms(500), false)
	if tank.Ready(ms(600)) {
		t.Error("expected cooling at 600ms")
	}
	if !tank.Ready(ms(700)) {
		t.Error("expected ready at 700ms")
	}
}

func TestReloadProgress(t *testing.T) {
	tank, _ := newTestTank(t)
	if tank.ReloadProgress(0) != 1 {
		t.Fatal("fresh tank should report full progress")
	}
	in := aimRight(tank)
	in.Fire = true
	tank.Update(in, ms(500), false)
	if got := tank.ReloadProgress(ms(550)); math.Abs(got-0.25) > tol {
		t.Errorf("progress at 550ms = %v, want 0.25", got)
	}
	if got := tank.ReloadProgress(ms(700)); got != 1 {
		t.Errorf("progress after reload = %v, want 1", got)
	}
}

func TestAfterPhysicsSkipsDeadTank(t *testing.T) {
	caption := &fakeOverlay{}
	tank, ctx := newTestTank(t, WithOverlays(caption), WithCameraFollow())
	tank.ApplyDamage(config.TankMaxHealth)
	tank.AfterPhysics()
	if caption.updates != 0 || ctx.centred != 0 {
		t.Error("dead tank must not update overlays or camera")
	}
}

func TestSetBulletDamageRecreatesPool(t *testing.T) {
	tank, _ := newTestTank(t)
	in := aimRight(tank)
	in.Fire = true
	tank.Update(in, 0, false)
	tank.Update(in, ms(300), false)
	if tank.Projectiles().Active() != 2 {
		t.Fatalf("expected 2 projectiles in flight")
	}

	tank.SetBulletDamage(tank.BulletDamage())
	if tank.Projectiles().Active() != 2 {
		t.Error("same damage must keep projectiles in flight")
	}

	tank.SetBulletDamage(2)
	if tank.Projectiles().Active() != 0 {
		t.Errorf("expected pool cleared, %d active", tank.Projectiles().Active())
	}
	cmd := tank.Update(in, ms(600), false)
	if cmd.Fire == nil || cmd.Fire.Damage != 2 {
		t.Fatalf("expected heavy shell, got %+v", cmd.Fire)
	}
	if p := tank.Projectiles().Get(cmd.Fire.Slot); p.Style() != component.ProjectileHeavy {
		t.Error("damage 2 shell should use the heavy style")
	}

	tank.SetBulletDamage(0)
	if tank.BulletDamage() != 2 {
		t.Error("non-positive damage is ignored")
	}
}
