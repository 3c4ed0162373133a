package game

import (
	"fmt"
	"math"
)

// CannonRound is a straight-flying projectile. Each round owns a scene
// object with its own destroyer marker, so every round is a distinct
// destroyer identity.
type CannonRound struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Obj    *SceneObject
}

// Missile is a homing projectile. Missile objects are parented to the
// plane's weapon pylon and carry no marker of their own; identity resolves
// through the ancestor-marker path to the pylon.
type Missile struct {
	X, Y    float64
	Heading float64
	Life    float64
	Obj     *SceneObject
	smoke   float64 // time until next trail puff
}

// WeaponSystem owns the plane's cannon rounds and missiles plus the pylon
// object that anchors missile identity.
type WeaponSystem struct {
	Rounds   []CannonRound
	Missiles []Missile

	scene *Scene
	pylon *SceneObject
	seq   int // projectile naming counter
}

// NewWeaponSystem registers the weapon pylon as a child of the plane's
// scene object. The pylon carries the destroyer marker shared by all
// missiles.
func NewWeaponSystem(scene *Scene, plane *Plane) *WeaponSystem {
	pylon := scene.NewObject("wing pylon")
	pylon.Parent = plane.Obj
	pylon.Marker = &DestroyerMarker{Weapon: "missile rack"}
	return &WeaponSystem{scene: scene, pylon: pylon}
}

// PylonID returns the destroyer identity shared by all missiles.
func (ws *WeaponSystem) PylonID() DestroyerID { return DestroyerID(ws.pylon.ID) }

// FireCannon launches a round from the plane's nose if the cannon is off
// cooldown.
func (ws *WeaponSystem) FireCannon(p *Plane, ps *ParticleSystem) {
	if p == nil || !p.Alive || p.CannonTimer > 0 {
		return
	}
	p.CannonTimer = CannonCooldown

	ws.seq++
	obj := ws.scene.NewObject(fmt.Sprintf("cannon round %d", ws.seq))
	obj.Marker = &DestroyerMarker{Weapon: "cannon"}
	obj.Radius = CannonRoundRadius

	cosH := math.Cos(p.Heading)
	sinH := math.Sin(p.Heading)
	r := CannonRound{
		X:    p.X + cosH*PlaneHullRadius,
		Y:    p.Y + sinH*PlaneHullRadius,
		VX:   cosH*CannonRoundSpeed + cosH*p.Speed,
		VY:   sinH*CannonRoundSpeed + sinH*p.Speed,
		Life: CannonRoundLife,
		Obj:  obj,
	}
	obj.X, obj.Y = r.X, r.Y
	ws.Rounds = append(ws.Rounds, r)

	if ps != nil {
		ps.SpawnMuzzleFlash(r.X, r.Y)
	}
	PlaySound(SoundCannon)
}

// FireMissile launches a homing missile if off cooldown.
func (ws *WeaponSystem) FireMissile(p *Plane, ps *ParticleSystem) {
	if p == nil || !p.Alive || p.MissileTimer > 0 {
		return
	}
	p.MissileTimer = MissileCooldown

	ws.seq++
	obj := ws.scene.NewObject(fmt.Sprintf("seeker %d", ws.seq))
	obj.Parent = ws.pylon
	obj.Radius = MissileRadius

	m := Missile{
		X:       p.X,
		Y:       p.Y,
		Heading: p.Heading,
		Life:    MissileLife,
		Obj:     obj,
	}
	obj.X, obj.Y = m.X, m.Y
	ws.Missiles = append(ws.Missiles, m)
	PlaySound(SoundMissile)
}

// Update advances projectiles, steers missiles toward the nearest live
// target, and expires spent ordnance (removing their scene objects).
func (ws *WeaponSystem) Update(dt float64, ts *TargetSystem, ps *ParticleSystem) {
	keptRounds := ws.Rounds[:0]
	for i := range ws.Rounds {
		r := &ws.Rounds[i]
		r.Life -= dt
		r.X += r.VX * dt
		r.Y += r.VY * dt
		if r.Life <= 0 || !insideWorld(r.X, r.Y) {
			ws.scene.Remove(r.Obj.ID)
			continue
		}
		r.Obj.X, r.Obj.Y = r.X, r.Y
		keptRounds = append(keptRounds, *r)
	}
	ws.Rounds = keptRounds

	keptMissiles := ws.Missiles[:0]
	for i := range ws.Missiles {
		m := &ws.Missiles[i]
		m.Life -= dt

		if tx, ty, ok := nearestTarget(ts, m.X, m.Y, MissileSeekRange); ok {
			want := math.Atan2(ty-m.Y, tx-m.X)
			d := angDiff(m.Heading, want)
			maxTurn := MissileTurnRate * dt
			m.Heading += clampF(d, -maxTurn, maxTurn)
		}
		m.X += math.Cos(m.Heading) * MissileSpeed * dt
		m.Y += math.Sin(m.Heading) * MissileSpeed * dt

		m.smoke -= dt
		if ps != nil && m.smoke <= 0 {
			ps.SpawnSmokePuff(m.X, m.Y)
			m.smoke = 0.03
		}

		if m.Life <= 0 || !insideWorld(m.X, m.Y) {
			ws.scene.Remove(m.Obj.ID)
			if ps != nil {
				ps.SpawnImpactSparks(m.X, m.Y, 6)
			}
			continue
		}
		m.Obj.X, m.Obj.Y = m.X, m.Y
		keptMissiles = append(keptMissiles, *m)
	}
	ws.Missiles = keptMissiles
}

// Reset expires all in-flight ordnance (mission teardown).
func (ws *WeaponSystem) Reset() {
	for i := range ws.Rounds {
		ws.scene.Remove(ws.Rounds[i].Obj.ID)
	}
	for i := range ws.Missiles {
		ws.scene.Remove(ws.Missiles[i].Obj.ID)
	}
	ws.Rounds = ws.Rounds[:0]
	ws.Missiles = ws.Missiles[:0]
}

func insideWorld(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(WorldWidth) && y < float64(WorldHeight)
}

// nearestTarget returns the closest live target within maxDist.
func nearestTarget(ts *TargetSystem, x, y, maxDist float64) (float64, float64, bool) {
	if ts == nil {
		return 0, 0, false
	}
	best := maxDist * maxDist
	found := false
	var bx, by float64
	for _, t := range ts.Targets {
		if t.Removed {
			continue
		}
		dx := t.X - x
		dy := t.Y - y
		d2 := dx*dx + dy*dy
		if d2 < best {
			best = d2
			bx, by = t.X, t.Y
			found = true
		}
	}
	return bx, by, found
}

// RenderData appends tracer and missile sprites to buf.
func (ws *WeaponSystem) RenderData(buf []float32) []float32 {
	tr := Palette.Tracer
	for i := range ws.Rounds {
		r := &ws.Rounds[i]
		buf = append(buf,
			float32(r.X), float32(r.Y), 2.0,
			float32(tr.R)/255, float32(tr.G)/255, float32(tr.B)/255, 1, 0,
		)
	}
	mb := Palette.MissileTail
	for i := range ws.Missiles {
		m := &ws.Missiles[i]
		buf = append(buf,
			float32(m.X), float32(m.Y), 3.0,
			float32(mb.R)/255, float32(mb.G)/255, float32(mb.B)/255, 1, 0,
		)
	}
	return buf
}

// GlowData appends exhaust glow for in-flight missiles.
func (ws *WeaponSystem) GlowData(buf []float32) []float32 {
	for i := range ws.Missiles {
		m := &ws.Missiles[i]
		ex := m.X - math.Cos(m.Heading)*3.0
		ey := m.Y - math.Sin(m.Heading)*3.0
		buf = append(buf, float32(ex), float32(ey), 4.0, 0.9, 0.55, 0.2, 1, 0)
	}
	return buf
}
