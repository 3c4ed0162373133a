package game

import "math"

// Plane is the player's aircraft. Arcade model: heading plus scalar speed,
// bank is purely visual. The plane's scene object carries the reserved
// destroyer tag, so ramming a target resolves through the tag path.
type Plane struct {
	X, Y    float64
	Heading float64
	Speed   float64
	Bank    float64 // visual roll, follows turn input

	HP    Health
	Alive bool

	Obj *SceneObject

	CannonTimer  float64 // cooldown until next cannon round
	MissileTimer float64 // cooldown until next missile
	ramTimer     float64 // grace period between ram damage ticks

	EngineFlicker float64
}

// NewPlane spawns the plane at (x, y) heading east and registers its scene
// object.
func NewPlane(scene *Scene, x, y float64) *Plane {
	obj := scene.NewObject("player plane")
	obj.Tag = DestroyerTag
	obj.X, obj.Y = x, y
	obj.Radius = PlaneHullRadius
	return &Plane{
		X:       x,
		Y:       y,
		Heading: 0,
		Speed:   PlaneStartSpeed,
		HP:      NewHealth(PlaneMaxHP),
		Alive:   true,
		Obj:     obj,
	}
}

// Steer applies turn [-1..1] and throttle [-1..1] input for this frame.
func (p *Plane) Steer(turn, throttle, dt float64) {
	if !p.Alive {
		return
	}
	turn = clampF(turn, -1, 1)
	throttle = clampF(throttle, -1, 1)

	p.Heading += turn * PlaneTurnRate * dt
	for p.Heading > math.Pi {
		p.Heading -= 2 * math.Pi
	}
	for p.Heading <= -math.Pi {
		p.Heading += 2 * math.Pi
	}

	p.Speed = clampF(p.Speed+throttle*PlaneThrottle*dt, PlaneMinSpeed, PlaneMaxSpeed)

	// Bank eases toward the turn input, snaps back when level.
	p.Bank = approach(p.Bank, turn, 4.0*dt)
}

// SteerToward turns the plane toward a world-space point (mouse control
// scheme).
func (p *Plane) SteerToward(wx, wy, throttle, dt float64) {
	want := math.Atan2(wy-p.Y, wx-p.X)
	d := angDiff(p.Heading, want)
	turn := clampF(d/(PlaneTurnRate*dt+1e-9), -1, 1)
	p.Steer(turn, throttle, dt)
}

// Update integrates position, keeps the plane inside the world, and syncs
// the scene object.
func (p *Plane) Update(dt float64) {
	if !p.Alive {
		return
	}
	p.CannonTimer -= dt
	p.MissileTimer -= dt
	p.ramTimer -= dt
	p.EngineFlicker += dt

	p.X += math.Cos(p.Heading) * p.Speed * dt
	p.Y += math.Sin(p.Heading) * p.Speed * dt

	// Soft wall: slide along the border instead of leaving the world.
	margin := PlaneHullRadius
	p.X = clampF(p.X, margin, float64(WorldWidth)-margin)
	p.Y = clampF(p.Y, margin, float64(WorldHeight)-margin)

	p.Obj.X = p.X
	p.Obj.Y = p.Y
}

// CheckRamDamage hurts the plane while it overlaps a live target hull.
// Damage ticks are rate limited so a graze is survivable.
func (p *Plane) CheckRamDamage(ts *TargetSystem, ps *ParticleSystem, cam *Camera) {
	if !p.Alive || p.ramTimer > 0 || ts == nil {
		return
	}
	for _, t := range ts.Targets {
		if t.Removed {
			continue
		}
		dx := t.X - p.X
		dy := t.Y - p.Y
		reach := t.HullRadius + PlaneHullRadius
		if dx*dx+dy*dy > reach*reach {
			continue
		}
		p.HP.Damage(PlaneRamDamage)
		p.ramTimer = 0.8
		if ps != nil {
			ps.SpawnImpactSparks(p.X, p.Y, 10)
		}
		if cam != nil {
			cam.AddShake(2.5, 0.25)
		}
		PlaySound(SoundHit)
		if p.HP.IsDead() {
			p.Alive = false
			if ps != nil {
				ps.SpawnExplosion(p.X, p.Y, Palette.FireMid, 1.2)
			}
			PlayExplosionSound(1.4)
		}
		return
	}
}

// RenderData appends the plane's sprites to buf.
func (p *Plane) RenderData(buf []float32) []float32 {
	if !p.Alive {
		return buf
	}
	x := float32(p.X)
	y := float32(p.Y)

	cosH := math.Cos(p.Heading)
	sinH := math.Sin(p.Heading)

	// Wing span shrinks with bank for a cheap roll illusion.
	span := PlaneHullRadius * (1.0 - 0.35*math.Abs(p.Bank))
	wx := -sinH * span
	wy := cosH * span

	wing := Palette.PlaneWing
	body := Palette.PlaneBody

	buf = append(buf,
		// Wings.
		float32(p.X+wx), float32(p.Y+wy), 4.0,
		float32(wing.R)/255, float32(wing.G)/255, float32(wing.B)/255, 1, 0,
		float32(p.X-wx), float32(p.Y-wy), 4.0,
		float32(wing.R)/255, float32(wing.G)/255, float32(wing.B)/255, 1, 0,
		// Fuselage.
		x, y, 7.0,
		float32(body.R)/255, float32(body.G)/255, float32(body.B)/255, 1, 0,
		// Nose.
		float32(p.X+cosH*PlaneHullRadius*0.9), float32(p.Y+sinH*PlaneHullRadius*0.9), 3.0,
		float32(body.R)/255, float32(body.G)/255, float32(body.B)/255, 1, 0,
		// Canopy.
		float32(p.X+cosH*1.5), float32(p.Y+sinH*1.5), 2.5,
		float32(Palette.PlaneCanopy.R)/255, float32(Palette.PlaneCanopy.G)/255, float32(Palette.PlaneCanopy.B)/255, 1, 0,
	)
	return buf
}

// GlowData returns the engine exhaust glow sprite.
func (p *Plane) GlowData() []float32 {
	if !p.Alive {
		return nil
	}
	flicker := 0.8 + 0.2*math.Sin(p.EngineFlicker*31.0)
	boost := (p.Speed - PlaneMinSpeed) / (PlaneMaxSpeed - PlaneMinSpeed)
	b := float32((0.35 + 0.65*boost) * flicker)
	ex := p.X - math.Cos(p.Heading)*PlaneHullRadius
	ey := p.Y - math.Sin(p.Heading)*PlaneHullRadius
	return []float32{
		float32(ex), float32(ey), 6.0, 1.0 * b, 0.62 * b, 0.25 * b, 1, 0,
	}
}
