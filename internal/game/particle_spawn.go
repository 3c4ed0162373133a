package game

import "math"

// SpawnExplosion emits a fireball plus smoke and debris at (wx, wy).
// intensity scales particle count and spread.
func (ps *ParticleSystem) SpawnExplosion(wx, wy float64, col RGB, intensity float64) {
	if intensity <= 0 {
		return
	}
	r := NewRand(hash2D(ps.seed^0xF1EBA11, int(wx), int(wy)))

	// Core fireball.
	for i := 0; i < int(60*intensity)+20; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(14, 85) * intensity
		ps.Add(Particle{
			X: wx, Y: wy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0, 6), VZ: r.RangeF(20, 70),
			Size: r.RangeF(1.2, 2.4), MaxLife: r.RangeF(0.35, 0.9),
			Col: col, Kind: ParticleFire,
		})
	}
	// Smoke column, slightly delayed.
	for i := 0; i < int(24*intensity)+8; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(4, 22)
		ps.Add(Particle{
			X: wx + r.RangeF(-3, 3), Y: wy + r.RangeF(-3, 3),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - r.RangeF(4, 14),
			Life: -r.RangeF(0, 0.25),
			Size: r.RangeF(1.8, 3.4), MaxLife: r.RangeF(0.9, 2.2),
			Col: Palette.Smoke, Kind: ParticleSmoke,
		})
	}
	// Hot debris.
	for i := 0; i < int(18*intensity); i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(40, 140)
		ps.Add(Particle{
			X: wx, Y: wy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(1, 8), VZ: r.RangeF(30, 90),
			Size: r.RangeF(0.8, 1.4), MaxLife: r.RangeF(0.5, 1.3),
			Col: Palette.RigMetal.Add(r.Range(-20, 20), r.Range(-20, 20), r.Range(-20, 20)),
			Kind: ParticleDebris,
		})
	}
}

// SpawnShockwave emits an expanding pressure ring.
func (ps *ParticleSystem) SpawnShockwave(wx, wy float64, radius int) {
	if radius <= 0 {
		return
	}
	r := NewRand(hash2D(ps.seed^0x5A0C4, int(wx), int(wy)))
	n := 26
	for i := 0; i < n; i++ {
		ang := (float64(i) / float64(n)) * 2 * math.Pi
		spd := float64(radius) * r.RangeF(2.4, 3.0)
		ps.Add(Particle{
			X: wx, Y: wy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: 1.2, MaxLife: 0.35,
			Col: RGB{R: 230, G: 225, B: 210}, Kind: ParticleWave,
		})
	}
}

// SpawnMuzzleFlash emits a short cannon flash.
func (ps *ParticleSystem) SpawnMuzzleFlash(wx, wy float64) {
	r := NewRand(ps.bump())
	for i := 0; i < 4; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(8, 30)
		ps.Add(Particle{
			X: wx, Y: wy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(0.8, 1.6), MaxLife: r.RangeF(0.05, 0.14),
			Col: Palette.Glow, Kind: ParticleGlow,
		})
	}
}

// SpawnSmokePuff emits one missile-trail puff.
func (ps *ParticleSystem) SpawnSmokePuff(wx, wy float64) {
	r := NewRand(ps.bump())
	ps.Add(Particle{
		X: wx + r.RangeF(-0.8, 0.8), Y: wy + r.RangeF(-0.8, 0.8),
		VX: r.RangeF(-4, 4), VY: r.RangeF(-4, 4),
		Size: r.RangeF(1.0, 1.8), MaxLife: r.RangeF(0.5, 1.1),
		Col: Palette.Smoke, Kind: ParticleSmoke,
	})
}

// SpawnImpactSparks emits hot sparks at a contact point.
func (ps *ParticleSystem) SpawnImpactSparks(wx, wy float64, n int) {
	r := NewRand(ps.bump())
	for i := 0; i < n; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(30, 110)
		ps.Add(Particle{
			X: wx, Y: wy,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(0.6, 1.1), MaxLife: r.RangeF(0.15, 0.45),
			Col: Palette.Tracer, Kind: ParticleSpark,
		})
	}
}

// bump advances the spawn seed so consecutive effects do not correlate.
func (ps *ParticleSystem) bump() uint64 {
	ps.seed = splitmix64(ps.seed)
	return ps.seed
}
