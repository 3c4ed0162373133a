package game

import "math"

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleFire
	ParticleGlow
	ParticleSmoke
	ParticleSpark
	ParticleWave
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Z, VZ  float64

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// RenderData splits particles into glow (additive) and normal (alpha
// blend) buffers. Format: [x, y, size, r, g, b, a, rotation] * N.
// Particles further than ParticleCullDistance from (cx, cy) are skipped.
func (ps *ParticleSystem) RenderData(glowBuf, normBuf []float32, cx, cy float64) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	const cull2 = ParticleCullDistance * ParticleCullDistance
	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		dx, dy := p.X-cx, p.Y-cy
		if dx*dx+dy*dy > cull2 {
			continue
		}
		t := p.Life / p.MaxLife
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		col := p.Col
		a := 1.0 - t

		switch p.Kind {
		case ParticleDebris, ParticleWave:
			a = 1.0
		case ParticleSmoke:
			fadeIn := t / 0.18
			if fadeIn > 1 {
				fadeIn = 1
			}
			a = (1.0 - t) * fadeIn * 0.85
		case ParticleGlow:
			a = (1.0 - t) * 1.15
		case ParticleSpark:
			a = 1.0 - t*0.5
		case ParticleFire:
			fadeIn := t / 0.08
			if fadeIn > 1 {
				fadeIn = 1
			}
			a = (1.0 - t) * fadeIn * 1.25
			if t < 0.5 {
				col = lerpRGB(Palette.FireHot, Palette.FireMid, t*2.0)
			} else {
				col = lerpRGB(Palette.FireMid, Palette.FireCool, (t-0.5)*2.0)
			}
		}
		if a <= 0 {
			continue
		}

		visSize := p.Size
		if p.Z > 0 {
			zScale := p.Z * 0.02
			if zScale > 2.0 {
				zScale = 2.0
			}
			visSize += zScale
		}
		if p.Kind == ParticleSmoke {
			visSize *= 1.0 + t*1.6
		}
		if p.Kind == ParticleWave {
			visSize *= 1.0 + t*3.0
		}

		rc := float32(col.R) / 255.0
		gc := float32(col.G) / 255.0
		bc := float32(col.B) / 255.0
		ac := float32(clampF(a, 0, 1))

		// Additive: pre-multiply color by alpha.
		if p.Kind == ParticleGlow || p.Kind == ParticleFire || p.Kind == ParticleSpark {
			rc *= ac
			gc *= ac
			bc *= ac
		}

		sx := float32(math.Round(p.X))
		sy := float32(math.Round(p.Y))
		sz := float32(visSize)

		if p.Kind == ParticleGlow || p.Kind == ParticleFire || p.Kind == ParticleSpark {
			glowBuf = append(glowBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		} else {
			normBuf = append(normBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		}
	}
	return glowBuf, normBuf
}
