package game

// Update integrates particle motion and expires dead particles.
func (ps *ParticleSystem) Update(dt float64) {
	kept := ps.P[:0]
	for i := range ps.P {
		p := &ps.P[i]

		// Delayed start: tick the delay off before the particle lives.
		if p.Life < 0 {
			p.Life += dt
			if p.Life > 0 {
				p.Life = 0
			}
			kept = append(kept, *p)
			continue
		}

		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt

		// Height arc for lofted debris.
		if p.Z > 0 || p.VZ != 0 {
			p.Z += p.VZ * dt
			p.VZ -= 160.0 * dt
			if p.Z < 0 {
				p.Z = 0
				p.VZ = 0
			}
		}

		// Drag; smoke additionally rises.
		switch p.Kind {
		case ParticleSmoke:
			p.VX *= 1.0 - 1.8*dt
			p.VY = p.VY*(1.0-1.8*dt) - 6.0*dt
		case ParticleFire, ParticleGlow:
			p.VX *= 1.0 - 2.6*dt
			p.VY *= 1.0 - 2.6*dt
		case ParticleSpark:
			p.VX *= 1.0 - 1.2*dt
			p.VY *= 1.0 - 1.2*dt
		}

		kept = append(kept, *p)
	}
	ps.P = kept
	if len(ps.P) < ps.ovrIdx {
		ps.ovrIdx = 0
	}
}
