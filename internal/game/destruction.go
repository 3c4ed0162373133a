package game

import "math"

// ExplodeTargetAt performs the full destruction side-effect fan-out:
// particles, shockwave, sound, camera shake. Every collaborator is
// optional; the decision that led here is already committed and a missing
// effect only means nothing visible happens.
func ExplodeTargetAt(wx, wy float64, ps *ParticleSystem, cam *Camera) {
	PlayExplosionSound(1.0)
	if cam != nil {
		cam.AddShake(3.5, 0.35)
	}
	if ps != nil {
		ps.SpawnExplosion(wx, wy, Palette.FireMid, 1.0)
		ps.SpawnShockwave(wx, wy, 22)
	}
}

// NewDestructionHooks wires the standard mission side effects for the
// target system. Removal goes through the scene; the shake hook scales
// with distance from the camera so far-off kills rumble less.
func NewDestructionHooks(scene *Scene, ps *ParticleSystem, cam *Camera) DestructionHooks {
	return DestructionHooks{
		Explosion: func(x, y float64) {
			if ps != nil {
				ps.SpawnExplosion(x, y, Palette.FireMid, 1.0)
				ps.SpawnShockwave(x, y, 22)
			}
		},
		Sound: func(x, y float64) {
			gain := 1.0
			if cam != nil {
				d := math.Hypot(x-cam.X, y-cam.Y)
				gain = clampF(1.0-d/900.0, 0.15, 1.0)
			}
			PlayExplosionSoundWithGain(1.0, gain)
		},
		Shake: func(x, y float64) {
			if cam == nil {
				return
			}
			d := math.Hypot(x-cam.X, y-cam.Y)
			intensity := clampF(4.0-d*0.01, 0.5, 4.0)
			cam.AddShake(intensity, 0.3)
		},
		Remove: func(id EntityID) {
			if scene != nil {
				scene.Remove(id)
			}
		},
	}
}
