package game

import (
	"fmt"
	"math"
)

// Drone is an autonomous escort used in tutorial missions. Drones carry no
// tag or marker; their display name contains the reserved keyword, so they
// resolve as destroyers through the name path and each drone is a distinct
// identity for per-destroyer crediting.
type Drone struct {
	X, Y    float64
	Heading float64
	Obj     *SceneObject

	wanderX, wanderY float64
	retarget         float64
}

// DroneSystem owns the escort drones of a mission.
type DroneSystem struct {
	Drones []Drone
	scene  *Scene
	seed   uint64
	rnd    *Rand
}

func NewDroneSystem(scene *Scene, seed uint64) *DroneSystem {
	return &DroneSystem{scene: scene, seed: seed, rnd: NewRand(seed)}
}

// Spawn adds n drones scattered around (cx, cy).
func (ds *DroneSystem) Spawn(n int, cx, cy float64) {
	for i := 0; i < n; i++ {
		obj := ds.scene.NewObject(fmt.Sprintf("destroyer drone %d", len(ds.Drones)+1))
		obj.Radius = DroneHullRadius
		d := Drone{
			X:       clampF(cx+ds.rnd.RangeF(-200, 200), 20, float64(WorldWidth)-20),
			Y:       clampF(cy+ds.rnd.RangeF(-200, 200), 20, float64(WorldHeight)-20),
			Heading: ds.rnd.RangeF(-math.Pi, math.Pi),
			Obj:     obj,
		}
		obj.X, obj.Y = d.X, d.Y
		ds.Drones = append(ds.Drones, d)
	}
}

// Reset removes all drones (mission teardown).
func (ds *DroneSystem) Reset() {
	for i := range ds.Drones {
		ds.scene.Remove(ds.Drones[i].Obj.ID)
	}
	ds.Drones = ds.Drones[:0]
}

// Update steers each drone toward its wander point, drifting through
// target rows so tutorial credit accumulates naturally.
func (ds *DroneSystem) Update(dt float64, ts *TargetSystem) {
	for i := range ds.Drones {
		d := &ds.Drones[i]

		d.retarget -= dt
		if d.retarget <= 0 {
			d.retarget = ds.rnd.RangeF(2.5, 6.0)
			if tx, ty, ok := nearestTarget(ts, d.X, d.Y, 700); ok && ds.rnd.Float64() < 0.6 {
				d.wanderX = tx + ds.rnd.RangeF(-10, 10)
				d.wanderY = ty + ds.rnd.RangeF(-10, 10)
			} else {
				d.wanderX = ds.rnd.RangeF(60, float64(WorldWidth)-60)
				d.wanderY = ds.rnd.RangeF(60, float64(WorldHeight)-60)
			}
		}

		want := math.Atan2(d.wanderY-d.Y, d.wanderX-d.X)
		diff := angDiff(d.Heading, want)
		maxTurn := DroneTurnRate * dt
		d.Heading += clampF(diff, -maxTurn, maxTurn)

		d.X += math.Cos(d.Heading) * DroneSpeed * dt
		d.Y += math.Sin(d.Heading) * DroneSpeed * dt
		d.X = clampF(d.X, 10, float64(WorldWidth)-10)
		d.Y = clampF(d.Y, 10, float64(WorldHeight)-10)

		d.Obj.X, d.Obj.Y = d.X, d.Y
	}
}

// RenderData appends drone sprites to buf.
func (ds *DroneSystem) RenderData(buf []float32) []float32 {
	body := Palette.DroneBody
	eye := Palette.DroneEye
	for i := range ds.Drones {
		d := &ds.Drones[i]
		nx := d.X + math.Cos(d.Heading)*DroneHullRadius*0.7
		ny := d.Y + math.Sin(d.Heading)*DroneHullRadius*0.7
		buf = append(buf,
			float32(d.X), float32(d.Y), float32(DroneHullRadius)*1.8,
			float32(body.R)/255, float32(body.G)/255, float32(body.B)/255, 1, 0,
			float32(nx), float32(ny), 2.0,
			float32(eye.R)/255, float32(eye.G)/255, float32(eye.B)/255, 1, 0,
		)
	}
	return buf
}
