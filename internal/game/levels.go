package game

import (
	"fmt"
	"math"
)

// MissionConfig describes one mission's target mix.
type MissionConfig struct {
	Name      string
	Balloons  int
	Domes     int
	Depots    int
	Drones    int     // escort drones (tutorial only)
	TimeLimit float64 // seconds; 0 = play until all targets are down
}

// GetMissionConfig returns settings for a campaign mission.
// Missions 1-6 are hand-crafted; beyond that scales up procedurally.
func GetMissionConfig(mission int) MissionConfig {
	switch mission {
	case 1:
		// Gentle start: a line of balloons, no hard targets.
		return MissionConfig{Name: "BALLOON ALLEY", Balloons: 6}
	case 2:
		// First ground targets; domes are worth strafing practice.
		return MissionConfig{Name: "LISTENING POST", Balloons: 4, Domes: 3}
	case 3:
		return MissionConfig{Name: "SUPPLY RAID", Balloons: 3, Domes: 2, Depots: 4}
	case 4:
		return MissionConfig{Name: "PICKET LINE", Balloons: 10, Domes: 2}
	case 5:
		return MissionConfig{Name: "DEEP STRIKE", Balloons: 6, Domes: 5, Depots: 5}
	case 6:
		return MissionConfig{Name: "SCORCHED SKY", Balloons: 12, Domes: 6, Depots: 6}
	}

	// Procedural scaling past the crafted set.
	n := mission - 6
	return MissionConfig{
		Name:     fmt.Sprintf("SORTIE %d", mission),
		Balloons: 12 + n*2,
		Domes:    6 + n,
		Depots:   6 + n,
	}
}

// TutorialMissionConfig is the free-fly practice range: persistent targets,
// escort drones, fixed duration.
func TutorialMissionConfig() MissionConfig {
	return MissionConfig{
		Name:      "PRACTICE RANGE",
		Balloons:  5,
		Domes:     2,
		Depots:    1,
		Drones:    3,
		TimeLimit: 120,
	}
}

// TargetCount returns the total number of targets the config spawns.
func (c MissionConfig) TargetCount() int {
	return c.Balloons + c.Domes + c.Depots
}

// PlaceTargets spawns the mission's targets with deterministic, spaced-out
// placement. Targets keep clear of the airstrip corner where the plane
// starts.
func PlaceTargets(ts *TargetSystem, cfg MissionConfig, seed uint64) {
	r := NewRand(splitmix64(seed ^ 0x7A26E7))

	place := func(kind TargetKind, count int) {
		for i := 0; i < count; i++ {
			x, y := pickTargetPos(ts, r)
			ts.Spawn(kind, x, y)
		}
	}
	place(TargetBalloon, cfg.Balloons)
	place(TargetRadarDome, cfg.Domes)
	place(TargetFuelDepot, cfg.Depots)
}

// pickTargetPos finds a position keeping minimum spacing from existing
// targets and the start area. Gives up after a bounded number of tries and
// takes the last candidate.
func pickTargetPos(ts *TargetSystem, r *Rand) (float64, float64) {
	const margin = 80.0
	const minSpacing = 90.0
	var x, y float64
	for tries := 0; tries < 20; tries++ {
		x = r.RangeF(margin, float64(WorldWidth)-margin)
		y = r.RangeF(margin, float64(WorldHeight)-margin)
		if math.Hypot(x-PlaneStartX, y-PlaneStartY) < 260 {
			continue
		}
		ok := true
		for _, t := range ts.Targets {
			if math.Hypot(t.X-x, t.Y-y) < minSpacing {
				ok = false
				break
			}
		}
		if ok {
			break
		}
	}
	return x, y
}

// Plane start position (on the airstrip in the south-west corner).
const (
	PlaneStartX = 220.0
	PlaneStartY = float64(WorldHeight) - 200.0
)
