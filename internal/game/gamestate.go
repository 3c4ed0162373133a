package game

type GameState int

const (
	StateMenu            GameState = iota
	StatePlaying                   // main gameplay
	StateMissionComplete           // all targets down (or practice time up)
	StateMissionFailed             // plane destroyed
)

// Mission bundles the per-mission systems that are torn down and rebuilt
// between scenes. The score ledger and run config are deliberately not in
// here: they belong to the process and survive every rebuild.
type Mission struct {
	Config MissionConfig

	Scene     *Scene
	Targets   *TargetSystem
	Plane     *Plane
	Weapons   *WeaponSystem
	Drones    *DroneSystem
	Particles *ParticleSystem
	Terrain   *Terrain
}

// GameSession tracks which scene is active and drives transitions between
// them. It borrows the process-wide ledger and run config by reference.
type GameSession struct {
	State          GameState
	CurrentMission int
	MissionTimer   float64

	run    *RunConfig
	ledger *ScoreLedger
}

func NewGameSession(run *RunConfig, ledger *ScoreLedger) *GameSession {
	return &GameSession{
		State:  StateMenu,
		run:    run,
		ledger: ledger,
	}
}

// Policy returns the active lifecycle policy (normal when no run config
// was provided).
func (s *GameSession) Policy() LifecyclePolicy {
	if s.run == nil {
		return PolicyNormal
	}
	return s.run.Policy()
}

// StartMission builds a fresh scene with all per-mission systems wired and
// switches the session into gameplay. Destruction side effects are routed
// through the given camera.
func (s *GameSession) StartMission(mission int, seed uint64, cam *Camera) *Mission {
	s.CurrentMission = mission
	s.MissionTimer = 0
	s.State = StatePlaying

	var cfg MissionConfig
	if s.Policy() == PolicyTutorial {
		cfg = TutorialMissionConfig()
	} else {
		cfg = GetMissionConfig(mission)
	}

	missionSeed := splitmix64(seed ^ uint64(mission)*0x9E3779B185EBCA87)

	scene := NewScene()
	scene.DefineTag(DestroyerTag)

	particles := NewParticleSystem(MaxParticles, missionSeed^0xBEAD)

	plane := NewPlane(scene, PlaneStartX, PlaneStartY)
	weapons := NewWeaponSystem(scene, plane)

	targets := NewTargetSystem(scene, s.run, s.ledger)
	targets.SetHooks(NewDestructionHooks(scene, particles, cam))
	PlaceTargets(targets, cfg, missionSeed)

	drones := NewDroneSystem(scene, missionSeed^0xD20)
	if cfg.Drones > 0 {
		drones.Spawn(cfg.Drones, float64(WorldWidth)/2, float64(WorldHeight)/2)
	}

	if cam != nil {
		cam.X = plane.X
		cam.Y = plane.Y
	}

	return &Mission{
		Config:    cfg,
		Scene:     scene,
		Targets:   targets,
		Plane:     plane,
		Weapons:   weapons,
		Drones:    drones,
		Particles: particles,
		Terrain:   NewTerrain(missionSeed ^ 0x7E22A1),
	}
}

// Update advances the mission timer.
func (s *GameSession) Update(dt float64) {
	if s.State == StatePlaying {
		s.MissionTimer += dt
	}
}

// TimeLeft returns the remaining practice time, or 0 when untimed.
func (s *GameSession) TimeLeft(m *Mission) float64 {
	if m == nil || m.Config.TimeLimit <= 0 {
		return 0
	}
	left := m.Config.TimeLimit - s.MissionTimer
	if left < 0 {
		left = 0
	}
	return left
}

// CheckMissionEnd evaluates win/lose for the active mission.
func (s *GameSession) CheckMissionEnd(m *Mission) {
	if s.State != StatePlaying || m == nil {
		return
	}

	// Lose: plane is down.
	if m.Plane == nil || !m.Plane.Alive {
		s.State = StateMissionFailed
		PlaySound(SoundGameOver)
		return
	}

	if s.Policy() == PolicyTutorial {
		// Practice range ends on the clock; targets persist throughout.
		if m.Config.TimeLimit > 0 && s.MissionTimer >= m.Config.TimeLimit {
			s.State = StateMissionComplete
			PlaySound(SoundMissionDone)
		}
		return
	}

	// Win: every target destroyed.
	if m.Targets.AliveCount() == 0 {
		s.State = StateMissionComplete
		PlaySound(SoundMissionDone)
	}
}
