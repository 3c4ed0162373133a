package game

// World dimensions (in world pixels).
// Large enough that the plane has room to line up attack runs; the chase
// camera only ever shows a small window of it.
const (
	WorldWidth  = 2048
	WorldHeight = 1536
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	DefaultZoom  = 2.2
	MinZoom      = 1.2
	MaxZoom      = 6.0
)

// Scoring.
const PointsPerTarget = 50

// Plane flight model.
const (
	PlaneMinSpeed   = 60.0
	PlaneMaxSpeed   = 220.0
	PlaneStartSpeed = 120.0
	PlaneThrottle   = 90.0 // speed change per second at full throttle input
	PlaneTurnRate   = 2.6  // rad/s at full rudder
	PlaneHullRadius = 5.0
	PlaneMaxHP      = 5.0
	PlaneRamDamage  = 1.0 // HP lost when ramming a target hull
)

// Weapons.
const (
	CannonRoundSpeed  = 420.0
	CannonCooldown    = 0.12
	CannonRoundLife   = 1.4
	CannonRoundRadius = 1.5

	MissileSpeed      = 260.0
	MissileTurnRate   = 3.4 // rad/s homing authority
	MissileCooldown   = 1.2
	MissileLife       = 5.0
	MissileRadius     = 2.5
	MissileSeekRange  = 500.0 // acquisition range in world pixels
)

// Targets.
const (
	TargetHullRadius      = 9.0
	TargetTriggerRadius   = 16.0
	TargetDetectionRadius = 26.0 // proximity sweep backstop range
)

// Escort drones (tutorial missions).
const (
	DroneSpeed      = 90.0
	DroneTurnRate   = 1.8
	DroneHullRadius = 4.0
)

// Chase camera.
const (
	CameraLeadTime   = 0.55 // seconds of velocity lead ahead of the plane
	CameraFollowRate = 3.2  // exponential catch-up rate
)

// Particles.
const (
	MaxParticles         = 8000
	MaxParticleRender    = 10000
	ParticleCullDistance = 600.0
)

// Scene spatial grid.
const SceneCellSize = 64

// Font atlas layout (procedural glyph atlas: 32 cols x 3 rows, ASCII 32-126).
const (
	FontGlyphW = 6 // 5 pixel columns + 1 spacing
	FontGlyphH = 8 // 7 pixel rows + 1 spacing
	FontScale  = 3 // atlas pixels per glyph pixel
	FontCellW  = FontGlyphW * FontScale
	FontCellH  = FontGlyphH * FontScale
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)
