package game

// EntityID uniquely identifies a scene object for the object's lifetime.
// IDs are never reused within a process.
type EntityID uint32

// DestroyerMarker is a behaviour marker attached to objects whose contact
// destroys targets. The weapon name is informational (HUD, diagnostics).
type DestroyerMarker struct {
	Weapon string
}

// SceneObject is the minimal surface the destruction logic needs from any
// object in the scene: identity, display name, optional tag, optional
// destroyer marker, composition parent, and a position with a hull radius.
type SceneObject struct {
	ID     EntityID
	Name   string
	Tag    string // "" = untagged
	Parent *SceneObject
	Marker *DestroyerMarker

	X, Y   float64
	Radius float64 // physical hull radius

	dead bool
}

// Alive reports whether the object is still part of the scene.
func (o *SceneObject) Alive() bool { return o != nil && !o.dead }

// Scene owns every live object, the tag table, and a uniform grid for
// radius queries. It is rebuilt per mission; process-wide state lives in
// ScoreLedger and RunConfig, not here.
type Scene struct {
	nextID  EntityID
	objects map[EntityID]*SceneObject
	tags    map[string]bool
	grid    *sceneGrid
}

func NewScene() *Scene {
	return &Scene{
		nextID:  1,
		objects: make(map[EntityID]*SceneObject),
		tags:    make(map[string]bool),
		grid:    newSceneGrid(WorldWidth, WorldHeight, SceneCellSize),
	}
}

// DefineTag registers a tag name in the scene's tag table. Tags that were
// never defined behave as absent on every object; looking one up is not an
// error (see TagDefined).
func (s *Scene) DefineTag(tag string) {
	if tag == "" {
		return
	}
	s.tags[tag] = true
}

// TagDefined reports whether a tag name exists in the tag table. Undefined
// tags are a normal outcome, never a failure.
func (s *Scene) TagDefined(tag string) bool {
	return s.tags[tag]
}

// NewObject registers and returns a fresh scene object at the origin.
func (s *Scene) NewObject(name string) *SceneObject {
	o := &SceneObject{ID: s.nextID, Name: name}
	s.nextID++
	s.objects[o.ID] = o
	return o
}

// Object returns the live object with the given ID, or nil.
func (s *Scene) Object(id EntityID) *SceneObject {
	return s.objects[id]
}

// Remove takes an object out of the scene. Removing an unknown or already
// removed ID is a no-op.
func (s *Scene) Remove(id EntityID) {
	o, ok := s.objects[id]
	if !ok {
		return
	}
	o.dead = true
	delete(s.objects, id)
}

// Len returns the number of live objects.
func (s *Scene) Len() int { return len(s.objects) }

// RebuildIndex refreshes the spatial grid from current object positions.
// Call once per frame before contact scans.
func (s *Scene) RebuildIndex() {
	s.grid.rebuild(s.objects)
}

// QueryRadius calls fn for every live object within radius of (x, y).
// Visit order is unspecified.
func (s *Scene) QueryRadius(x, y, radius float64, fn func(*SceneObject)) {
	s.grid.query(x, y, radius, fn)
}
