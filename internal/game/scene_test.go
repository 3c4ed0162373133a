package game

import "testing"

func TestSceneRemoveIsIdempotent(t *testing.T) {
	s := NewScene()
	o := s.NewObject("balloon 1")
	id := o.ID

	s.Remove(id)
	if s.Object(id) != nil {
		t.Fatal("object still live after Remove")
	}
	if o.Alive() {
		t.Error("removed object reports alive")
	}
	// Unknown and repeat removals are no-ops.
	s.Remove(id)
	s.Remove(9999)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSceneIDsNeverReused(t *testing.T) {
	s := NewScene()
	a := s.NewObject("first")
	s.Remove(a.ID)
	b := s.NewObject("second")
	if b.ID == a.ID {
		t.Errorf("ID %d was reused", a.ID)
	}
}

func TestQueryRadius(t *testing.T) {
	s := NewScene()
	near := s.NewObject("near")
	near.X, near.Y = 100, 100
	edge := s.NewObject("edge")
	edge.X, edge.Y = 100, 148 // within a 50 radius of (100, 100)
	far := s.NewObject("far")
	far.X, far.Y = 400, 400

	s.RebuildIndex()

	found := map[EntityID]bool{}
	s.QueryRadius(100, 100, 50, func(o *SceneObject) { found[o.ID] = true })

	if !found[near.ID] || !found[edge.ID] {
		t.Errorf("query missed in-range objects: %v", found)
	}
	if found[far.ID] {
		t.Error("query returned an out-of-range object")
	}
}

func TestQueryRadiusSkipsDead(t *testing.T) {
	s := NewScene()
	o := s.NewObject("balloon 1")
	o.X, o.Y = 100, 100
	s.RebuildIndex()
	s.Remove(o.ID)

	hits := 0
	s.QueryRadius(100, 100, 50, func(*SceneObject) { hits++ })
	if hits != 0 {
		t.Errorf("query visited %d dead objects, want 0", hits)
	}
}

func TestQueryRadiusClampsToWorldEdge(t *testing.T) {
	s := NewScene()
	corner := s.NewObject("corner")
	corner.X, corner.Y = 2, 2
	s.RebuildIndex()

	hits := 0
	s.QueryRadius(0, 0, 10, func(*SceneObject) { hits++ })
	if hits != 1 {
		t.Errorf("corner query hits = %d, want 1", hits)
	}
}
