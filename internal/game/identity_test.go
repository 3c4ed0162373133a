package game

import "testing"

func TestResolveDestroyerPaths(t *testing.T) {
	s := NewScene()
	s.DefineTag(DestroyerTag)

	tagged := s.NewObject("player plane")
	tagged.Tag = DestroyerTag

	marked := s.NewObject("cannon round 1")
	marked.Marker = &DestroyerMarker{Weapon: "cannon"}

	pylon := s.NewObject("wing pylon")
	pylon.Marker = &DestroyerMarker{Weapon: "missile rack"}
	missile := s.NewObject("seeker 1")
	missile.Parent = pylon

	named := s.NewObject("Destroyer Drone 7")

	bystander := s.NewObject("projectile_07")

	tests := []struct {
		name   string
		obj    *SceneObject
		wantID DestroyerID
		wantOK bool
	}{
		{"tag match credits candidate", tagged, DestroyerID(tagged.ID), true},
		{"own marker credits candidate", marked, DestroyerID(marked.ID), true},
		{"ancestor marker credits ancestor", missile, DestroyerID(pylon.ID), true},
		{"name keyword case-insensitive", named, DestroyerID(named.ID), true},
		{"no heuristic matches", bystander, 0, false},
		{"nil candidate", nil, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ResolveDestroyer(s, tc.obj)
			if ok != tc.wantOK || id != tc.wantID {
				t.Errorf("ResolveDestroyer = (%d, %v), want (%d, %v)", id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestResolveDestroyerPriority(t *testing.T) {
	s := NewScene()
	s.DefineTag(DestroyerTag)

	// Candidate matches both the tag path and the ancestor-marker path; the
	// tag path runs first, so the credit goes to the candidate itself.
	parent := s.NewObject("carrier")
	parent.Marker = &DestroyerMarker{Weapon: "rack"}
	child := s.NewObject("turret")
	child.Tag = DestroyerTag
	child.Parent = parent

	id, ok := ResolveDestroyer(s, child)
	if !ok || id != DestroyerID(child.ID) {
		t.Errorf("ResolveDestroyer = (%d, %v), want (%d, true)", id, ok, child.ID)
	}
}

func TestResolveDestroyerUndefinedTag(t *testing.T) {
	s := NewScene() // destroyer tag never defined

	tagged := s.NewObject("rogue")
	tagged.Tag = DestroyerTag

	// The tag path must fail quietly; the candidate matches nothing else.
	if id, ok := ResolveDestroyer(s, tagged); ok {
		t.Errorf("undefined tag resolved to %d, want no match", id)
	}

	// Other paths are unaffected by the missing tag definition.
	named := s.NewObject("destroyer drone 1")
	if _, ok := ResolveDestroyer(s, named); !ok {
		t.Error("name path should resolve regardless of tag table")
	}
}

func TestResolveDestroyerStableAcrossTargets(t *testing.T) {
	s := NewScene()
	pylon := s.NewObject("wing pylon")
	pylon.Marker = &DestroyerMarker{Weapon: "missile rack"}

	a := s.NewObject("seeker 1")
	a.Parent = pylon
	b := s.NewObject("seeker 2")
	b.Parent = pylon

	idA, _ := ResolveDestroyer(s, a)
	idB, _ := ResolveDestroyer(s, b)
	if idA != idB {
		t.Errorf("missiles sharing a pylon resolved to %d and %d, want equal", idA, idB)
	}
}
