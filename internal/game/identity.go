package game

import "strings"

// Reserved destroyer identification.
const (
	DestroyerTag         = "Destroyer"
	destroyerNameKeyword = "destroyer"
)

// DestroyerID identifies a credited destroyer: the scene ID of the object
// that satisfied the matching heuristic. The same destroyer therefore
// resolves to the same ID against every target, independent of destruction
// order.
type DestroyerID EntityID

// destroyerResolver tests one identification heuristic against a candidate.
type destroyerResolver func(s *Scene, obj *SceneObject) (DestroyerID, bool)

// Resolution priority is fixed: tag, own marker, ancestor marker, name.
// Each resolver returns the matched object's ID, so the tag and name paths
// credit the candidate itself while the ancestor path credits the ancestor
// carrying the marker.
var destroyerResolvers = []destroyerResolver{
	resolveByTag,
	resolveByMarker,
	resolveByAncestorMarker,
	resolveByName,
}

// ResolveDestroyer runs the resolver chain and returns the identity of the
// first match. A candidate matching no heuristic is not a destroyer; that is
// a negative result, not an error.
func ResolveDestroyer(s *Scene, obj *SceneObject) (DestroyerID, bool) {
	if obj == nil {
		return 0, false
	}
	for _, resolve := range destroyerResolvers {
		if id, ok := resolve(s, obj); ok {
			return id, true
		}
	}
	return 0, false
}

// resolveByTag matches the reserved destroyer tag exactly. When the tag was
// never defined in the scene's tag table the test simply fails; an undefined
// tag must not surface as an error.
func resolveByTag(s *Scene, obj *SceneObject) (DestroyerID, bool) {
	if s == nil || !s.TagDefined(DestroyerTag) {
		return 0, false
	}
	if obj.Tag == DestroyerTag {
		return DestroyerID(obj.ID), true
	}
	return 0, false
}

func resolveByMarker(_ *Scene, obj *SceneObject) (DestroyerID, bool) {
	if obj.Marker != nil {
		return DestroyerID(obj.ID), true
	}
	return 0, false
}

// resolveByAncestorMarker walks the composition chain above the candidate
// looking for a destroyer marker. Parent chains in this scene are short
// (projectile -> pylon -> plane).
func resolveByAncestorMarker(_ *Scene, obj *SceneObject) (DestroyerID, bool) {
	for p := obj.Parent; p != nil; p = p.Parent {
		if p.Marker != nil {
			return DestroyerID(p.ID), true
		}
	}
	return 0, false
}

func resolveByName(_ *Scene, obj *SceneObject) (DestroyerID, bool) {
	if strings.Contains(strings.ToLower(obj.Name), destroyerNameKeyword) {
		return DestroyerID(obj.ID), true
	}
	return 0, false
}
