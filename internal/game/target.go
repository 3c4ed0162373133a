package game

import (
	"fmt"
	"math"
	"os"
	"sync"
)

// TargetKind selects the visual variant of a destructible installation.
type TargetKind int

const (
	TargetBalloon TargetKind = iota
	TargetRadarDome
	TargetFuelDepot
)

// Target is one destructible installation. The hull object carries the
// contact volumes; the rig object is the composite parent (tether winch,
// dome base) that is removed together with the hull.
type Target struct {
	Kind TargetKind
	Obj  *SceneObject // hull and trigger carrier
	Rig  *SceneObject // composite parent, may be nil

	X, Y float64

	HullRadius      float64
	TriggerRadius   float64
	DetectionRadius float64

	// Destroyed is the terminal state under the normal policy. It is set
	// before any destruction side effect runs so that redundant signals in
	// the same step observe it.
	Destroyed bool
	// Removed is set once removal of the scene objects has been requested.
	// Requesting removal again is a no-op.
	Removed bool

	// handled records destroyers already credited under the tutorial
	// policy. It only grows for the target's lifetime.
	handled map[DestroyerID]struct{}

	BobPhase float64 // visual bobbing
}

// HandledCount returns how many distinct destroyers have been credited
// against this target (tutorial policy).
func (t *Target) HandledCount() int { return len(t.handled) }

// DestructionHooks are the fire-and-forget side effects run after a
// destruction credit is committed. Any field may be nil: a missing
// collaborator degrades that effect and never aborts the committed
// decision.
type DestructionHooks struct {
	Explosion func(x, y float64)
	Sound     func(x, y float64)
	Shake     func(x, y float64)
	Remove    func(id EntityID)
}

// TargetSystem owns the destructible targets and reconciles the three
// contact channels (trigger volume, physical collision, proximity sweep)
// into at most one destruction credit per policy rule. All three channels
// funnel through HandleContact, so the idempotency rule exists in exactly
// one place.
type TargetSystem struct {
	mu sync.Mutex

	Targets []*Target

	scene    *Scene
	run      *RunConfig
	ledger   *ScoreLedger
	hooks    DestructionHooks
	contacts *ContactTracker
}

func NewTargetSystem(scene *Scene, run *RunConfig, ledger *ScoreLedger) *TargetSystem {
	return &TargetSystem{
		scene:    scene,
		run:      run,
		ledger:   ledger,
		contacts: NewContactTracker(),
	}
}

// SetHooks installs the destruction side-effect collaborators.
func (ts *TargetSystem) SetHooks(h DestructionHooks) {
	ts.hooks = h
}

// Spawn creates a target of the given kind at (x, y), registering its rig
// and hull objects in the scene.
func (ts *TargetSystem) Spawn(kind TargetKind, x, y float64) *Target {
	n := len(ts.Targets) + 1
	var rigName, hullName string
	switch kind {
	case TargetRadarDome:
		rigName = fmt.Sprintf("radar base %d", n)
		hullName = fmt.Sprintf("radar dome %d", n)
	case TargetFuelDepot:
		rigName = fmt.Sprintf("depot yard %d", n)
		hullName = fmt.Sprintf("fuel depot %d", n)
	default:
		rigName = fmt.Sprintf("balloon winch %d", n)
		hullName = fmt.Sprintf("balloon %d", n)
	}

	rig := ts.scene.NewObject(rigName)
	rig.X, rig.Y = x, y

	hull := ts.scene.NewObject(hullName)
	hull.Parent = rig
	hull.X, hull.Y = x, y
	hull.Radius = TargetHullRadius

	t := &Target{
		Kind:            kind,
		Obj:             hull,
		Rig:             rig,
		X:               x,
		Y:               y,
		HullRadius:      TargetHullRadius,
		TriggerRadius:   TargetTriggerRadius,
		DetectionRadius: TargetDetectionRadius,
		handled:         make(map[DestroyerID]struct{}),
		BobPhase:        x * 0.013,
	}
	ts.Targets = append(ts.Targets, t)
	return t
}

// Reset drops all targets and contact state (mission teardown). The score
// ledger is untouched; it belongs to the process, not the mission.
func (ts *TargetSystem) Reset() {
	ts.Targets = ts.Targets[:0]
	ts.contacts.Reset()
}

// AliveCount returns the number of targets not yet removed.
func (ts *TargetSystem) AliveCount() int {
	alive := 0
	for _, t := range ts.Targets {
		if !t.Removed {
			alive++
		}
	}
	return alive
}

// RemoveDead compacts the target list after removals.
func (ts *TargetSystem) RemoveDead() {
	kept := ts.Targets[:0]
	for _, t := range ts.Targets {
		if !t.Removed {
			kept = append(kept, t)
		}
	}
	ts.Targets = kept
}

// Update runs one detection step. Channel order within a step is fixed:
// trigger enters, collision enters, then one proximity sweep per target.
// State mutated by an accepted signal is visible to every later signal in
// the same step.
func (ts *TargetSystem) Update(dt float64) {
	ts.contacts.BeginFrame()
	ts.scanOverlaps(ChannelTrigger)
	ts.scanOverlaps(ChannelCollision)
	ts.contacts.EndFrame()
	ts.sweep()

	for _, t := range ts.Targets {
		t.BobPhase += dt
	}
}

// maxContactRadius bounds the hull radius of any mobile object, so overlap
// scans can use a single query inflation.
const maxContactRadius = PlaneHullRadius

// scanOverlaps detects enter edges of the given contact volume for every
// live target and feeds each new contact through the admission path.
func (ts *TargetSystem) scanOverlaps(ch ContactChannel) {
	for _, t := range ts.Targets {
		if t.Removed {
			continue
		}
		volume := t.TriggerRadius
		if ch == ChannelCollision {
			volume = t.HullRadius
		}
		ts.scene.QueryRadius(t.X, t.Y, volume+maxContactRadius, func(o *SceneObject) {
			if o == t.Obj || o == t.Rig {
				return
			}
			dx := o.X - t.X
			dy := o.Y - t.Y
			reach := volume + o.Radius
			if dx*dx+dy*dy > reach*reach {
				return
			}
			if ts.contacts.Touch(contactKey{target: t.Obj.ID, other: o.ID, channel: ch}) {
				ts.HandleContact(t, o, ch)
			}
		})
	}
}

// sweep is the reliability backstop for missed contact events: once per
// step it scans everything inside the detection radius and feeds the first
// object resolving to a destroyer through the same admission path, so it
// can never double-credit.
func (ts *TargetSystem) sweep() {
	for _, t := range ts.Targets {
		if t.Removed {
			continue
		}
		var first *SceneObject
		ts.scene.QueryRadius(t.X, t.Y, t.DetectionRadius, func(o *SceneObject) {
			if first != nil || o == t.Obj || o == t.Rig {
				return
			}
			if _, ok := ResolveDestroyer(ts.scene, o); ok {
				first = o
			}
		})
		if first != nil {
			ts.HandleContact(t, first, ChannelSweep)
		}
	}
}

// HandleContact runs one candidate contact through the admission rule and
// reports whether a destruction credit was committed. A nil candidate is
// "no signal". Admission is serialized so that signals arriving in the
// same step are evaluated against a consistent snapshot of the target's
// state.
func (ts *TargetSystem) HandleContact(t *Target, candidate *SceneObject, ch ContactChannel) bool {
	if t == nil || candidate == nil {
		return false
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if t.Removed || t.Destroyed {
		return false
	}

	id, ok := ResolveDestroyer(ts.scene, candidate)
	if !ok {
		return false
	}

	policy := PolicyNormal
	if ts.run != nil {
		policy = ts.run.Policy()
	}

	switch policy {
	case PolicyTutorial:
		if _, seen := t.handled[id]; seen {
			return false
		}
		t.handled[id] = struct{}{}
	default:
		// Terminal state is set before any side effect so duplicate
		// signals from the other channels cannot re-enter.
		t.Destroyed = true
	}

	ts.credit(t, id, ch, policy)
	return true
}

// credit performs the destruction side effects for an admitted contact.
// Every collaborator is optional; a missing one degrades its effect but
// never rolls back the decision.
func (ts *TargetSystem) credit(t *Target, id DestroyerID, ch ContactChannel, policy LifecyclePolicy) {
	if ts.ledger != nil {
		ts.ledger.RecordDestruction()
	} else {
		fmt.Fprintf(os.Stderr, "no score ledger, destruction of %q by %d (%s) not recorded\n",
			t.Obj.Name, id, ch)
	}

	if fn := ts.hooks.Explosion; fn != nil {
		fn(t.X, t.Y)
	}
	if fn := ts.hooks.Sound; fn != nil {
		fn(t.X, t.Y)
	}
	if fn := ts.hooks.Shake; fn != nil {
		fn(t.X, t.Y)
	}

	if policy == PolicyNormal {
		ts.requestRemoval(t)
	}
}

// requestRemoval schedules the hull and its composite parent for removal.
// Safe to call more than once; repeats are no-ops.
func (ts *TargetSystem) requestRemoval(t *Target) {
	if t.Removed {
		return
	}
	t.Removed = true
	if fn := ts.hooks.Remove; fn != nil {
		if t.Obj != nil {
			fn(t.Obj.ID)
		}
		if t.Rig != nil {
			fn(t.Rig.ID)
		}
	}
}

// RenderData appends target sprites to buf ([x y size r g b a rot] per
// sprite) and returns it.
func (ts *TargetSystem) RenderData(buf []float32) []float32 {
	for _, t := range ts.Targets {
		if t.Removed {
			continue
		}
		bob := float32(math.Sin(t.BobPhase*1.7) * 1.5)
		x := float32(t.X)
		y := float32(t.Y) + bob

		var body, trim RGB
		switch t.Kind {
		case TargetRadarDome:
			body = Palette.DomeShell
			trim = Palette.DomeDish
		case TargetFuelDepot:
			body = Palette.DepotDrum
			trim = Palette.DepotBand
		default:
			body = Palette.BalloonSkin
			trim = Palette.BalloonNose
		}

		// Tether/base anchor under the hull.
		buf = append(buf,
			x, float32(t.Y)+float32(t.HullRadius)*0.9, 2.0,
			float32(Palette.RigMetal.R)/255, float32(Palette.RigMetal.G)/255, float32(Palette.RigMetal.B)/255, 1, 0,
		)
		// Hull body.
		buf = append(buf,
			x, y, float32(t.HullRadius)*2.0,
			float32(body.R)/255, float32(body.G)/255, float32(body.B)/255, 1, 0,
		)
		// Nose/trim detail.
		buf = append(buf,
			x, y-float32(t.HullRadius)*0.45, float32(t.HullRadius)*0.8,
			float32(trim.R)/255, float32(trim.G)/255, float32(trim.B)/255, 1, 0,
		)
	}
	return buf
}
