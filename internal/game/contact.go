package game

// ContactChannel names the three independent detection paths that can
// report a destroyer touching a target.
type ContactChannel int

const (
	ChannelTrigger ContactChannel = iota
	ChannelCollision
	ChannelSweep
)

func (c ContactChannel) String() string {
	switch c {
	case ChannelTrigger:
		return "trigger"
	case ChannelCollision:
		return "collision"
	case ChannelSweep:
		return "sweep"
	}
	return "unknown"
}

// contactKey identifies one (target, candidate, channel) contact pair.
type contactKey struct {
	target  EntityID
	other   EntityID
	channel ContactChannel
}

// ContactTracker turns per-frame overlap scans into enter edges: Touch
// returns true only the first frame a pair overlaps, and stays false until
// the pair separates for a full frame. Pairs not touched during a frame are
// dropped at EndFrame, which is the separation event.
type ContactTracker struct {
	active map[contactKey]uint64 // value = frame the pair was last seen
	frame  uint64
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{active: make(map[contactKey]uint64)}
}

// BeginFrame starts a new scan frame.
func (ct *ContactTracker) BeginFrame() {
	ct.frame++
}

// Touch records that the pair overlaps this frame and reports whether this
// is a new contact (the enter edge).
func (ct *ContactTracker) Touch(key contactKey) bool {
	_, ongoing := ct.active[key]
	ct.active[key] = ct.frame
	return !ongoing
}

// EndFrame forgets every pair that was not touched this frame, so the next
// overlap of that pair reads as a fresh enter.
func (ct *ContactTracker) EndFrame() {
	for key, seen := range ct.active {
		if seen != ct.frame {
			delete(ct.active, key)
		}
	}
}

// Reset drops all contact state (mission teardown).
func (ct *ContactTracker) Reset() {
	ct.active = make(map[contactKey]uint64)
	ct.frame = 0
}
