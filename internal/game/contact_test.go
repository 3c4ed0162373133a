package game

import "testing"

func TestContactTrackerEnterEdge(t *testing.T) {
	ct := NewContactTracker()
	key := contactKey{target: 1, other: 2, channel: ChannelTrigger}

	ct.BeginFrame()
	if !ct.Touch(key) {
		t.Fatal("first overlap should read as enter")
	}
	if ct.Touch(key) {
		t.Error("second touch in the same frame should not re-enter")
	}
	ct.EndFrame()

	// Still overlapping next frame: no enter edge.
	ct.BeginFrame()
	if ct.Touch(key) {
		t.Error("ongoing overlap read as a fresh enter")
	}
	ct.EndFrame()
}

func TestContactTrackerSeparationRearms(t *testing.T) {
	ct := NewContactTracker()
	key := contactKey{target: 1, other: 2, channel: ChannelCollision}

	ct.BeginFrame()
	ct.Touch(key)
	ct.EndFrame()

	// One full frame apart.
	ct.BeginFrame()
	ct.EndFrame()

	ct.BeginFrame()
	if !ct.Touch(key) {
		t.Error("overlap after separation should read as a fresh enter")
	}
	ct.EndFrame()
}

func TestContactTrackerChannelsIndependent(t *testing.T) {
	ct := NewContactTracker()
	ct.BeginFrame()
	if !ct.Touch(contactKey{target: 1, other: 2, channel: ChannelTrigger}) {
		t.Error("trigger enter missed")
	}
	if !ct.Touch(contactKey{target: 1, other: 2, channel: ChannelCollision}) {
		t.Error("collision channel should track its own enter edge")
	}
	ct.EndFrame()
}

func TestContactTrackerReset(t *testing.T) {
	ct := NewContactTracker()
	key := contactKey{target: 3, other: 4, channel: ChannelTrigger}
	ct.BeginFrame()
	ct.Touch(key)
	ct.EndFrame()

	ct.Reset()

	ct.BeginFrame()
	if !ct.Touch(key) {
		t.Error("Reset should forget all contact state")
	}
}
