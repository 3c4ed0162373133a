package game

import "testing"

func TestRunConfigDefaults(t *testing.T) {
	c := NewRunConfig()
	if got := c.Policy(); got != PolicyNormal {
		t.Errorf("default policy = %v, want %v", got, PolicyNormal)
	}
	if got := c.Controls(); got != ControlKeyboard {
		t.Errorf("default controls = %v, want %v", got, ControlKeyboard)
	}
}

func TestRunConfigSetters(t *testing.T) {
	c := NewRunConfig()
	c.SetPolicy(PolicyTutorial)
	c.SetControls(ControlKeyboardMouse)
	if c.Policy() != PolicyTutorial {
		t.Error("SetPolicy did not stick")
	}
	if c.Controls() != ControlKeyboardMouse {
		t.Error("SetControls did not stick")
	}
}

func TestRunConfigRegistryFirstWriterWins(t *testing.T) {
	resetRunConfigRegistry()
	defer resetRunConfigRegistry()

	first := NewRunConfig()
	first.SetPolicy(PolicyTutorial)
	live := RegisterRunConfig(first)
	if live != first {
		t.Fatal("first registration should become live")
	}

	// A later construction with a different policy must not displace it.
	second := NewRunConfig()
	if got := RegisterRunConfig(second); got != first {
		t.Fatal("second registration displaced the live config")
	}
	if SharedRunConfig().Policy() != PolicyTutorial {
		t.Error("live config lost its policy to a duplicate registration")
	}
}

func TestLifecyclePolicyString(t *testing.T) {
	tests := []struct {
		p    LifecyclePolicy
		want string
	}{
		{PolicyNormal, "normal"},
		{PolicyTutorial, "tutorial"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.p, got, tc.want)
		}
	}
}
