package game

import "sync"

// LifecyclePolicy selects how targets behave once a destroyer is credited.
type LifecyclePolicy int

const (
	// PolicyNormal destroys a target exactly once, then removes it.
	PolicyNormal LifecyclePolicy = iota
	// PolicyTutorial keeps targets alive and credits each distinct
	// destroyer once per target.
	PolicyTutorial
)

func (p LifecyclePolicy) String() string {
	if p == PolicyTutorial {
		return "tutorial"
	}
	return "normal"
}

// ControlScheme selects how the plane is steered.
type ControlScheme int

const (
	ControlKeyboard ControlScheme = iota
	ControlKeyboardMouse
)

// RunConfig holds the per-session choices made in the menu before gameplay
// starts: the target lifecycle policy and the control scheme. Like the
// score ledger it is process-wide and survives scene rebuilds; it is
// written only by the menu flow and read-only once a mission starts.
type RunConfig struct {
	mu       sync.Mutex
	policy   LifecyclePolicy
	controls ControlScheme
}

func NewRunConfig() *RunConfig {
	return &RunConfig{}
}

func (c *RunConfig) Policy() LifecyclePolicy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy
}

// SetPolicy selects the lifecycle policy. Menu flow only; gameplay systems
// never call this.
func (c *RunConfig) SetPolicy(p LifecyclePolicy) {
	c.mu.Lock()
	c.policy = p
	c.mu.Unlock()
}

func (c *RunConfig) Controls() ControlScheme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls
}

func (c *RunConfig) SetControls(s ControlScheme) {
	c.mu.Lock()
	c.controls = s
	c.mu.Unlock()
}

// Process-wide registry, same first-writer-wins discipline as the score
// ledger.
var (
	runCfgMu   sync.Mutex
	liveRunCfg *RunConfig
)

// SharedRunConfig returns the process-wide run configuration, creating it
// on first use.
func SharedRunConfig() *RunConfig {
	runCfgMu.Lock()
	defer runCfgMu.Unlock()
	if liveRunCfg == nil {
		liveRunCfg = NewRunConfig()
	}
	return liveRunCfg
}

// RegisterRunConfig offers c as the process-wide configuration and returns
// the live instance. The first registration wins; later offers are
// discarded.
func RegisterRunConfig(c *RunConfig) *RunConfig {
	runCfgMu.Lock()
	defer runCfgMu.Unlock()
	if liveRunCfg == nil {
		liveRunCfg = c
	}
	return liveRunCfg
}

func resetRunConfigRegistry() {
	runCfgMu.Lock()
	defer runCfgMu.Unlock()
	liveRunCfg = nil
}
