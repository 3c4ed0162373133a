package game

import "testing"

func TestStartMissionBuildsFreshScene(t *testing.T) {
	run := NewRunConfig()
	ledger := NewScoreLedger()
	sess := NewGameSession(run, ledger)

	m1 := sess.StartMission(1, 42, nil)
	if sess.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying", sess.State)
	}
	if got, want := len(m1.Targets.Targets), m1.Config.TargetCount(); got != want {
		t.Errorf("spawned %d targets, want %d", got, want)
	}
	if !m1.Scene.TagDefined(DestroyerTag) {
		t.Error("mission scene should define the destroyer tag")
	}

	m2 := sess.StartMission(2, 42, nil)
	if m2.Scene == m1.Scene {
		t.Error("restart should build a fresh scene")
	}
}

func TestLedgerSurvivesMissionRebuild(t *testing.T) {
	run := NewRunConfig()
	ledger := NewScoreLedger()
	sess := NewGameSession(run, ledger)

	m := sess.StartMission(1, 7, nil)
	plane := m.Plane.Obj
	m.Targets.HandleContact(m.Targets.Targets[0], plane, ChannelCollision)

	before := ledger.Score()
	if before == 0 {
		t.Fatal("expected a credit before rebuild")
	}

	sess.StartMission(2, 7, nil)
	if got := ledger.Score(); got != before {
		t.Errorf("score after rebuild = %d, want %d", got, before)
	}
}

func TestTutorialMissionUsesPracticeConfig(t *testing.T) {
	run := NewRunConfig()
	run.SetPolicy(PolicyTutorial)
	sess := NewGameSession(run, NewScoreLedger())

	m := sess.StartMission(1, 9, nil)
	if m.Config.TimeLimit <= 0 {
		t.Error("practice range should be timed")
	}
	if m.Config.Drones == 0 || len(m.Drones.Drones) != m.Config.Drones {
		t.Errorf("drones spawned = %d, want %d", len(m.Drones.Drones), m.Config.Drones)
	}
}

func TestCheckMissionEnd(t *testing.T) {
	run := NewRunConfig()
	sess := NewGameSession(run, NewScoreLedger())
	m := sess.StartMission(1, 3, nil)

	// Nothing ends while the plane flies and targets remain.
	sess.CheckMissionEnd(m)
	if sess.State != StatePlaying {
		t.Fatalf("state = %v, want StatePlaying", sess.State)
	}

	// Destroy everything: mission complete.
	for _, tgt := range m.Targets.Targets {
		m.Targets.HandleContact(tgt, m.Plane.Obj, ChannelCollision)
	}
	sess.CheckMissionEnd(m)
	if sess.State != StateMissionComplete {
		t.Errorf("state = %v, want StateMissionComplete", sess.State)
	}
}

func TestCheckMissionEndPlaneDown(t *testing.T) {
	run := NewRunConfig()
	sess := NewGameSession(run, NewScoreLedger())
	m := sess.StartMission(1, 3, nil)

	m.Plane.Alive = false
	sess.CheckMissionEnd(m)
	if sess.State != StateMissionFailed {
		t.Errorf("state = %v, want StateMissionFailed", sess.State)
	}
}

func TestTutorialEndsOnClock(t *testing.T) {
	run := NewRunConfig()
	run.SetPolicy(PolicyTutorial)
	sess := NewGameSession(run, NewScoreLedger())
	m := sess.StartMission(1, 3, nil)

	sess.MissionTimer = m.Config.TimeLimit + 1
	sess.CheckMissionEnd(m)
	if sess.State != StateMissionComplete {
		t.Errorf("state = %v, want StateMissionComplete when time is up", sess.State)
	}
}
