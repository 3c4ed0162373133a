package game

import (
	"fmt"
	"strings"
)

// HUD caches the score readout through ledger subscriptions and draws all
// screen-space text. Score updates arrive before destroyed-count updates,
// so the panel never shows a kill without its points.
type HUD struct {
	ledger    *ScoreLedger
	score     int
	destroyed int
	scoreTok  int
	countTok  int
}

func NewHUD(ledger *ScoreLedger) *HUD {
	h := &HUD{ledger: ledger}
	if ledger != nil {
		h.score = ledger.Score()
		h.destroyed = ledger.TargetsDestroyed()
		h.scoreTok = ledger.SubscribeScore(func(v int) { h.score = v })
		h.countTok = ledger.SubscribeCount(func(v int) { h.destroyed = v })
	}
	return h
}

func (h *HUD) Close() {
	if h.ledger == nil {
		return
	}
	h.ledger.UnsubscribeScore(h.scoreTok)
	h.ledger.UnsubscribeCount(h.countTok)
}

// Render draws the text overlay for the current session state.
func (h *HUD) Render(r *Renderer, sess *GameSession, m *Mission, fbW, fbH int) {
	switch sess.State {
	case StateMenu:
		h.renderMenu(r, sess, fbW, fbH)
	case StatePlaying:
		h.renderPlaying(r, sess, m, fbW, fbH)
	case StateMissionComplete:
		h.renderPlaying(r, sess, m, fbW, fbH)
		h.renderBanner(r, "MISSION COMPLETE", "PRESS ENTER FOR NEXT SORTIE", fbW, fbH)
	case StateMissionFailed:
		h.renderPlaying(r, sess, m, fbW, fbH)
		h.renderBanner(r, "SHOT DOWN", "PRESS ENTER TO RETRY", fbW, fbH)
	}
}

func (h *HUD) renderMenu(r *Renderer, sess *GameSession, fbW, fbH int) {
	centerString(r, "SKYSTRIKE", fbH/2-120, 2.4, Palette.HUDAccent, fbW)
	centerString(r, "PRESS ENTER TO FLY", fbH/2-40, 1.0, Palette.HUDText, fbW)

	mode := "CAMPAIGN"
	if sess.Policy() == PolicyTutorial {
		mode = "PRACTICE RANGE"
	}
	centerString(r, fmt.Sprintf("T: MODE %s", mode), fbH/2+10, 0.8, Palette.HUDText, fbW)

	controls := "KEYBOARD"
	if sess.run != nil && sess.run.Controls() == ControlKeyboardMouse {
		controls = "KEYBOARD + MOUSE"
	}
	centerString(r, fmt.Sprintf("C: CONTROLS %s", controls), fbH/2+40, 0.8, Palette.HUDText, fbW)

	if h.score > 0 || h.destroyed > 0 {
		centerString(r, fmt.Sprintf("SCORE %d   KILLS %d", h.score, h.destroyed),
			fbH/2+90, 0.8, Palette.HUDAccent, fbW)
	}
}

func (h *HUD) renderPlaying(r *Renderer, sess *GameSession, m *Mission, fbW, fbH int) {
	if m == nil {
		return
	}
	r.DrawString(fmt.Sprintf("SCORE %d", h.score), 12, 10, 1.0, Palette.HUDText)
	r.DrawString(fmt.Sprintf("KILLS %d", h.destroyed), 12, 34, 1.0, Palette.HUDText)

	centerString(r, m.Config.Name, 10, 1.0, Palette.HUDAccent, fbW)
	if m.Config.TimeLimit > 0 {
		left := sess.TimeLeft(m)
		clock := fmt.Sprintf("%d:%02d", int(left)/60, int(left)%60)
		col := Palette.HUDText
		if left < 15 {
			col = Palette.HUDWarn
		}
		centerString(r, clock, 34, 1.0, col, fbW)
	} else {
		centerString(r, fmt.Sprintf("TARGETS %d", m.Targets.AliveCount()), 34, 0.8, Palette.HUDText, fbW)
	}

	// Hull bar: filled vs spent blocks.
	hp := m.Plane.HP
	filled := int(hp.Current + 0.5)
	total := int(hp.Max + 0.5)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", total-filled)
	r.DrawString("HULL "+bar, 12, fbH-34, 1.0, HealthBarColor(hp.Fraction()))
}

func (h *HUD) renderBanner(r *Renderer, title, prompt string, fbW, fbH int) {
	centerString(r, title, fbH/2-60, 1.8, Palette.HUDAccent, fbW)
	centerString(r, prompt, fbH/2, 0.9, Palette.HUDText, fbW)
	centerString(r, fmt.Sprintf("SCORE %d   KILLS %d", h.score, h.destroyed),
		fbH/2+40, 0.9, Palette.HUDText, fbW)
}

func centerString(r *Renderer, text string, sy int, scale float32, col RGB, fbW int) {
	r.DrawString(text, (fbW-TextWidth(text, scale))/2, sy, scale, col)
}
