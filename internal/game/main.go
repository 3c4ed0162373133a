package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SKYSTRIKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Process-wide state: one score ledger and one run config for the whole
	// run, shared by every mission.
	ledger := RegisterScoreLedger(NewScoreLedger())
	run := RegisterRunConfig(NewRunConfig())

	session := NewGameSession(run, ledger)
	hud := NewHUD(ledger)
	defer hud.Close()

	// Mission state (nil until the first mission starts).
	var mission *Mission

	cam := Camera{
		X:    PlaneStartX,
		Y:    PlaneStartY,
		Zoom: DefaultZoom,
	}
	input := NewInput()

	// Reusable render buffers.
	var worldBuf, glowBuf, normBuf []float32

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateMenu:
			if input.JustPressed(window, glfw.KeyT) {
				PlaySound(SoundMenuSelect)
				if run.Policy() == PolicyNormal {
					run.SetPolicy(PolicyTutorial)
				} else {
					run.SetPolicy(PolicyNormal)
				}
			}
			if input.JustPressed(window, glfw.KeyC) {
				PlaySound(SoundMenuSelect)
				if run.Controls() == ControlKeyboard {
					run.SetControls(ControlKeyboardMouse)
				} else {
					run.SetControls(ControlKeyboard)
				}
			}
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				mission = session.StartMission(1, seed, &cam)
			}

		case StatePlaying:
			p := mission.Plane
			if p.Alive {
				SteerPlane(window, p, run, cam, dt, fbW, fbH)
				cannon, missile := FireInput(window)
				if cannon {
					mission.Weapons.FireCannon(p, mission.Particles)
				}
				if missile {
					mission.Weapons.FireMissile(p, mission.Particles)
				}
			}
			p.Update(dt)
			mission.Weapons.Update(dt, mission.Targets, mission.Particles)
			mission.Drones.Update(dt, mission.Targets)

			// Contact pipeline: index first so trigger, collision, and
			// sweep all see this frame's positions.
			mission.Scene.RebuildIndex()
			mission.Targets.Update(dt)
			p.CheckRamDamage(mission.Targets, mission.Particles, &cam)

			mission.Particles.Update(dt)
			session.Update(dt)
			session.CheckMissionEnd(mission)
			mission.Targets.RemoveDead()

		case StateMissionComplete:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				next := session.CurrentMission + 1
				if session.Policy() == PolicyTutorial {
					next = session.CurrentMission
				}
				mission = session.StartMission(next, seed, &cam)
			}
			mission.Particles.Update(dt)

		case StateMissionFailed:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundMenuSelect)
				mission = session.StartMission(session.CurrentMission, seed, &cam)
			}
			mission.Particles.Update(dt)
		}

		if mission != nil {
			cam.UpdateChase(mission.Plane, dt, fbW, fbH)
		}
		cam.UpdateShake(dt, seed^uint64(now*1000))

		// Render with shake applied.
		renderCam := cam
		sx, sy := cam.EffectivePos()
		renderCam.X = sx
		renderCam.Y = sy

		rend.BeginFrame(fbW, fbH)

		if mission != nil {
			rend.DrawSprites(mission.Terrain.RenderData(), renderCam, fbW, fbH, false)

			worldBuf = worldBuf[:0]
			worldBuf = mission.Targets.RenderData(worldBuf)
			worldBuf = mission.Drones.RenderData(worldBuf)
			worldBuf = mission.Weapons.RenderData(worldBuf)
			worldBuf = mission.Plane.RenderData(worldBuf)
			rend.DrawSprites(worldBuf, renderCam, fbW, fbH, false)

			// Particles: two passes (alpha + additive glow).
			glowBuf, normBuf = mission.Particles.RenderData(glowBuf[:0], normBuf[:0], renderCam.X, renderCam.Y)
			if len(normBuf) > 0 {
				rend.DrawSprites(normBuf, renderCam, fbW, fbH, false)
			}
			if len(glowBuf) > 0 {
				rend.DrawSprites(glowBuf, renderCam, fbW, fbH, true)
			}

			var lights []float32
			lights = mission.Weapons.GlowData(lights)
			lights = append(lights, mission.Plane.GlowData()...)
			if len(lights) > 0 {
				rend.DrawGlowSprites(lights, renderCam, fbW, fbH)
			}
		}

		// HUD uses stable screen space (no shake).
		hud.Render(rend, session, mission, fbW, fbH)
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
}
