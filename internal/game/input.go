package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorWorldPos converts cursor position to world coordinates.
func CursorWorldPos(window *glfw.Window, cam Camera, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cam.X, cam.Y
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := cy * scaleY
	wx := cam.X + (fx-float64(fbW)*0.5)/cam.Zoom
	wy := cam.Y + (fy-float64(fbH)*0.5)/cam.Zoom
	return wx, wy
}

// FlightInput returns this frame's turn and throttle axes from the keyboard.
// A/D or left/right turn, W/S or up/down throttle.
func FlightInput(window *glfw.Window) (turn, throttle float64) {
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		turn -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		turn += 1
	}
	if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
		throttle += 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
		throttle -= 1
	}
	return turn, throttle
}

// SteerPlane applies the active control scheme for this frame. The mouse
// scheme points the plane at the cursor; firing stays on the keyboard in
// both schemes.
func SteerPlane(window *glfw.Window, p *Plane, run *RunConfig, cam Camera, dt float64, fbW, fbH int) {
	turn, throttle := FlightInput(window)
	if run != nil && run.Controls() == ControlKeyboardMouse {
		wx, wy := CursorWorldPos(window, cam, fbW, fbH)
		p.SteerToward(wx, wy, throttle, dt)
		return
	}
	p.Steer(turn, throttle, dt)
}

// FireInput returns whether the cannon (space) and missile (F or right
// mouse) triggers are held this frame.
func FireInput(window *glfw.Window) (cannon, missile bool) {
	cannon = window.GetKey(glfw.KeySpace) == glfw.Press
	missile = window.GetKey(glfw.KeyF) == glfw.Press ||
		window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	return cannon, missile
}
