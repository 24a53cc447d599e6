package balloons

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 2 // pointer 0 = mouse, 1 = first touch
	noPointer   = -1
)

// grabber is the part of the physics world the pointer state machine drives.
type grabber interface {
	Grab(p Vec2) int
	DragTo(p Vec2)
	Release()
}

// pointerState tracks one pointer between frames.
type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	grabbed int // circle index held by this pointer, -1 if none
}

// pointerInput runs the press/drag/release machine for every pointer. Only one
// pointer holds a circle at a time; the world has a single drag joint.
type pointerInput struct {
	pointers [maxPointers]pointerState
	owner    int
	touchID  ebiten.TouchID
	touching bool
	touchBuf []ebiten.TouchID
}

func newPointerInput() pointerInput {
	in := pointerInput{owner: noPointer}
	for i := range in.pointers {
		in.pointers[i].grabbed = -1
	}
	return in
}

// processInput is called from Scene.Update to handle mouse and touch input.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointer()
}

// processMousePointer handles the left mouse button (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	wx, wy := screenToWorld(s.cam, float64(mx), float64(my))
	s.input.process(s.world, 0, wx, wy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processTouchPointer follows the first active touch (pointer 1).
func (s *Scene) processTouchPointer() {
	in := &s.input
	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])

	if in.touching {
		for _, id := range in.touchBuf {
			if id == in.touchID {
				tx, ty := ebiten.TouchPosition(id)
				wx, wy := screenToWorld(s.cam, float64(tx), float64(ty))
				in.process(s.world, 1, wx, wy, true)
				return
			}
		}
		ps := &in.pointers[1]
		in.touching = false
		in.process(s.world, 1, ps.lastX, ps.lastY, false)
		return
	}

	if len(in.touchBuf) == 0 {
		return
	}
	in.touchID = in.touchBuf[0]
	in.touching = true
	tx, ty := ebiten.TouchPosition(in.touchID)
	wx, wy := screenToWorld(s.cam, float64(tx), float64(ty))
	in.process(s.world, 1, wx, wy, true)
}

// process runs the pointer state machine for a single pointer in world
// coordinates.
func (in *pointerInput) process(g grabber, pointerID int, wx, wy float64, pressed bool) {
	if g == nil || pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &in.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = wx, wy
		if in.owner != noPointer {
			return
		}
		ps.grabbed = g.Grab(Vec2{X: wx, Y: wy})
		if ps.grabbed >= 0 {
			in.owner = pointerID
		}
	case pressed && ps.down:
		if in.owner == pointerID && (wx != ps.lastX || wy != ps.lastY) {
			g.DragTo(Vec2{X: wx, Y: wy})
		}
		ps.lastX, ps.lastY = wx, wy
	case !pressed && ps.down:
		if in.owner == pointerID {
			g.Release()
			in.owner = noPointer
		}
		ps.down = false
		ps.grabbed = -1
		ps.lastX, ps.lastY = wx, wy
	}
}

// reset drops every pointer without touching the world.
func (in *pointerInput) reset() {
	*in = newPointerInput()
}
