package balloons

// injectedEvent is one queued pointer sample in screen coordinates. It goes
// through the camera like a real mouse sample.
type injectedEvent struct {
	x, y float64
	down bool
}

// InjectPress queues a pointer press at screen (x, y) for the next Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{x: x, y: y, down: true})
}

// InjectMove queues a held-button move to screen (x, y).
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{x: x, y: y, down: true})
}

// InjectRelease queues a pointer release at screen (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{x: x, y: y})
}

// InjectDrag queues a press at the start point, evenly spaced moves and a
// release at the end point, one event per frame. frames counts the press and
// the release, so anything below 2 is raised to 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		f := float64(i) / float64(moves+1)
		s.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput feeds the oldest queued event to the mouse pointer.
// When it returns true hardware input is not read this frame.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	s.injectQueue = append(s.injectQueue[:0], s.injectQueue[1:]...)

	wx, wy := screenToWorld(s.cam, evt.x, evt.y)
	s.input.process(s.world, 0, wx, wy, evt.down)
	return true
}
