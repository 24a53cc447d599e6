package balloons

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// grabRampDuration is how long a freshly grabbed circle takes to feel the full
// drag force.
const grabRampDuration = 0.2

// forceRamp eases the pointer joint's max force from zero to its target so a
// grabbed circle is picked up softly instead of snapping to the pointer.
type forceRamp struct {
	tween *gween.Tween
	value float64
	done  bool
}

func newForceRamp(target float64) *forceRamp {
	return &forceRamp{
		tween: gween.New(0, float32(target), grabRampDuration, ease.OutCubic),
	}
}

// Update advances the ramp by dt seconds and returns the current force.
func (r *forceRamp) Update(dt float32) float64 {
	if r.done {
		return r.value
	}
	val, finished := r.tween.Update(dt)
	r.value = float64(val)
	r.done = finished
	return r.value
}

// Done reports whether the ramp reached its target.
func (r *forceRamp) Done() bool {
	return r.done
}
