// Package balloons renders an interactive "happy birthday" card on
// [Ebitengine]: a grid of pastel circles, some carrying the letters of
// HAPPY, BIRTHDAY and a guest name, falls and settles under gravity inside the
// window and can be dragged with the mouse or a finger.
//
// # Usage
//
// [Run] opens a window, mounts the card and blocks until the window closes:
//
//	opts := balloons.DefaultOptions()
//	opts.Name = "Al"
//	err := balloons.Run(opts, balloons.RunConfig{Title: "Happy Birthday", Width: 800, Height: 800})
//
// For full control, implement [ebiten.Game] yourself, hand the window size to
// a [SizedHost] and drive a [Component]:
//
//	type Game struct {
//		host *balloons.SizedHost
//		comp *balloons.Component
//	}
//
//	func (g *Game) Update() error        { g.comp.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.comp.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		if g.host.SetSize(float64(w), float64(h)) {
//			g.comp.Resize()
//		}
//		return w, h
//	}
//
// # Pipeline
//
// The display name becomes a 10x10 [Grid] ([GenerateGrid]), the grid becomes
// one [Descriptor] per circle ([BuildStack]), the descriptors become rigid
// bodies in a Chipmunk [World], and every frame the [Overlay] paints each
// circle's letter at the body's current position after the circles are drawn.
//
// A [Component] rebuilds the whole [Scene] from scratch once the window has
// stopped resizing for [Options.ResizeQuiet]; it never patches a live scene.
//
// [Ebitengine]: https://ebitengine.org
package balloons
