package balloons

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows        = 15
	DefaultCols        = 10
	DefaultHostMargin  = 20.0
	DefaultResizeQuiet = 250 * time.Millisecond
)

// Options configures a Component. Zero values fall back to defaults in
// Validate.
type Options struct {
	// Name is the guest name; it wins over PageURL.
	Name string `yaml:"name"`
	// PageURL is the address whose "name" query parameter supplies the guest
	// name when Name is empty.
	PageURL string `yaml:"page_url"`
	// Placeholder is shown when neither Name nor PageURL supply a name.
	Placeholder string `yaml:"placeholder"`

	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	HostMargin float64 `yaml:"host_margin"`
	StackInset float64 `yaml:"stack_inset"`

	Physics PhysicsOptions `yaml:"physics"`
	Colors  ColorOptions   `yaml:"colors"`

	ResizeQuiet time.Duration `yaml:"resize_quiet"`
	Debug       bool          `yaml:"debug"`

	// ColorFn overrides random pastel fills; not loadable from YAML.
	ColorFn ColorFunc `yaml:"-"`
}

// PhysicsOptions are the tunables handed to the physics world.
type PhysicsOptions struct {
	Gravity       float64 `yaml:"gravity"`
	Damping       float64 `yaml:"damping"`
	WallThickness float64 `yaml:"wall_thickness"`
	Restitution   float64 `yaml:"restitution"`
	Friction      float64 `yaml:"friction"`
	Density       float64 `yaml:"density"`
	Iterations    int     `yaml:"iterations"`
	GrabForce     float64 `yaml:"grab_force"`
}

// ColorOptions holds "#rrggbb" scene colors.
type ColorOptions struct {
	Background string `yaml:"background"`
	Stroke     string `yaml:"stroke"`
	Wall       string `yaml:"wall"`
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Placeholder: DefaultPlaceholder,
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		HostMargin:  DefaultHostMargin,
		StackInset:  DefaultStackInset,
		Physics: PhysicsOptions{
			Gravity:       DefaultGravity,
			Damping:       DefaultDamping,
			WallThickness: DefaultWallThickness,
			Restitution:   DefaultRestitution,
			Friction:      DefaultFriction,
			Density:       DefaultDensity,
			Iterations:    DefaultIterations,
			GrabForce:     DefaultGrabForce,
		},
		Colors: ColorOptions{
			Background: ColorBackground.Hex(),
			Stroke:     ColorStroke.Hex(),
			Wall:       ColorWall.Hex(),
		},
		ResizeQuiet: DefaultResizeQuiet,
	}
}

// Validate replaces out-of-range values with defaults and checks the colors.
func (o *Options) Validate() error {
	def := DefaultOptions()
	if o.Placeholder == "" {
		o.Placeholder = def.Placeholder
	}
	if o.Rows <= 0 {
		o.Rows = def.Rows
	}
	if o.Cols <= 0 {
		o.Cols = def.Cols
	}
	if o.HostMargin < 0 {
		o.HostMargin = def.HostMargin
	}
	if o.StackInset <= 0 {
		o.StackInset = def.StackInset
	}
	if o.ResizeQuiet <= 0 {
		o.ResizeQuiet = def.ResizeQuiet
	}
	if o.Physics.Restitution < 0 {
		o.Physics.Restitution = def.Physics.Restitution
	}
	if o.Physics.Friction < 0 {
		o.Physics.Friction = def.Physics.Friction
	}
	if o.Colors.Background == "" {
		o.Colors.Background = def.Colors.Background
	}
	if o.Colors.Stroke == "" {
		o.Colors.Stroke = def.Colors.Stroke
	}
	if o.Colors.Wall == "" {
		o.Colors.Wall = def.Colors.Wall
	}
	for _, c := range []struct{ field, value string }{
		{"background", o.Colors.Background},
		{"stroke", o.Colors.Stroke},
		{"wall", o.Colors.Wall},
	} {
		if _, err := ParseHexColor(c.value); err != nil {
			return fmt.Errorf("balloons: invalid %s color %q: %w", c.field, c.value, err)
		}
	}
	return nil
}

// worldConfig converts the physics options; the viewport is filled in per
// build.
func (o *Options) worldConfig() WorldConfig {
	return WorldConfig{
		Gravity:       o.Physics.Gravity,
		Damping:       o.Physics.Damping,
		WallThickness: o.Physics.WallThickness,
		Restitution:   o.Physics.Restitution,
		Friction:      o.Physics.Friction,
		Density:       o.Physics.Density,
		Iterations:    o.Physics.Iterations,
		GrabForce:     o.Physics.GrabForce,
	}
}

// sceneColors parses the color options. Validate has already checked them, so
// any parse error falls back to the stock color.
func (o *Options) sceneColors() (bg, stroke, wall Color) {
	parse := func(s string, fallback Color) Color {
		c, err := ParseHexColor(s)
		if err != nil {
			return fallback
		}
		return c
	}
	return parse(o.Colors.Background, ColorBackground),
		parse(o.Colors.Stroke, ColorStroke),
		parse(o.Colors.Wall, ColorWall)
}

// LoadOptions reads YAML from path over DefaultOptions and validates the
// result.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("balloons: read options: %w", err)
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("balloons: parse options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// WriteOptions encodes opts as YAML to w.
func WriteOptions(w io.Writer, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("balloons: encode options: %w", err)
	}
	return enc.Close()
}
