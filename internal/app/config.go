package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"torus-life/internal/render"
	"torus-life/pkg/sims/life"
)

// Presenter names accepted by -ui.
const (
	UIWindow   = "window"
	UITerminal = "term"
)

// PatternRandom seeds the board at the configured density instead of stamping
// a named pattern.
const PatternRandom = "random"

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Zone       int           `json:"cell_zone"`
	Cell       int           `json:"cell_size"`
	Interval   time.Duration `json:"-"`
	DensityNum int           `json:"density_num"`
	DensityDen int           `json:"density_den"`
	Seed       int64         `json:"seed"`
	TPS        int           `json:"tps"`
	UI         string        `json:"ui"`
	Pattern    string        `json:"pattern"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:      lc.Width,
		Height:     lc.Height,
		Zone:       10,
		Cell:       8,
		Interval:   500 * time.Millisecond,
		DensityNum: lc.Density.Num,
		DensityDen: lc.Density.Den,
		TPS:        60,
		UI:         DefaultUI,
		Pattern:    PatternRandom,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Zone, "zone", c.Zone, "pixels reserved per cell")
	fs.IntVar(&c.Cell, "cell", c.Cell, "side of the drawn square in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.DensityNum, "density-num", c.DensityNum, "live density numerator")
	fs.IntVar(&c.DensityDen, "density-den", c.DensityDen, "live density denominator")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 derives one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.StringVar(&c.UI, "ui", c.UI, "presenter: window or term")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial board: random, block, blinker or glider")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON config file")
}

// Load parses args into a fresh Config. When -config names a file, its values
// replace the defaults and flags given on the command line are re-applied on
// top.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigFile == "" {
		return c, nil
	}
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return nil, &InitError{Op: "config", Err: err}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

type fileConfig struct {
	*Config
	Interval string `json:"interval"`
}

// LoadFile overlays the JSON document at path onto c. Keys missing from the
// document keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %q", path)
	}

	fc := fileConfig{Config: c}
	if err := json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "failed to parse config file %q", path)
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return errors.Wrapf(err, "invalid interval in config file %q", path)
		}
		c.Interval = d
	}
	return nil
}

// Validate rejects settings the simulation or presenters cannot honour.
func (c *Config) Validate() error {
	var err error
	switch {
	case c.Width <= 0 || c.Height <= 0:
		err = errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Cell <= 0 || c.Cell > c.Zone:
		err = errors.Errorf("cell size %d must be in [1, %d]", c.Cell, c.Zone)
	case !c.Density().Valid():
		err = errors.Errorf("density %d/%d is not a fraction in [0, 1]", c.DensityNum, c.DensityDen)
	case c.Interval <= 0:
		err = errors.Errorf("interval must be positive, got %v", c.Interval)
	case c.UI != UIWindow && c.UI != UITerminal:
		err = errors.Errorf("unknown ui %q", c.UI)
	case c.Pattern != PatternRandom && life.Patterns[c.Pattern] == nil:
		err = errors.Errorf("unknown pattern %q", c.Pattern)
	}
	if err != nil {
		return &InitError{Op: "config", Err: err}
	}
	return nil
}

// Density returns the configured seeding density.
func (c *Config) Density() life.Density {
	return life.Density{Num: c.DensityNum, Den: c.DensityDen}
}

// LifeConfig returns the simulation settings.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.Width, Height: c.Height, Density: c.Density()}
}

// Layout returns the window cell layout.
func (c *Config) Layout() render.Layout {
	return render.Layout{Zone: c.Zone, Cell: c.Cell}
}

// Populate fills l with the configured initial board. Random boards draw from
// seed; named patterns are stamped in the centre of an empty board.
func (c *Config) Populate(l *life.Life, seed int64) {
	if c.Pattern == PatternRandom {
		l.Reset(seed)
		return
	}
	p := life.Patterns[c.Pattern]
	l.Clear()
	size := l.Size()
	l.Place((size.W-len(p[0]))/2, (size.H-len(p))/2, p)
}
