package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulation. The zero value is not
// usable; start from Default and override from a yaml file with Load.
type Config struct {
	Playfield Playfield `yaml:"playfield"`
	Player    Player    `yaml:"player"`
	Physics   Physics   `yaml:"physics"`
	Audio     Audio     `yaml:"audio"`
	Spawn     Spawn     `yaml:"spawn"`
	// ScorePerTick is added to the score every simulation tick while playing.
	ScorePerTick int `yaml:"score_per_tick"`
}

type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// GroundY is the y coordinate of the ground line. The player's bottom
	// edge never goes below it.
	GroundY float64 `yaml:"ground_y"`
}

type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Physics struct {
	Gravity float64 `yaml:"gravity"`
	// MaxJumpVelocity is the vertical velocity applied at full jump power.
	// Negative, since y grows downward.
	MaxJumpVelocity float64 `yaml:"max_jump_velocity"`
}

type Audio struct {
	// Smoothing is the EMA factor applied to raw intensity samples. Lower
	// values respond slower.
	Smoothing float64 `yaml:"smoothing"`
	// Ceiling normalizes smoothed intensity; values at or above it map to 1.
	Ceiling   float64 `yaml:"ceiling"`
	Threshold float64 `yaml:"threshold"`
	// MinJumpPower is the jump power produced right at the trigger
	// threshold, so a barely-audible trigger still moves the player.
	MinJumpPower float64 `yaml:"min_jump_power"`
	// PollMS is the sampling cadence of the audio source in milliseconds.
	PollMS int `yaml:"poll_ms"`
}

// Range is a closed interval sampled uniformly at spawn time.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Spawn struct {
	Spike          SpikeSpawn          `yaml:"spike"`
	MovingSpike    MovingSpikeSpawn    `yaml:"moving_spike"`
	VariableGround VariableGroundSpawn `yaml:"variable_ground"`
	Bridge         BridgeSpawn         `yaml:"bridge"`
}

type SpikeSpawn struct {
	Width  Range `yaml:"width"`
	Height Range `yaml:"height"`
}

type MovingSpikeSpawn struct {
	Width  Range `yaml:"width"`
	Height Range `yaml:"height"`
	// VerticalSpeed is the px-per-tick oscillation speed.
	VerticalSpeed float64 `yaml:"vertical_speed"`
	// Band is the height of the oscillation band above the resting line.
	Band float64 `yaml:"band"`
}

type VariableGroundSpawn struct {
	Width     Range `yaml:"width"`
	Elevation Range `yaml:"elevation"`
}

type BridgeSpawn struct {
	Width  Range   `yaml:"width"`
	Height float64 `yaml:"height"`
	// Deck is how far above the ground line the bridge top sits.
	Deck      float64 `yaml:"deck"`
	Integrity float64 `yaml:"integrity"`
	// Collapse delay in ms is CollapseDelayBase - CollapseDelayScale * difficulty.
	CollapseDelayBase  float64 `yaml:"collapse_delay_base"`
	CollapseDelayScale float64 `yaml:"collapse_delay_scale"`
}

func Default() Config {
	return Config{
		Playfield: Playfield{Width: 800, Height: 450, GroundY: 400},
		Player:    Player{X: 100, Width: 40, Height: 60},
		Physics:   Physics{Gravity: 0.5, MaxJumpVelocity: -14},
		Audio: Audio{
			Smoothing:    0.3,
			Ceiling:      0.8,
			Threshold:    0.05,
			MinJumpPower: 0.3,
			PollMS:       100,
		},
		Spawn: Spawn{
			Spike: SpikeSpawn{
				Width:  Range{Min: 20, Max: 40},
				Height: Range{Min: 30, Max: 60},
			},
			MovingSpike: MovingSpikeSpawn{
				Width:         Range{Min: 20, Max: 40},
				Height:        Range{Min: 30, Max: 50},
				VerticalSpeed: 2,
				Band:          50,
			},
			VariableGround: VariableGroundSpawn{
				Width:     Range{Min: 60, Max: 120},
				Elevation: Range{Min: 20, Max: 60},
			},
			Bridge: BridgeSpawn{
				Width:              Range{Min: 80, Max: 140},
				Height:             16,
				Deck:               40,
				Integrity:          100,
				CollapseDelayBase:  500,
				CollapseDelayScale: 300,
			},
		},
		ScorePerTick: 1,
	}
}

// Load reads a yaml tuning file over the defaults, so partial files only
// override the keys they name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (r Range) validate(name string) error {
	if r.Min <= 0 || r.Max < r.Min {
		return fmt.Errorf("%s range must satisfy 0 < min <= max, got [%g, %g]", name, r.Min, r.Max)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.GroundY <= 0 || c.Playfield.GroundY > c.Playfield.Height {
		return fmt.Errorf("ground line %g outside playfield height %g", c.Playfield.GroundY, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player box must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Width > c.Playfield.Width {
		return fmt.Errorf("player x %g outside playfield", c.Player.X)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.MaxJumpVelocity >= 0 {
		return fmt.Errorf("max jump velocity must be negative (y grows downward), got %g", c.Physics.MaxJumpVelocity)
	}
	if c.Audio.Smoothing <= 0 || c.Audio.Smoothing > 1 {
		return fmt.Errorf("audio smoothing must be in (0,1], got %g", c.Audio.Smoothing)
	}
	if c.Audio.Ceiling <= 0 || c.Audio.Ceiling > 1 {
		return fmt.Errorf("audio ceiling must be in (0,1], got %g", c.Audio.Ceiling)
	}
	if c.Audio.Threshold < 0 || c.Audio.Threshold >= 1 {
		return fmt.Errorf("audio threshold must be in [0,1), got %g", c.Audio.Threshold)
	}
	if c.Audio.MinJumpPower <= 0 || c.Audio.MinJumpPower > 1 {
		return fmt.Errorf("audio min jump power must be in (0,1], got %g", c.Audio.MinJumpPower)
	}
	if c.Audio.PollMS <= 0 {
		return fmt.Errorf("audio poll interval must be positive, got %dms", c.Audio.PollMS)
	}
	for _, rv := range []struct {
		name string
		r    Range
	}{
		{"spike width", c.Spawn.Spike.Width},
		{"spike height", c.Spawn.Spike.Height},
		{"moving spike width", c.Spawn.MovingSpike.Width},
		{"moving spike height", c.Spawn.MovingSpike.Height},
		{"variable ground width", c.Spawn.VariableGround.Width},
		{"variable ground elevation", c.Spawn.VariableGround.Elevation},
		{"bridge width", c.Spawn.Bridge.Width},
	} {
		if err := rv.r.validate(rv.name); err != nil {
			return err
		}
	}
	if c.Spawn.MovingSpike.VerticalSpeed <= 0 || c.Spawn.MovingSpike.Band <= 0 {
		return fmt.Errorf("moving spike speed and band must be positive")
	}
	if c.Spawn.Bridge.Height <= 0 || c.Spawn.Bridge.Deck <= 0 {
		return fmt.Errorf("bridge height and deck must be positive")
	}
	if c.Spawn.Bridge.Integrity <= 0 {
		return fmt.Errorf("bridge integrity must be positive, got %g", c.Spawn.Bridge.Integrity)
	}
	if c.Spawn.Bridge.CollapseDelayBase <= c.Spawn.Bridge.CollapseDelayScale {
		return fmt.Errorf("bridge collapse delay must stay positive at full difficulty")
	}
	if c.ScorePerTick <= 0 {
		return fmt.Errorf("score per tick must be positive, got %d", c.ScorePerTick)
	}
	return nil
}
