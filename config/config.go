package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds general game configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	TPS    int `toml:"tps"` // simulation ticks per second
}

// CharacterConfig describes the shared character sprite geometry. Every
// playable character and enemy uses the same 48px frames drawn at 3x.
type CharacterConfig struct {
	ScaleFactor float64 `toml:"scale_factor"`
	FrameWidth  float64 `toml:"frame_width"`
	FrameHeight float64 `toml:"frame_height"`

	// Scaled sprite size, derived from the values above
	Width  float64 `toml:"-"`
	Height float64 `toml:"-"`

	// Collision body inside the scaled sprite
	CollisionWidth  float64 `toml:"collision_width"`
	CollisionHeight float64 `toml:"collision_height"`
}

// PlayerConfig contains player movement configuration values
type PlayerConfig struct {
	Acceleration float64 `toml:"acceleration"`
	MaxSpeed     float64 `toml:"max_speed"`
	Friction     float64 `toml:"friction"`
	AirFriction  float64 `toml:"air_friction"`
	Gravity      float64 `toml:"gravity"`
	JumpSpeed    float64 `toml:"jump_speed"`
}

// EnemyConfig contains patrol and field-of-vision values
type EnemyConfig struct {
	WalkSpeed   float64 `toml:"walk_speed"`
	WalkRange   float64 `toml:"walk_range"`   // distance in WalkSpeed steps before turning
	IdleTimeout int     `toml:"idle_timeout"` // ticks spent idle at each end
	MaxSpeed    float64 `toml:"max_speed"`
	Friction    float64 `toml:"friction"`
	Gravity     float64 `toml:"gravity"`

	// Field of vision reach beyond the body
	FOVHorizontal float64 `toml:"fov_horizontal"`
	FOVVertical   float64 `toml:"fov_vertical"`
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	MaxFallSpeed       float64 `toml:"max_fall_speed"`
	VerticalSpeedClamp float64 `toml:"vertical_speed_clamp"`
	CharacterPushback  float64 `toml:"character_pushback"`
}

// IndexConfig sizes the per-level static geometry index
type IndexConfig struct {
	// Terminal node size. Derived from Character.Width * LimitFactor unless
	// set explicitly.
	Limit       float64 `toml:"limit"`
	LimitFactor float64 `toml:"limit_factor"`
	MaxDepth    int     `toml:"max_depth"`
}

// LoggingConfig selects the zap encoder and level
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay bool   `toml:"overlay"` // draw index boundaries and bodies
	Level   string `toml:"level"`   // start level name, empty for the first
}

// Global configuration instances
var C *Config
var Character CharacterConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Index IndexConfig
var Logging LoggingConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Character = CharacterConfig{
		ScaleFactor:     3,
		FrameWidth:      48,
		FrameHeight:     48,
		CollisionWidth:  48,
		CollisionHeight: 96,
	}
	Character.derive()

	Player = PlayerConfig{
		Acceleration: 0.75,
		MaxSpeed:     6.0,
		Friction:     0.5,
		AirFriction:  0.1,
		Gravity:      0.75,
		JumpSpeed:    15.0,
	}

	Enemy = EnemyConfig{
		WalkSpeed:     2.0,
		WalkRange:     300,
		IdleTimeout:   5 * C.TPS,
		MaxSpeed:      3.0,
		Friction:      0.2,
		Gravity:       0.75,
		FOVHorizontal: 200,
		FOVVertical:   150,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed:       10.0,
		VerticalSpeedClamp: 16.0,
		CharacterPushback:  1.0,
	}

	Index = IndexConfig{
		LimitFactor: 2.5,
		MaxDepth:    16,
	}
	Index.Limit = Character.Width * Index.LimitFactor

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{}
}

func (c *CharacterConfig) derive() {
	c.Width = c.FrameWidth * c.ScaleFactor
	c.Height = c.FrameHeight * c.ScaleFactor
}

// fileConfig maps TOML tables onto the globals. It is filled with the
// current values before decoding so keys missing from the file keep them.
type fileConfig struct {
	Window    Config          `toml:"window"`
	Character CharacterConfig `toml:"character"`
	Player    PlayerConfig    `toml:"player"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Physics   PhysicsConfig   `toml:"physics"`
	Index     IndexConfig     `toml:"index"`
	Logging   LoggingConfig   `toml:"logging"`
	Debug     DebugConfig     `toml:"debug"`
}

// Load overlays the TOML file at path onto the current configuration. On
// error the globals are left unchanged.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := fileConfig{
		Window:    *C,
		Character: Character,
		Player:    Player,
		Enemy:     Enemy,
		Physics:   Physics,
		Index:     Index,
		Logging:   Logging,
		Debug:     Debug,
	}
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	f.Character.derive()
	if !md.IsDefined("index", "limit") {
		f.Index.Limit = f.Character.Width * f.Index.LimitFactor
	}

	C = &f.Window
	Character = f.Character
	Player = f.Player
	Enemy = f.Enemy
	Physics = f.Physics
	Index = f.Index
	Logging = f.Logging
	Debug = f.Debug
	return nil
}
