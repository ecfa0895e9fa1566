package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the root of the yaml config. Every field has a usable
// default so the game runs without a settings file at all.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Input   InputSettings   `yaml:"input"`
	Physics PhysicsSettings `yaml:"physics"`
	Terrain TerrainSettings `yaml:"terrain"`
	Assets  AssetSettings   `yaml:"assets"`
}

type WindowSettings struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Vsync  bool `yaml:"vsync"`
}

type InputSettings struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

type PhysicsSettings struct {
	Gravity       float32 `yaml:"gravity"`
	JumpSpeed     float32 `yaml:"jump_speed"`
	WalkSpeed     float32 `yaml:"walk_speed"`
	RunMultiplier float32 `yaml:"run_multiplier"`
	FlySpeed      float32 `yaml:"fly_speed"`
	PlayerWidth   float32 `yaml:"player_width"`
	PlayerHeight  float32 `yaml:"player_height"`
	EyeHeight     float32 `yaml:"eye_height"`
	TickRate      int     `yaml:"tick_rate"`
}

type TerrainSettings struct {
	Seed      int64 `yaml:"seed"`
	Radius    int   `yaml:"radius"`
	Amplitude int   `yaml:"amplitude"`
}

type AssetSettings struct {
	FontPath     string `yaml:"font_path"`
	TextureAtlas string `yaml:"texture_atlas"`
	ShaderDir    string `yaml:"shader_dir"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1600,
			Height: 900,
			Vsync:  true,
		},
		Input: InputSettings{
			MouseSensitivity: 0.3,
		},
		Physics: PhysicsSettings{
			Gravity:       -32.0,
			JumpSpeed:     9.5,
			WalkSpeed:     4.5,
			RunMultiplier: 1.6,
			FlySpeed:      10.0,
			PlayerWidth:   0.6,
			PlayerHeight:  1.8,
			EyeHeight:     1.62,
			TickRate:      60,
		},
		Terrain: TerrainSettings{
			Seed:      12,
			Radius:    32,
			Amplitude: 12,
		},
		Assets: AssetSettings{
			// No font by default: the HUD draws crosshair-only until a
			// ttf is configured via font_path.
			ShaderDir: "shaders",
		},
	}
}

// Load reads settings from a yaml file. A missing file is not an error:
// the defaults are returned so a fresh checkout runs as-is.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := settings.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return settings, nil
}

func (s *Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Physics.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %f", s.Physics.Gravity)
	}
	if s.Physics.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", s.Physics.TickRate)
	}
	if s.Physics.PlayerWidth <= 0 || s.Physics.PlayerHeight <= 0 {
		return fmt.Errorf("player dimensions must be positive")
	}
	return nil
}

// TickInterval returns the fixed simulation step in seconds.
func (s *Settings) TickInterval() float32 {
	return 1.0 / float32(s.Physics.TickRate)
}
