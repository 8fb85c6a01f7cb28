package cottage

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the viewer. Values missing from a file keep
// their defaults.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Log      LogConfig      `yaml:"log"`
	Archery  ArcheryConfig  `yaml:"archery"`
	DayNight DayNightConfig `yaml:"day_night"`
	Skybox   SkyboxConfig   `yaml:"skybox"`

	// ZonesFile replaces the built-in cottage zones when set.
	ZonesFile string `yaml:"zones_file"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position            [3]float32 `yaml:"position,flow"`
	Target              [3]float32 `yaml:"target,flow"`
	Speed               float32    `yaml:"speed"`
	Sensitivity         float32    `yaml:"sensitivity"`
	Yaw                 float32    `yaml:"yaw"`
	Pitch               float32    `yaml:"pitch"`
	NormalizeHorizontal bool       `yaml:"normalize_horizontal"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type ArcheryConfig struct {
	Gravity            float32 `yaml:"gravity"`
	Mass               float32 `yaml:"mass"`
	HorizontalVelocity float32 `yaml:"horizontal_velocity"`
	RestVelocity       float32 `yaml:"rest_velocity"`
	FloorHeight        float32 `yaml:"floor_height"`
	TargetPositions    int     `yaml:"target_positions"`
}

type DayNightConfig struct {
	SunStep float32 `yaml:"sun_step"`
}

type SkyboxConfig struct {
	Day   []string `yaml:"day"`
	Night []string `yaml:"night"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
			Title:  "Cottage",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0.3, 0},
			Target:      [3]float32{0, 0, -15},
			Speed:       1.0,
			Sensitivity: 0.1,
			Yaw:         90,
			Pitch:       0,
		},
		Log: LogConfig{
			Prefix: "cottage",
		},
		Archery: ArcheryConfig{
			Gravity:            0.098,
			Mass:               1.0,
			HorizontalVelocity: 0.3,
			RestVelocity:       0.1,
			FloorHeight:        0.01,
			TargetPositions:    6,
		},
		DayNight: DayNightConfig{
			SunStep: 0.002,
		},
	}
}

func (c Config) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Position)
}

func (c Config) CameraTarget() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Target)
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera speed %v is negative", c.Camera.Speed))
	}
	if c.CameraPosition() == c.CameraTarget() {
		errs = append(errs, errors.New("camera position and target coincide"))
	}
	if c.Archery.Mass <= 0 {
		errs = append(errs, fmt.Errorf("archery mass %v must be positive", c.Archery.Mass))
	}
	if c.Archery.TargetPositions <= 0 {
		errs = append(errs, fmt.Errorf("archery target positions %d must be positive", c.Archery.TargetPositions))
	}
	if c.DayNight.SunStep <= 0 {
		errs = append(errs, fmt.Errorf("day/night sun step %v must be positive", c.DayNight.SunStep))
	}
	for name, faces := range map[string][]string{"day": c.Skybox.Day, "night": c.Skybox.Night} {
		if len(faces) != 0 && len(faces) != 6 {
			errs = append(errs, fmt.Errorf("skybox %s needs 6 faces, got %d", name, len(faces)))
		}
	}
	return errors.Join(errs...)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadZones returns the zone table named by ZonesFile, or the built-in one.
func (c Config) LoadZones() (*ZoneTable, error) {
	if c.ZonesFile == "" {
		return DefaultZoneTable(), nil
	}
	return LoadZoneTable(c.ZonesFile)
}
