package scenegen

import (
	"encoding/json"
	"fmt"
	"os"
)

// GridCfg describes the object layout: Count objects filled row by row,
// Columns per row, Spacing apart, starting at Origin.
type GridCfg struct {
	Count    int        `json:"count"`
	Columns  int        `json:"columns"`
	Spacing  Real       `json:"spacing"`
	Origin   Vec3       `json:"origin"`
	Mesh     string     `json:"mesh"`
	Material string     `json:"material"`
	Rotation Quaternion `json:"rotation"`
	Scale    Vec3       `json:"scale"`
}

type GenConfig struct {
	Name   string  `json:"name"`
	Out    string  `json:"out"`
	Camera Camera  `json:"camera"`
	Lights []Light `json:"lights"`
	Grid   GridCfg `json:"grid"`
}

// DefaultConfig returns the scene_08 parameters.
func DefaultConfig() GenConfig {
	return GenConfig{
		Name: SceneName,
		Out:  SceneOut,
		Camera: Camera{
			Position: Vec3{0, 2, -12},
			Rotation: QuatIdent(),
			Fov:      CameraFov,
		},
		// placeholder light, zero rotation included
		Lights: []Light{{Intensity: 1}},
		Grid: GridCfg{
			Count:    GridCount,
			Columns:  GridColumns,
			Spacing:  GridSpacing,
			Mesh:     GridMesh,
			Material: GridMaterial,
			Rotation: Quaternion{0.46193978, 0.1913417, 0.1913417, 0.84462326},
			Scale:    Vec3{5, 5, 5},
		},
	}
}

// LoadConfig reads a GenConfig from path. Keys absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*GenConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	// decoding into a pre-filled slice would merge into the default light
	defLights := cfg.Lights
	cfg.Lights = nil
	var probe struct {
		Lights json.RawMessage `json:"lights"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if probe.Lights == nil {
		cfg.Lights = defLights
	}
	if cfg.Grid.Count < 0 {
		return nil, fmt.Errorf("grid count must be >= 0, got %d", cfg.Grid.Count)
	}
	if cfg.Grid.Columns < 0 {
		return nil, fmt.Errorf("grid columns must be >= 0, got %d", cfg.Grid.Columns)
	}
	if cfg.Out == "" {
		return nil, fmt.Errorf("config has no output path")
	}
	DebugLog("Loaded config from %s: name=%s, out=%s, lights=%d, grid=%d/%d, spacing=%f", path, cfg.Name, cfg.Out, len(cfg.Lights), cfg.Grid.Count, cfg.Grid.Columns, cfg.Grid.Spacing)
	return &cfg, nil
}
