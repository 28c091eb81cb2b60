package scenegen

import (
	"fmt"
	"io"
)

// Run builds the scene described by cfgPath (reference scene when empty),
// saves it and prints a one-line confirmation to stdout.
func Run(cfgPath string, stdout io.Writer) error {
	cfg := DefaultConfig()
	if cfgPath != "" {
		c, err := LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		cfg = *c
	}

	scene := Build(cfg)
	if err := SaveJSON(scene, cfg.Out); err != nil {
		return err
	}

	if Debug {
		sceneStats(scene)
	}

	_, err := fmt.Fprintf(stdout, "Scene saved to %s\n", cfg.Out)
	return err
}

func sceneStats(s Scene) {
	meshes := make(map[string]int)
	for _, o := range s.Objects {
		meshes[o.Mesh+"/"+o.Material]++
	}
	for k, v := range meshes {
		DebugLog("Mesh/material %s: %d instances", k, v)
	}
}
