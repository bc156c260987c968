package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog file layout:
//
//	materials:
//	  - name: CUSTOM FOAM
//	    vapor_resistance: 7000
//	    min_temp: -40
//	    max_temp: 95
//	    conductivity:
//	      - { temperature: 0, lambda: 0.033 }
//	      - { temperature: 20, lambda: 0.035 }
type catalogFile struct {
	Materials []struct {
		Name            string  `yaml:"name"`
		VaporResistance float64 `yaml:"vapor_resistance"`
		MinTemp         float64 `yaml:"min_temp"`
		MaxTemp         float64 `yaml:"max_temp"`
		Conductivity    []struct {
			Temperature float64 `yaml:"temperature"`
			Lambda      float64 `yaml:"lambda"`
		} `yaml:"conductivity"`
	} `yaml:"materials"`
}

// MergeFile reads a YAML catalog and merges its materials into c,
// overriding built-in entries of the same name.
func (c Catalog) MergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read material catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse material catalog %s: %w", path, err)
	}

	for i, fm := range file.Materials {
		if fm.Name == "" {
			return fmt.Errorf("material catalog %s: entry %d has no name", path, i)
		}
		if len(fm.Conductivity) == 0 {
			return fmt.Errorf("material %q: conductivity table is empty", fm.Name)
		}

		m := Material{
			Name:            fm.Name,
			VaporResistance: fm.VaporResistance,
			MinTemp:         fm.MinTemp,
			MaxTemp:         fm.MaxTemp,
			Points:          make([]Breakpoint, 0, len(fm.Conductivity)),
		}
		for _, p := range fm.Conductivity {
			if p.Lambda <= 0 {
				return fmt.Errorf("material %q: conductivity %.4f at %.1f °C is not positive",
					fm.Name, p.Lambda, p.Temperature)
			}
			m.Points = append(m.Points, Breakpoint{Temperature: p.Temperature, Lambda: p.Lambda})
		}
		c[normalize(m.Name)] = m
	}

	return nil
}
