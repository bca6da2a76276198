// Package config loads the clinic settings file: the branch set is fixed at
// startup and lives here rather than in the database.
package config

import (
	"fmt"
	"os"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CLINIC_CONFIG is not set
const DefaultPath = "clinic.yaml"

// Band is the advisory per-day headcount target range
type Band struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Clinic models the clinic.yaml settings file
type Clinic struct {
	Branches []string `yaml:"branches"`
	// DayOff is the default clinic-wide day off: a weekday name, or "none"
	DayOff string `yaml:"day_off"`
	Target Band   `yaml:"target_band"`
}

// Default returns the settings used when no clinic.yaml exists
func Default() Clinic {
	return Clinic{
		Branches: []string{"Central Clinic", "North Branch", "East Branch"},
		DayOff:   "none",
		Target:   Band{Min: 3, Max: 4},
	}
}

// Load reads the clinic settings from path, falling back to CLINIC_CONFIG
// and then DefaultPath when path is empty. A missing file yields Default().
func Load(path string) (Clinic, error) {
	if path == "" {
		path = os.Getenv("CLINIC_CONFIG")
	}
	if path == "" {
		path = DefaultPath
	}

	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read clinic config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse clinic config: %w", err)
	}

	if len(c.Branches) == 0 {
		c.Branches = Default().Branches
	}
	if c.Target.Min == 0 && c.Target.Max == 0 {
		c.Target = Default().Target
	}
	if err := c.check(); err != nil {
		return Default(), err
	}
	return c, nil
}

func (c Clinic) check() error {
	if c.DayOff != "" && c.DayOff != "none" {
		if _, ok := models.ParseWeekday(c.DayOff); !ok {
			return fmt.Errorf("day_off %q is not a weekday name", c.DayOff)
		}
	}
	if c.Target.Min > c.Target.Max {
		return fmt.Errorf("target_band min %d exceeds max %d", c.Target.Min, c.Target.Max)
	}
	return nil
}

// ClosedWeekday returns the canonical weekday name for the configured day
// off, or the empty string when none is set.
func (c Clinic) ClosedWeekday() string {
	if c.DayOff == "" || c.DayOff == "none" {
		return ""
	}
	wd, ok := models.ParseWeekday(c.DayOff)
	if !ok {
		return ""
	}
	return wd.String()
}
