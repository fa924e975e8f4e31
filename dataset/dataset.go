// Package dataset loads pricing scenarios: the observed fares used for
// training and the example trips quoted in the report.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/YuminosukeSato/farefit/linear"
	"github.com/YuminosukeSato/farefit/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed carthage.yaml
var carthageYAML []byte

// Scenario is one pricing dataset together with the trips to quote.
type Scenario struct {
	Name         string               `yaml:"name"`
	Currency     string               `yaml:"currency"`
	Observations []linear.Observation `yaml:"-"`
	Examples     []Example            `yaml:"examples"`
}

// Example is a trip priced with the fitted formula.
type Example struct {
	Description string  `yaml:"description"`
	Distance    float64 `yaml:"distance_km"`
	Time        float64 `yaml:"time_min"`
}

type observationRow struct {
	Distance float64 `yaml:"distance_km"`
	Time     float64 `yaml:"time_min"`
	Price    float64 `yaml:"price"`
}

type scenarioFile struct {
	Scenario `yaml:",inline"`
	Rows     []observationRow `yaml:"observations"`
}

// Default returns the embedded Carthage Transfer scenario.
func Default() (*Scenario, error) {
	return Parse(carthageYAML)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var file scenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// 空のファイルは観測なしとして Validate に任せる
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode scenario")
	}

	s := file.Scenario
	if s.Currency == "" {
		s.Currency = "EUR"
	}
	s.Observations = make([]linear.Observation, len(file.Rows))
	for i, row := range file.Rows {
		s.Observations[i] = linear.Observation{Distance: row.Distance, Time: row.Time, Price: row.Price}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the scenario has observations and that every value is
// finite and non-negative. Rank requirements are left to the regressor.
func (s *Scenario) Validate() error {
	if len(s.Observations) == 0 {
		return errors.NewValidationError("observations", "at least one observation is required", 0)
	}
	for i, o := range s.Observations {
		fields := []struct {
			name  string
			value float64
		}{
			{"distance_km", o.Distance},
			{"time_min", o.Time},
			{"price", o.Price},
		}
		for _, f := range fields {
			if !isFinite(f.value) || f.value < 0 {
				return errors.NewValidationError(fmt.Sprintf("observations[%d].%s", i, f.name),
					"must be a finite non-negative number", f.value)
			}
		}
	}
	for i, e := range s.Examples {
		if !isFinite(e.Distance) {
			return errors.NewValidationError(fmt.Sprintf("examples[%d].distance_km", i), "must be a finite number", e.Distance)
		}
		if !isFinite(e.Time) {
			return errors.NewValidationError(fmt.Sprintf("examples[%d].time_min", i), "must be a finite number", e.Time)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
