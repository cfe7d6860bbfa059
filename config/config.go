// Package config loads the lutconv operator parameter contract (padding,
// stride, zero points, clamp range, per-channel requantization parameters)
// from a YAML sidecar, so a packed pool/index blob can travel with a
// human-editable description of how to drive it.
package config

import (
	"fmt"

	"github.com/nanocad-lab/weightpool/lutconv"
	"gopkg.in/yaml.v3"
)

// OperatorConfig is the YAML-serializable form of lutconv.Params. Mult,
// Shift and Bias are parallel per-output-channel arrays.
type OperatorConfig struct {
	StrideY int `yaml:"stride_y"`
	StrideX int `yaml:"stride_x"`
	PadY    int `yaml:"pad_y"`
	PadX    int `yaml:"pad_x"`

	Precision int `yaml:"precision"`

	ZeroPointIn  int32 `yaml:"zero_point_in"`
	ZeroPointOut int32 `yaml:"zero_point_out"`
	ActMin       int32 `yaml:"act_min"`
	ActMax       int32 `yaml:"act_max"`

	Mult  []int32 `yaml:"mult"`
	Shift []int32 `yaml:"shift"`
	Bias  []int32 `yaml:"bias,omitempty"`
}

// Parse decodes a YAML document into an OperatorConfig.
func Parse(data []byte) (*OperatorConfig, error) {
	var cfg OperatorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Parse: %w", err)
	}
	return &cfg, nil
}

// Params converts the decoded config into a lutconv.Params, validating that
// the per-channel arrays agree with the declared output-channel count.
func (c *OperatorConfig) Params(cout int) (lutconv.Params, error) {
	if len(c.Mult) != cout || len(c.Shift) != cout {
		return lutconv.Params{}, fmt.Errorf("config.Params: mult/shift length must equal cout=%d", cout)
	}
	if c.Bias != nil && len(c.Bias) != cout {
		return lutconv.Params{}, fmt.Errorf("config.Params: bias length must equal cout=%d", cout)
	}
	return lutconv.Params{
		Spatial: lutconv.Spatial{
			StrideY: c.StrideY,
			StrideX: c.StrideX,
			PadY:    c.PadY,
			PadX:    c.PadX,
		},
		Precision:    c.Precision,
		ZeroPointIn:  c.ZeroPointIn,
		ZeroPointOut: c.ZeroPointOut,
		ActMin:       c.ActMin,
		ActMax:       c.ActMax,
		Mult:         c.Mult,
		Shift:        c.Shift,
		Bias:         c.Bias,
	}, nil
}

// Marshal encodes an OperatorConfig back to YAML, for round-tripping a
// config a caller built programmatically.
func Marshal(cfg *OperatorConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config.Marshal: %w", err)
	}
	return out, nil
}
