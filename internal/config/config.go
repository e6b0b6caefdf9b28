// Package config holds the declarative inputs of the stub generator: which
// headers feed which output file, the default-return-value table, and the
// auxiliary C block injected into every generated file. The built-in
// defaults cover the Acconeer A121 SDK; a YAML or TOML file can replace or
// extend them without touching the pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Target maps one generated stub file to the headers it covers. Header
// order is significant: it fixes both the #include order and the order
// stubs appear in the output.
type Target struct {
	Output  string   `yaml:"output" toml:"output" validate:"required"`
	Headers []string `yaml:"headers" toml:"headers" validate:"required,min=1,dive,required"`
}

// Config is the full generator configuration. Targets are an ordered list,
// not a map, so output is deterministic across runs.
type Config struct {
	Targets      []Target          `yaml:"targets" toml:"targets" validate:"required,min=1,dive"`
	ReturnValues map[string]string `yaml:"return_values" toml:"return_values"`
	ExtraCode    string            `yaml:"extra_code" toml:"extra_code"`
}

// extraCode is declared and defined in every generated file. The body
// exercises a handful of libm/string.h calls so stub libraries pull in the
// same external dependencies a real implementation would, which keeps
// binary analysis and link testing realistic.
const extraCode = `
#include <math.h>
#include <complex.h>
#include <string.h>
#include <stdint.h>
float fake_external_dependencies(char* foo, complex float iq);
float fake_external_dependencies(char* foo, complex float iq)
{
    char buff[42];
    memcpy(buff, foo, 1);
    memset(foo, 0, 1);
    memmove(buff, foo, 1);
    uint32_t magnitude = (uint32_t) cabsf(iq);
    return roundf(atanf(sinf(cosf(log10f(powf(crealf(iq), 3.14))))));
}
`

// Default returns the built-in configuration for the Acconeer A121 SDK:
// the service library plus the distance and presence detectors.
func Default() *Config {
	return &Config{
		Targets: []Target{
			{
				Output: "acconeer_a121_stubs.c",
				Headers: []string{
					"acc_hal_definitions_a121.h",
					"acc_definitions_common.h",
					"acc_processing.h",
					"acc_sensor.h",
					"acc_config.h",
					"acc_config_subsweep.h",
					"acc_definitions_a121.h",
					"acc_version.h",
					"acc_rss_a121.h",
				},
			},
			{
				Output: "acc_detector_distance_a121_stubs.c",
				Headers: []string{
					"acc_detector_distance_definitions.h",
					"acc_detector_distance.h",
				},
			},
			{
				Output:  "acc_detector_presence_a121_stubs.c",
				Headers: []string{"acc_detector_presence.h"},
			},
		},
		ReturnValues: map[string]string{
			"bool":            "true",
			"uint8_t":         "0",
			"uint16_t":        "0",
			"uint32_t":        "0",
			"float":           "0.1",
			"int32_t":         "-1",
			"acc_sensor_id_t": "1",
			"acc_config_profile_t":    "ACC_CONFIG_PROFILE_3",
			"acc_config_idle_state_t": "ACC_CONFIG_IDLE_STATE_SLEEP",
			"acc_config_prf_t":        "ACC_CONFIG_PRF_13_0_MHZ",
			"acc_rss_test_state_t":    "ACC_RSS_TEST_STATE_COMPLETE",
			"acc_detector_distance_threshold_method_t": "ACC_DETECTOR_DISTANCE_THRESHOLD_METHOD_FIXED_STRENGTH",
			"acc_detector_distance_peak_sorting_t":     "ACC_DETECTOR_DISTANCE_PEAK_SORTING_STRONGEST",
			"acc_detector_distance_reflector_shape_t":  "ACC_DETECTOR_DISTANCE_REFLECTOR_SHAPE_GENERIC",
		},
		ExtraCode: extraCode,
	}
}

// Load returns the built-in defaults overlaid with the given config file.
// An empty path means defaults only. The format is picked by extension:
// .yml/.yaml or .toml. File-provided targets replace the default target
// list; file-provided return values merge into the default table.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yml, .yaml or .toml)", ext)
	}

	return cfg, nil
}

// Validate checks structural constraints: at least one target, and every
// target named with at least one header.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
