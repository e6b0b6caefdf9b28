package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "declarations flattened onto one line",
			input:    "uint16_t\ndemo_length_get(void);\r\nvoid demo_destroy(void);",
			expected: []string{"uint16_tdemo_length_get(void)", "void demo_destroy(void)", ""},
		},
		{
			name:     "trailing fragment is yielded empty",
			input:    "int a;",
			expected: []string{"int a", ""},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitStatements(tt.input))
		})
	}
}

func TestParsePrototype(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		expected  *FunctionSignature
	}{
		{
			name:      "void function with one parameter",
			candidate: "void acc_sensor_create(acc_sensor_id_t id)",
			expected: &FunctionSignature{
				ReturnType:   "void",
				Name:         "acc_sensor_create",
				Parameters:   []Parameter{{Type: "acc_sensor_id_t", Name: "id"}},
				RawParamText: "acc_sensor_id_t id",
			},
		},
		{
			name:      "multi-word pointer return type",
			candidate: "unsigned char *acc_version_get(void)",
			expected: &FunctionSignature{
				ReturnType:   "unsigned char *",
				Name:         "acc_version_get",
				RawParamText: "void",
			},
		},
		{
			name:      "typedef pointer return",
			candidate: "acc_config_t *acc_config_create(void)",
			expected: &FunctionSignature{
				ReturnType:   "acc_config_t *",
				Name:         "acc_config_create",
				RawParamText: "void",
			},
		},
		{
			name:      "two parameters",
			candidate: "bool acc_sensor_measure(acc_sensor_t *sensor, void *buffer)",
			expected: &FunctionSignature{
				ReturnType: "bool",
				Name:       "acc_sensor_measure",
				Parameters: []Parameter{
					{Type: "acc_sensor_t *", Name: "sensor"},
					{Type: "void *", Name: "buffer"},
				},
				RawParamText: "acc_sensor_t *sensor, void *buffer",
			},
		},
		{
			name:      "static declaration skipped",
			candidate: "static int helper(int x)",
		},
		{
			name:      "static with leading whitespace skipped",
			candidate: "  static int helper(int x)",
		},
		{
			name:      "typedef skipped",
			candidate: "typedef struct acc_processing_handle acc_processing_t",
		},
		{
			name:      "variable declaration is not a prototype",
			candidate: "uint32_t sensor_count",
		},
		{
			name:      "empty candidate",
			candidate: "",
		},
		{
			name:      "collapsed block residue",
			candidate: " ##CODE_SECTION## ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, ok, err := ParsePrototype(tt.candidate)
			require.NoError(t, err)

			if tt.expected == nil {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, *tt.expected, sig)
		})
	}
}

func TestParsePrototypeFatalParameterList(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		fragment  string
	}{
		{
			name:      "bare type with no name",
			candidate: "int foo(int)",
			fragment:  `"int"`,
		},
		{
			name:      "function pointer parameter",
			candidate: "void acc_hal_register(void (*log_func)(const char *format))",
			fragment:  "format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ParsePrototype(tt.candidate)
			assert.False(t, ok)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.fragment)
		})
	}
}

func TestParseParameters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Parameter
	}{
		{
			name:  "explicit void means no parameters",
			input: "void",
		},
		{
			name:  "void with surrounding whitespace",
			input: "  void ",
		},
		{
			name:  "empty list",
			input: "",
		},
		{
			name:  "plain and pointer parameters",
			input: "int a, char *b",
			expected: []Parameter{
				{Type: "int", Name: "a"},
				{Type: "char *", Name: "b"},
			},
		},
		{
			name:  "const qualified pointer",
			input: "const acc_config_t *config",
			expected: []Parameter{
				{Type: "const acc_config_t *", Name: "config"},
			},
		},
		{
			name:  "three parameters in order",
			input: "acc_sensor_t *sensor, uint32_t timeout_ms, bool blocking",
			expected: []Parameter{
				{Type: "acc_sensor_t *", Name: "sensor"},
				{Type: "uint32_t", Name: "timeout_ms"},
				{Type: "bool", Name: "blocking"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParseParameters(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestParseParametersError(t *testing.T) {
	_, err := ParseParameters("int")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"int"`)
}

func TestExtract(t *testing.T) {
	header := `// Copyright (c) Demo AB
#ifndef DEMO_SENSOR_H_
#define DEMO_SENSOR_H_

#include <stdint.h>
#include <stdbool.h>

/**
 * @brief Sensor handle
 */
struct demo_sensor;

typedef struct demo_sensor demo_sensor_t;

typedef struct
{
	uint16_t frame_length;
	float max_rate;
} demo_metadata_t;

static int demo_internal_helper(int x);

demo_sensor_t *demo_sensor_create(uint32_t id);

void demo_sensor_destroy(demo_sensor_t *sensor);

bool demo_sensor_measure(demo_sensor_t *sensor, void *buffer, uint32_t buffer_size);

#endif
`

	sigs, err := Extract(header)
	require.NoError(t, err)
	require.Len(t, sigs, 3)

	assert.Equal(t, "demo_sensor_create", sigs[0].Name)
	assert.Equal(t, "demo_sensor_t *", sigs[0].ReturnType)
	assert.Equal(t, "demo_sensor_destroy", sigs[1].Name)
	assert.Equal(t, "demo_sensor_measure", sigs[2].Name)
	assert.Equal(t, []Parameter{
		{Type: "demo_sensor_t *", Name: "sensor"},
		{Type: "void *", Name: "buffer"},
		{Type: "uint32_t", Name: "buffer_size"},
	}, sigs[2].Parameters)
}

func TestExtractPropagatesParameterError(t *testing.T) {
	_, err := Extract("void broken(int);\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"int"`)
}
