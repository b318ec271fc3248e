package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsDocument = `
docs:
  useDefaultResponses: false
  ignoredParameterTypes:
    - app.Session
    - app.Tenant
  globalResponses:
    GET:
      - code: 500
        message: Internal Server Error
    DELETE:
      - code: 409
logging:
  level: debug
`

type responseEntry struct {
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
}

type docsSection struct {
	UseDefaultResponses   bool                       `yaml:"useDefaultResponses"`
	IgnoredParameterTypes []string                   `yaml:"ignoredParameterTypes"`
	GlobalResponses       map[string][]responseEntry `yaml:"globalResponses"`
}

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	var result map[string]any

	err := NewParser().Parse([]byte(settingsDocument), &result, "")

	require.NoError(t, err)
	assert.Contains(t, result, "docs")
	assert.Contains(t, result, "logging")
}

func TestParser_Parse_Section(t *testing.T) {
	t.Parallel()

	var result docsSection

	err := NewParser().Parse([]byte(settingsDocument), &result, "docs")

	require.NoError(t, err)
	assert.False(t, result.UseDefaultResponses)
	assert.Equal(t, []string{"app.Session", "app.Tenant"}, result.IgnoredParameterTypes)
	require.Len(t, result.GlobalResponses["GET"], 1)
	assert.Equal(t, 500, result.GlobalResponses["GET"][0].Code)
	assert.Equal(t, "Internal Server Error", result.GlobalResponses["GET"][0].Message)
	assert.Equal(t, 409, result.GlobalResponses["DELETE"][0].Code)
}

func TestParser_Parse_NestedPath(t *testing.T) {
	t.Parallel()

	var result map[string][]responseEntry

	err := NewParser().Parse([]byte(settingsDocument), &result, "docs:globalResponses")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestParser_Parse_ScalarValues(t *testing.T) {
	t.Parallel()

	parser := NewParser()
	data := []byte(settingsDocument)

	var level string

	require.NoError(t, parser.Parse(data, &level, "logging:level"))
	assert.Equal(t, "debug", level)

	var useDefaults bool

	require.NoError(t, parser.Parse(data, &useDefaults, "docs:useDefaultResponses"))
	assert.False(t, useDefaults)

	var ignored []string

	require.NoError(t, parser.Parse(data, &ignored, "docs:ignoredParameterTypes"))
	assert.Len(t, ignored, 2)
}

func TestParser_Parse_NonExistentKey(t *testing.T) {
	t.Parallel()

	var result docsSection

	err := NewParser().Parse([]byte(settingsDocument), &result, "swagger")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "swagger")
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	var result string

	err := NewParser().Parse([]byte(settingsDocument), &result, "logging:level:nested")

	require.Error(t, err)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	var result struct{}

	for _, data := range [][]byte{nil, {}, []byte("  \n\t")} {
		err := NewParser().Parse(data, &result, "")

		require.ErrorIs(t, err, ErrEmptyData)
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte("invalid: yaml: content: [\n"), &result, "")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte(`
docs:
  useDefaultResponse: false
`)

	var lenient docsSection

	require.NoError(t, NewParser().Parse(data, &lenient, "docs"))
	assert.False(t, lenient.UseDefaultResponses)

	var strict docsSection

	err := NewParser(WithStrict()).Parse(data, &strict, "docs")
	require.Error(t, err)

	err = NewParser(WithStrict()).Parse(data, &map[string]docsSection{}, "")
	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "docs",
			expected: "$.docs",
		},
		{
			name:     "two level path",
			input:    "docs:globalResponses",
			expected: "$.docs.globalResponses",
		},
		{
			name:     "three level path",
			input:    "docs:globalResponses:GET",
			expected: "$.docs.globalResponses.GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, convertToYAMLPath(tt.input))
		})
	}
}
