package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{
	"creator": "test",
	"modules": {
		"top": {
			"ports": {
				"clk": {"direction": "input", "bits": [2]},
				"q": {"direction": "output", "bits": [3, 4]}
			}
		}
	}
}`

func TestRun_Directions(t *testing.T) {
	got, err := Run([]byte(doc), "$.modules.top.ports.*.direction")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"input", "output"}, got)
}

func TestRun_Creator(t *testing.T) {
	got, err := Run([]byte(doc), "$.creator")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "test", got[0])
}

func TestRun_NoMatch(t *testing.T) {
	got, err := Run([]byte(doc), "$.modules.missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun_BadSelector(t *testing.T) {
	_, err := Run([]byte(doc), "$.modules[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jsonpath")
}

func TestRun_BadDocument(t *testing.T) {
	_, err := Run([]byte(`{"oops":`), "$.creator")
	require.Error(t, err)
}
