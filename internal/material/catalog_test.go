package material

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaInterpolatesBetweenBreakpoints(t *testing.T) {
	cat := Default()

	// Midpoint of the 0 °C (0.034) and 20 °C (0.036) breakpoints.
	assert.InDelta(t, 0.035, cat.Lambda("ROKAFLEX ST", 10), 1e-12)

	// Quarter point.
	assert.InDelta(t, 0.0345, cat.Lambda("ROKAFLEX ST", 5), 1e-12)
}

func TestLambdaReturnsTableValueAtBreakpoints(t *testing.T) {
	cat := Default()

	assert.InDelta(t, 0.034, cat.Lambda("ROKAFLEX ST", 0), 1e-12)
	assert.InDelta(t, 0.036, cat.Lambda("ROKAFLEX ST", 20), 1e-12)
	assert.InDelta(t, 0.032, cat.Lambda("ROKAFLEX ST", -20), 1e-12)
	assert.InDelta(t, 0.039, cat.Lambda("ROKAFLEX ST", 40), 1e-12)
}

func TestLambdaFallsBackOutsideTable(t *testing.T) {
	cat := Default()

	tests := []struct {
		name string
		temp float64
	}{
		{"below first breakpoint", -30},
		{"just above last breakpoint", 40.001},
		{"far above last breakpoint", 150},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, DefaultLambda, cat.Lambda("ROKAFLEX ST", tc.temp))
		})
	}
}

func TestLambdaUnknownMaterialFallsBack(t *testing.T) {
	cat := Default()
	assert.Equal(t, DefaultLambda, cat.Lambda("UNOBTAINIUM", 20))
}

func TestLambdaIsMonotonicOverTheTable(t *testing.T) {
	cat := Default()

	prev := cat.Lambda("ROKAFLEX ST", -20)
	for temp := -19.0; temp <= 40; temp++ {
		cur := cat.Lambda("ROKAFLEX ST", temp)
		assert.GreaterOrEqual(t, cur, prev, "λ must not decrease towards higher temperature at %.0f °C", temp)
		assert.Positive(t, cur)
		prev = cur
	}
}

func TestLambdaAtHandlesUnsortedTables(t *testing.T) {
	m := Material{
		Name: "SHUFFLED",
		Points: []Breakpoint{
			{40, 0.040},
			{0, 0.030},
			{20, 0.034},
		},
	}
	assert.InDelta(t, 0.032, m.LambdaAt(10), 1e-12)
	assert.InDelta(t, 0.037, m.LambdaAt(30), 1e-12)
}

func TestLookupIsCaseAndSpaceInsensitive(t *testing.T) {
	cat := Default()
	a := cat.Lambda("rokaflex st", 10)
	b := cat.Lambda("  ROKAFLEX ST ", 10)
	assert.Equal(t, a, b)
	assert.InDelta(t, 0.035, a, 1e-12)
}

func TestMergeFileAddsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.yaml")
	content := `
materials:
  - name: CUSTOM FOAM
    vapor_resistance: 7000
    min_temp: -40
    max_temp: 95
    conductivity:
      - { temperature: 0, lambda: 0.030 }
      - { temperature: 20, lambda: 0.032 }
  - name: ROKAFLEX ST
    conductivity:
      - { temperature: 0, lambda: 0.040 }
      - { temperature: 20, lambda: 0.044 }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat := Default()
	require.NoError(t, cat.MergeFile(path))

	assert.InDelta(t, 0.031, cat.Lambda("CUSTOM FOAM", 10), 1e-12)

	// Built-in entry overridden by the file.
	assert.InDelta(t, 0.042, cat.Lambda("ROKAFLEX ST", 10), 1e-12)
}

func TestMergeFileRejectsBadEntries(t *testing.T) {
	dir := t.TempDir()

	noName := filepath.Join(dir, "noname.yaml")
	require.NoError(t, os.WriteFile(noName, []byte(`
materials:
  - conductivity:
      - { temperature: 0, lambda: 0.030 }
`), 0o644))

	badLambda := filepath.Join(dir, "badlambda.yaml")
	require.NoError(t, os.WriteFile(badLambda, []byte(`
materials:
  - name: BROKEN
    conductivity:
      - { temperature: 0, lambda: -0.030 }
`), 0o644))

	cat := Default()
	assert.Error(t, cat.MergeFile(noName))
	assert.Error(t, cat.MergeFile(badLambda))
	assert.Error(t, cat.MergeFile(filepath.Join(dir, "missing.yaml")))
}
