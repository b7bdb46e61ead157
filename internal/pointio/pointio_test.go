package pointio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/delaunay/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	input := `
# a unit square
0 0
1 0
  1   1
0	1

-2.5 1e3
`
	points, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -2.5, Y: 1000}}, points)

	t.Run("errors carry the line number", func(t *testing.T) {
		cases := []struct {
			input string
			line  string
		}{
			{"0 0\n1\n", "line 2"},
			{"0 0\n1 0\nx 1\n", "line 3"},
			{"1 y\n", "line 1"},
			{"1 2 3\n", "line 1"},
		}
		for _, c := range cases {
			_, err := ReadText(strings.NewReader(c.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.line)
		}
	})

	t.Run("empty input is not an error", func(t *testing.T) {
		points, err := ReadText(strings.NewReader("# nothing\n\n"))
		assert.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestRead(t *testing.T) {
	points, err := Read(strings.NewReader(`<svg><circle cx="1" cy="2" r="1"/></svg>`), FormatSVG)
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 1, Y: 2}}, points)

	points, err = Read(strings.NewReader("3 4\n"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 3, Y: 4}}, points)

	points, err = Read(strings.NewReader("points:\n  - {x: 1, y: 2}\n  - {x: -0.5, y: 3e2}\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []internal.Point{{X: 1, Y: 2}, {X: -0.5, Y: 300}}, points)

	_, err = Read(strings.NewReader("points: [1, 2]\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Read(strings.NewReader(""), Format("csv"))
	assert.Error(t, err)
}

func triangles() internal.Triangulation {
	return internal.Triangulation{
		internal.NewTriangle(internal.Point{X: 0, Y: 0}, internal.Point{X: 1, Y: 0}, internal.Point{X: 1, Y: 1}),
		internal.NewTriangle(internal.Point{X: 0, Y: 0}, internal.Point{X: 1, Y: 1}, internal.Point{X: 0, Y: 1.5}),
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, triangles()))
	assert.Equal(t, "0 0 1 0 1 1\n0 0 1 1 0 1.5\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, triangles()))
	assert.Contains(t, buf.String(), "triangles:")
	assert.Contains(t, buf.String(), "circumradius:")

	decoded, err := ReadYAML(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i, tri := range triangles() {
		assert.Equal(t, tri, decoded[i])
	}
}
