package mesh

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/osuushi/delaunay/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func square() internal.Triangulation {
	a, b, c, d := internal.Point{X: 0, Y: 0}, internal.Point{X: 1, Y: 0}, internal.Point{X: 1, Y: 1}, internal.Point{X: 0, Y: 1}
	return internal.Triangulation{
		internal.NewTriangle(a, b, c),
		internal.NewTriangle(a, c, d),
	}
}

func TestFromTriangulation(t *testing.T) {
	m := FromTriangulation(square())
	require.Len(t, m.Vertices, 6)
	require.Len(t, m.UVs, 6)
	assert.Equal(t, []int{2, 1, 0, 5, 4, 3}, m.Indices)
	assert.Equal(t, 2, m.TriangleCount())

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Vertices[0])
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, m.Vertices[2])
	assert.Equal(t, mgl32.Vec2{1, 1}, m.UVs[2])

	// First triangle is A, B, C = (0,0), (1,0), (1,1), so C comes first
	assert.Equal(t, [3]mgl32.Vec3{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}}, m.Triangle(0))
}

func TestIndexed(t *testing.T) {
	m := Indexed(square())
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.UVs, 4)
	assert.Equal(t, []int{2, 1, 0, 3, 2, 0}, m.Indices)
	assert.Equal(t, FromTriangulation(square()).Triangle(1), m.Triangle(1))
}

func TestNormal(t *testing.T) {
	for _, m := range []*Mesh{FromTriangulation(square()), Indexed(square())} {
		for i := 0; i < m.TriangleCount(); i++ {
			assert.True(t, m.Normal(i).ApproxEqual(mgl32.Vec3{0, 0, -1}), "normal %v", m.Normal(i))
		}
	}
}

func TestEmpty(t *testing.T) {
	m := FromTriangulation(nil)
	assert.Empty(t, m.Vertices)
	assert.Zero(t, m.TriangleCount())
}

func TestWriteYAML(t *testing.T) {
	original := Indexed(square())
	var buf bytes.Buffer
	require.NoError(t, original.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "vertices:")
	assert.Contains(t, buf.String(), "indices:")

	var decoded Mesh
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, original, &decoded)
}
