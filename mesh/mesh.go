// Package mesh turns a triangulation into flat vertex and index buffers, the
// form renderers and game engines expect.
package mesh

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Mesh struct {
	Vertices []mgl32.Vec3 `yaml:"vertices"`
	UVs      []mgl32.Vec2 `yaml:"uvs"`
	Indices  []int        `yaml:"indices"`
}

// Three vertices per triangle, with no sharing. Each triangle is wound C, B, A,
// which flips the counterclockwise triangles of the triangulation into the
// clockwise front faces of a y-down screen space.
func FromTriangulation(triangles internal.Triangulation) *Mesh {
	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, 3*len(triangles)),
		UVs:      make([]mgl32.Vec2, 0, 3*len(triangles)),
		Indices:  make([]int, 0, 3*len(triangles)),
	}
	for _, tri := range triangles {
		base := len(m.Vertices)
		for _, p := range tri.Vertices() {
			m.addVertex(p)
		}
		m.Indices = append(m.Indices, base+2, base+1, base)
	}
	return m
}

// Like FromTriangulation, but every distinct point becomes one vertex, shared
// by all the triangles that use it.
func Indexed(triangles internal.Triangulation) *Mesh {
	m := &Mesh{Indices: make([]int, 0, 3*len(triangles))}
	lookup := make(map[internal.Point]int)
	index := func(p internal.Point) int {
		if i, ok := lookup[p]; ok {
			return i
		}
		i := len(m.Vertices)
		lookup[p] = i
		m.addVertex(p)
		return i
	}
	for _, tri := range triangles {
		a, b, c := index(tri.A), index(tri.B), index(tri.C)
		m.Indices = append(m.Indices, c, b, a)
	}
	return m
}

func (m *Mesh) addVertex(p internal.Point) {
	m.Vertices = append(m.Vertices, mgl32.Vec3{float32(p.X), float32(p.Y), 0})
	m.UVs = append(m.UVs, mgl32.Vec2{float32(p.X), float32(p.Y)})
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// The vertices of triangle i, in index order.
func (m *Mesh) Triangle(i int) [3]mgl32.Vec3 {
	return [3]mgl32.Vec3{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// The face normal of triangle i. With C, B, A winding, counterclockwise input
// triangles face -z.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	v := m.Triangle(i)
	return v[1].Sub(v[0]).Cross(v[2].Sub(v[0])).Normalize()
}

func (m *Mesh) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return errors.Wrap(err, "encoding mesh")
	}
	return errors.Wrap(encoder.Close(), "encoding mesh")
}
