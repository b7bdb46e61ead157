package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFromSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <circle cx="1" cy="2" r="1"/>
  <g>
    <polygon points="0,0 10,0 10,10"/>
    <polyline points="3 4 5 6"/>
  </g>
  <rect x="100" y="100" width="1" height="1"/>
</svg>`
	points, err := PointsFromSVG(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2}, {0, 0}, {10, 0}, {10, 10}, {3, 4}, {5, 6}}, points)

	t.Run("bad coordinates", func(t *testing.T) {
		for _, doc := range []string{
			`<svg><circle cx="a" cy="2"/></svg>`,
			`<svg><circle cx="1"/></svg>`,
			`<svg><polygon points="0,0 1"/></svg>`,
			`<svg><polygon points="0,0 1,x"/></svg>`,
		} {
			_, err := PointsFromSVG(strings.NewReader(doc))
			assert.Error(t, err, doc)
		}
	})

	t.Run("fixtures", func(t *testing.T) {
		assert.Len(t, LoadFixture("scatter"), 24)
		assert.Len(t, LoadFixture("hub"), 11)
		assert.Len(t, LoadFixture("spiral"), 40)
	})
}
