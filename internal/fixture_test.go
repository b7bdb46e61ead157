package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each one is an SVG whose circles and polygon vertices make up a point set.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := PointsFromSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// Some ad hoc point sets

func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func SquareWithCentre() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
}

// A slightly irregular octagon of radius about 10, with random points well
// inside it. No three points are collinear and no four are cocircular, and the
// hull is exactly the eight octagon vertices.
func PerturbedOctagon(interior int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	var points []Point
	for i := 0; i < 8; i++ {
		angle := 2*math.Pi*float64(i)/8 + (rng.Float64()-0.5)*0.1
		radius := 10 + (rng.Float64()-0.5)*0.8
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	for i := 0; i < interior; i++ {
		angle := 2 * math.Pi * rng.Float64()
		radius := 6 * math.Sqrt(rng.Float64())
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

// Uniformly random points in a w by h rectangle.
func RandomScatter(n int, w, h float64, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{rng.Float64() * w, rng.Float64() * h}
	}
	return points
}

func Shuffled(points []Point, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	result := append([]Point(nil), points...)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// n points evenly spaced on a circle around the origin.
func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

// The twelve integer points on the circle of radius 5. Every four of them are
// exactly cocircular.
func LatticeCircle() []Point {
	return []Point{
		{5, 0}, {4, 3}, {3, 4}, {0, 5}, {-3, 4}, {-4, 3},
		{-5, 0}, {-4, -3}, {-3, -4}, {0, -5}, {3, -4}, {4, -3},
	}
}
