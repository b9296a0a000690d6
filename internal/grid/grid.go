// Package grid provides the value types for a two-dimensional gridworld:
// cell coordinates and grid dimensions with containment testing.
//
// Both types are plain comparable values. A Coordinate can be used directly
// as a map key, which the pathfinding and validation layers rely on.
package grid

import "fmt"

// Coordinate identifies a single grid cell by its x and y components.
// The type itself performs no range checking; whether a coordinate is
// meaningful for a given grid is answered by Dimensions.Contains.
type Coordinate struct {
	X int
	Y int
}

// CoordinateFromSlice builds a Coordinate from a 2-element [x, y] slice,
// the shape coordinates take in scenario files.
func CoordinateFromSlice(components []int) (Coordinate, error) {
	if len(components) != 2 {
		return Coordinate{}, fmt.Errorf("coordinates require exactly 2 components, got %d", len(components))
	}
	return Coordinate{X: components[0], Y: components[1]}, nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Dimensions describes the extent of a gridworld. Width and Height are
// expected to be positive; the configuration layer enforces that before a
// Dimensions value is constructed.
type Dimensions struct {
	Width  int
	Height int
}

// Contains reports whether the coordinate lies inside the grid, i.e. within
// [0, Width) x [0, Height).
func (d Dimensions) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < d.Width && c.Y >= 0 && c.Y < d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
