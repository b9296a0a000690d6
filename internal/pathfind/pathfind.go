// Package pathfind answers the reachability questions the scenario validator
// depends on: the minimum number of unit moves between two grid cells given a
// set of blocked cells, and the conversion of a move count into episode time
// steps at a given velocity.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/pursuit-rl/pursuit/internal/grid"
)

// ErrNoPath indicates no collision-free path exists between start and goal.
var ErrNoPath = errors.New("pathfind: no path between start and goal")

// directions lists the 8 unit moves: cardinals first, then diagonals.
var directions = [8][2]int{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
}

// MinimumMoves returns the length, in unit moves, of a shortest 8-directional
// path from start to goal that stays inside the grid and avoids every
// obstacle cell. It returns ErrNoPath when the goal is itself an obstacle or
// no path exists.
//
// All moves cost one, so a breadth-first search suffices: the first time the
// goal is generated its depth is the shortest path length.
func MinimumMoves(dims grid.Dimensions, start, goal grid.Coordinate, obstacles []grid.Coordinate) (int, error) {
	blocked := make(map[grid.Coordinate]bool, len(obstacles))
	for _, o := range obstacles {
		blocked[o] = true
	}
	if blocked[goal] {
		return 0, ErrNoPath
	}
	// Nodes are goal checked as they are generated, so the start cell must be
	// goal checked before the search begins.
	if start == goal {
		return 0, nil
	}

	type node struct {
		cell  grid.Coordinate
		moves int
	}
	queue := []node{{cell: start}}
	visited := map[grid.Coordinate]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			next := grid.Coordinate{X: current.cell.X + d[0], Y: current.cell.Y + d[1]}
			if !dims.Contains(next) || blocked[next] || visited[next] {
				continue
			}
			if next == goal {
				return current.moves + 1, nil
			}
			visited[next] = true
			queue = append(queue, node{cell: next, moves: current.moves + 1})
		}
	}

	return 0, ErrNoPath
}

// MinimumTimeSteps converts a move count into episode time steps. One time
// step lets the agent perform up to velocity moves, so the division rounds up.
func MinimumTimeSteps(moves, velocity int) (int, error) {
	if velocity <= 0 {
		return 0, fmt.Errorf("pathfind: velocity must be positive, got %d", velocity)
	}
	return (moves + velocity - 1) / velocity, nil
}
