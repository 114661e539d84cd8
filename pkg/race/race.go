// Package race simulates the car race lesson as a pure state machine: a step
// function moves the cars, a render function draws them, and neither touches
// the state it is given.
package race

import (
	"strings"

	"github.com/vinodhalaharvi/funcintro/pkg/ct"
	"github.com/vinodhalaharvi/funcintro/pkg/random"
)

// State is a snapshot of the race.
type State struct {
	Time      int   `yaml:"time"`
	Positions []int `yaml:"positions"`
}

// Options configures a race.
type Options struct {
	Time      int
	Cars      int
	Threshold int // a car moves when a roll exceeds this
	Sides     int // rolls are in [0, Sides)
}

// DefaultOptions returns five ticks, three cars and a 60% chance to move.
func DefaultOptions() Options {
	return Options{Time: 5, Cars: 3, Threshold: 3, Sides: 10}
}

// Start returns the initial state for opts: every car at position 1.
func Start(opts Options) State {
	positions := make([]int, opts.Cars)
	for i := range positions {
		positions[i] = 1
	}
	return State{Time: opts.Time, Positions: positions}
}

// Step returns the transition function. The only source of nondeterminism is
// src, so a seeded source replays the same race.
func Step(src random.Source, opts Options) func(State) State {
	move := func(position int) int {
		if random.UpTo(src, opts.Sides) > opts.Threshold {
			return position + 1
		}
		return position
	}
	return func(s State) State {
		return State{Time: s.Time - 1, Positions: ct.Map(s.Positions, move)}
	}
}

// Finished reports whether no ticks remain.
func Finished(s State) bool {
	return s.Time <= 1
}

// Render draws one line of dashes per car.
func Render(s State) string {
	return strings.Join(ct.Map(s.Positions, renderCar), "\n")
}

func renderCar(position int) string {
	return strings.Repeat("-", position)
}

// States runs the race from initial and returns every state, the last one
// being the first Finished state.
func States(initial State, step func(State) State) []State {
	return ct.Iterate(initial, step, Finished)
}

// Run returns the rendered frames of the race.
func Run(initial State, step func(State) State) []string {
	return ct.Map(States(initial, step), Render)
}

// Leaders returns the indexes of the cars furthest ahead.
func Leaders(s State) []int {
	best := ct.Reduce(s.Positions, 0, func(a, b int) int { return max(a, b) })
	indexes := make([]int, len(s.Positions))
	for i := range indexes {
		indexes[i] = i
	}
	return ct.Filter(indexes, func(i int) bool { return s.Positions[i] == best })
}
