// Package robot implements a hull painting robot, whose brain is an intcode
// program: each input request reads the robot's camera, and each pair of
// outputs paints the current panel and then turns the robot before it moves
// one panel forward.
package robot

import (
	"fmt"
	"strings"

	"github.com/jcorbin/gointcode"
	"github.com/pkg/errors"
)

// Point is a panel location; y grows downward.
type Point struct{ X, Y int }

// Direction is where the robot is facing.
type Direction uint8

// Color is a panel color.
type Color uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

const (
	Black Color = iota
	White
)

func (dir Direction) String() string {
	switch dir {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(dir))
}

// Robot tracks the robot's position, the color of every panel, and which
// panels the robot itself has painted. Panels never colored are Black.
type Robot struct {
	Loc Point
	Dir Direction

	panels  map[Point]Color
	painted map[Point]struct{}
}

// New creates a robot at the origin, facing up, over an unpainted hull.
func New() *Robot {
	return &Robot{
		panels:  make(map[Point]Color),
		painted: make(map[Point]struct{}),
	}
}

// Camera returns the color of the panel under the robot.
func (r *Robot) Camera() Color { return r.panels[r.Loc] }

// Paint colors the panel under the robot, e.g. to set up a starting panel.
// Unlike a Command, it does not count towards Painted.
func (r *Robot) Paint(c Color) { r.panels[r.Loc] = c }

// Painted returns how many panels the robot has painted at least once.
func (r *Robot) Painted() int { return len(r.painted) }

// Command handles one pair of program outputs: paint the current panel
// (0 black, 1 white), turn (0 left, 1 right), and advance one panel.
func (r *Robot) Command(color, turn intcode.Word) error {
	if color != 0 && color != 1 {
		return errors.Errorf("invalid paint color %v", color)
	}
	if turn != 0 && turn != 1 {
		return errors.Errorf("invalid turn %v", turn)
	}
	r.Paint(Color(color))
	r.painted[r.Loc] = struct{}{}
	if turn == 0 {
		r.Dir = (r.Dir + 3) % 4
	} else {
		r.Dir = (r.Dir + 1) % 4
	}
	switch r.Dir {
	case Up:
		r.Loc.Y--
	case Right:
		r.Loc.X++
	case Down:
		r.Loc.Y++
	case Left:
		r.Loc.X--
	}
	return nil
}

// Run runs the brain program until it halts.
func (r *Robot) Run(prog intcode.Program, opts ...intcode.Option) error {
	rt := prog.NewRuntime(opts...)
	for {
		st, err := rt.Resume()
		if err != nil {
			return err
		}
		switch st.Kind {
		case intcode.Complete:
			return nil
		case intcode.ProducedOutput:
			return errors.Errorf("unexpected output %v before camera read @%v", st.Output, r.Loc)
		}

		st, err = rt.Supply(intcode.Word(r.Camera()))
		if err != nil {
			return err
		}
		if st.Kind != intcode.ProducedOutput {
			return errors.Errorf("expected paint color, runtime %v", st)
		}
		color := st.Output

		outs, err := rt.StepReading(1)
		if err == nil && outs == nil {
			err = errors.New("runtime halted before turning")
		}
		if err != nil {
			return errors.WithMessagef(err, "after paint %v @%v", color, r.Loc)
		}

		if err := r.Command(color, outs[0]); err != nil {
			return err
		}
	}
}

// String renders every colored panel within their bounding box, white as
// '#' and black as '.'.
func (r *Robot) String() string {
	if len(r.panels) == 0 {
		return ""
	}
	first := true
	var min, max Point
	for pt := range r.panels {
		if first {
			min, max, first = pt, pt, false
			continue
		}
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}

	var sb strings.Builder
	sb.Grow((max.X - min.X + 2) * (max.Y - min.Y + 1))
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if r.panels[Point{x, y}] == White {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
