// Package arcade implements an arcade cabinet around an intcode game
// program. The program draws by outputting (x, y, tile) triples, except that
// x=-1,y=0 sets the score display instead; it asks for input once per frame,
// reading the joystick position.
package arcade

import (
	"fmt"
	"strings"

	"github.com/jcorbin/gointcode"
	"github.com/pkg/errors"
)

// Tile is a drawable tile id.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	Block
	Paddle
	Ball

	tileMax
)

var tileRunes = [tileMax]rune{' ', '█', '◼', '─', '○'}
var tileNames = [tileMax]string{"empty", "wall", "block", "paddle", "ball"}

func (t Tile) String() string {
	if t < tileMax {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Point is a screen location; y grows downward.
type Point struct{ X, Y intcode.Word }

// Joystick positions the joystick for each frame: -1 left, 0 neutral, 1
// right.
type Joystick interface {
	Tilt(g *Game) intcode.Word
}

// JoystickFunc adapts a function into a Joystick.
type JoystickFunc func(g *Game) intcode.Word

// Tilt calls f.
func (f JoystickFunc) Tilt(g *Game) intcode.Word { return f(g) }

// Tracker is a Joystick that moves the paddle toward the ball.
type Tracker struct{}

// Tilt returns the direction from the paddle to the ball.
func (Tracker) Tilt(g *Game) intcode.Word {
	switch {
	case g.ball.X < g.paddle.X:
		return -1
	case g.ball.X > g.paddle.X:
		return 1
	}
	return 0
}

// Game holds the cabinet's screen and score.
type Game struct {
	// Joystick is read once per frame; a nil Joystick stays neutral.
	Joystick Joystick

	// FreePlay sets address 0 to 2 before running, in lieu of quarters.
	FreePlay bool

	// Pace, if set, is called once per frame after drawing, before the
	// joystick is read; any error it returns stops the game. Hosts use it to
	// render, slow down, or cancel play.
	Pace func(g *Game) error

	tiles         map[Point]Tile
	width, height intcode.Word
	score         intcode.Word
	ball, paddle  Point
	frames        int
}

// New creates a game with a Tracker joystick.
func New() *Game {
	return &Game{Joystick: Tracker{}}
}

func (g *Game) reset() {
	g.tiles = make(map[Point]Tile)
	g.width, g.height = 0, 0
	g.score = 0
	g.ball, g.paddle = Point{}, Point{}
	g.frames = 0
}

// Run plays prog from a clean screen until it halts.
func (g *Game) Run(prog intcode.Program, opts ...intcode.Option) error {
	g.reset()
	rt := prog.NewRuntime(opts...)
	if g.FreePlay {
		if err := rt.Set(0, 2); err != nil {
			return err
		}
	}

	st, err := rt.Resume()
	for err == nil {
		switch st.Kind {
		case intcode.Complete:
			return nil

		case intcode.ProducedOutput:
			x := st.Output
			yt, rerr := rt.StepReading(2)
			if rerr == nil && yt == nil {
				rerr = errors.New("runtime halted mid draw")
			}
			if rerr != nil {
				return errors.WithMessagef(rerr, "draw x=%v", x)
			}
			if derr := g.Draw(x, yt[0], yt[1]); derr != nil {
				return derr
			}
			st, err = rt.Resume()

		case intcode.AwaitingInput:
			g.frames++
			if g.Pace != nil {
				if perr := g.Pace(g); perr != nil {
					return errors.WithMessagef(perr, "frame %v", g.frames)
				}
			}
			var tilt intcode.Word
			if g.Joystick != nil {
				tilt = g.Joystick.Tilt(g)
			}
			st, err = rt.Supply(tilt)

		default:
			return errors.Errorf("unexpected runtime state %v", st)
		}
	}
	return err
}

// Draw handles one output triple: either draws tile id t at (x, y), or sets
// the score to t when x=-1,y=0.
func (g *Game) Draw(x, y, t intcode.Word) error {
	if x == -1 && y == 0 {
		g.score = t
		return nil
	}
	if x < 0 || y < 0 {
		return errors.Errorf("invalid draw location %v,%v", x, y)
	}
	if t < 0 || t >= intcode.Word(tileMax) {
		return errors.Errorf("invalid tile id %v @%v,%v", t, x, y)
	}
	if g.tiles == nil {
		g.tiles = make(map[Point]Tile)
	}
	pt := Point{x, y}
	tile := Tile(t)
	g.tiles[pt] = tile
	switch tile {
	case Ball:
		g.ball = pt
	case Paddle:
		g.paddle = pt
	}
	if x > g.width {
		g.width = x
	}
	if y > g.height {
		g.height = y
	}
	return nil
}

// Tile returns the tile drawn at (x, y).
func (g *Game) Tile(x, y intcode.Word) Tile { return g.tiles[Point{x, y}] }

// Blocks returns how many block tiles are on screen.
func (g *Game) Blocks() (n int) {
	for _, tile := range g.tiles {
		if tile == Block {
			n++
		}
	}
	return n
}

// Score returns the last score displayed.
func (g *Game) Score() intcode.Word { return g.score }

// Ball returns where the ball was last drawn.
func (g *Game) Ball() Point { return g.ball }

// Paddle returns where the paddle was last drawn.
func (g *Game) Paddle() Point { return g.paddle }

// Frames returns how many times the program has read the joystick.
func (g *Game) Frames() int { return g.frames }

// String renders the screen followed by a score line.
func (g *Game) String() string {
	var sb strings.Builder
	if len(g.tiles) > 0 {
		for y := intcode.Word(0); y <= g.height; y++ {
			for x := intcode.Word(0); x <= g.width; x++ {
				sb.WriteRune(tileRunes[g.Tile(x, y)])
			}
			sb.WriteByte('\n')
		}
	}
	fmt.Fprintf(&sb, "Score: %v\n", g.score)
	return sb.String()
}
