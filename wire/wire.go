// Package wire traces wires laid out on a grid and finds where they cross.
package wire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrBadInstruction = errors.New("bad wire instruction")
	ErrOffGrid        = errors.New("wire runs off the grid")
)

// A Point is a position on the grid.
type Point struct {
	X, Y int
}

// Origin is where every wire starts.
var Origin = Point{0, 0}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

var unitSteps = map[Direction]Point{
	Up:    {0, 1},
	Down:  {0, -1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// An Instruction moves a wire Len units in direction Dir.
type Instruction struct {
	Dir Direction
	Len int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%c%d", in.Dir, in.Len)
}

// ParseInstruction parses an instruction such as "R75".
func ParseInstruction(s string) (Instruction, error) {
	var in Instruction
	if len(s) < 2 {
		return in, fmt.Errorf("%w %q", ErrBadInstruction, s)
	}
	in.Dir = Direction(s[0])
	if _, ok := unitSteps[in.Dir]; !ok {
		return in, fmt.Errorf("%w %q: unknown direction %q", ErrBadInstruction, s, s[0])
	}
	n, err := strconv.ParseInt(s[1:], 10, 32)
	if err != nil {
		return in, fmt.Errorf("%w %q: %s", ErrBadInstruction, s, err)
	}
	if n <= 0 {
		return in, fmt.Errorf("%w %q: length must be positive", ErrBadInstruction, s)
	}
	in.Len = int(n)
	return in, nil
}

// ParseInstructions parses a comma-separated list of instructions.
func ParseInstructions(line string) ([]Instruction, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	ins := make([]Instruction, len(fields))
	for i, field := range fields {
		in, err := ParseInstruction(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		ins[i] = in
	}
	return ins, nil
}

// A Path is the route taken by a wire.
//
// Points holds every grid point the wire passes through, in order,
// starting with its origin. Corners holds the origin followed by the end
// of each straight segment.
type Path struct {
	Points  []Point
	Corners []Point
}

// NewPath returns an empty path starting at origin.
func NewPath(origin Point) *Path {
	return &Path{
		Points:  []Point{origin},
		Corners: []Point{origin},
	}
}

// Last returns the point where the wire currently ends.
func (p *Path) Last() Point {
	return p.Points[len(p.Points)-1]
}

// Extend lays in.Len more units of wire from the end of p.
func (p *Path) Extend(in Instruction) error {
	step, ok := unitSteps[in.Dir]
	if !ok || in.Len <= 0 || in.Len > math.MaxInt32 {
		return fmt.Errorf("%w %s", ErrBadInstruction, in)
	}
	pt := p.Last()
	if !fits(pt.X, step.X*in.Len) || !fits(pt.Y, step.Y*in.Len) {
		return fmt.Errorf("%w: %s from %s", ErrOffGrid, in, pt)
	}
	for i := 0; i < in.Len; i++ {
		pt = pt.Add(step)
		p.Points = append(p.Points, pt)
	}
	p.Corners = append(p.Corners, pt)
	return nil
}

// fits reports whether x+d does not overflow an int.
func fits(x, d int) bool {
	if d > 0 {
		return x <= math.MaxInt-d
	}
	return x >= math.MinInt-d
}

// Trace follows ins starting from origin.
func Trace(origin Point, ins []Instruction) (*Path, error) {
	p := NewPath(origin)
	for _, in := range ins {
		if err := p.Extend(in); err != nil {
			return nil, err
		}
	}
	return p, nil
}
