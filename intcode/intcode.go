// Package intcode implements the register machine from Advent of Code 2019
// day 2. Only the add, multiply, and halt instructions are supported.
package intcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Opcodes.
const (
	OpAdd  = 1  // mem[c] = mem[a] + mem[b]
	OpMul  = 2  // mem[c] = mem[a] * mem[b]
	OpHalt = 99 // stop
)

var (
	// ErrBadProgram is returned by Parse for malformed program text.
	ErrBadProgram = errors.New("bad program")
	// ErrInvalidOpcode means the machine decoded an unknown opcode.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrOutOfBounds means the machine addressed a cell outside memory.
	ErrOutOfBounds = errors.New("address out of bounds")
)

// Error describes a failure during execution. It wraps ErrInvalidOpcode
// or ErrOutOfBounds.
type Error struct {
	IP     int
	Opcode int64 // zero if IP itself is out of bounds
	Addr   int64 // offending address; only meaningful for ErrOutOfBounds
	Err    error
}

func (e *Error) Error() string {
	// An operand address can never equal the IP of an instruction that
	// was decoded, so Addr == IP means the IP ran off memory.
	if errors.Is(e.Err, ErrOutOfBounds) && e.Addr == int64(e.IP) {
		return fmt.Sprintf("ip %d: instruction pointer %s", e.IP, e.Err)
	}
	if errors.Is(e.Err, ErrOutOfBounds) {
		return fmt.Sprintf("ip %d (opcode %d): %s: %d", e.IP, e.Opcode, e.Err, e.Addr)
	}
	return fmt.Sprintf("ip %d: %s %d", e.IP, e.Err, e.Opcode)
}

// Unwrap returns ErrInvalidOpcode or ErrOutOfBounds.
func (e *Error) Unwrap() error { return e.Err }

// State is the execution state of a Machine.
type State int

const (
	Running State = iota
	Halted
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Parse parses a comma-separated list of integers. A single empty token at
// the end (as left by a trailing comma) is ignored.
func Parse(s string) ([]int64, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if n := len(fields); strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty program", ErrBadProgram)
	}
	mem := make([]int64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q): %s", ErrBadProgram, i, field, err)
		}
		mem[i] = n
	}
	return mem, nil
}

// Restore1202 puts the program into the "1202 program alarm" state by
// setting the noun to 12 and the verb to 2.
func Restore1202(mem []int64) error {
	if len(mem) < 3 {
		return fmt.Errorf("program of length %d: %w", len(mem), ErrOutOfBounds)
	}
	mem[1] = 12
	mem[2] = 2
	return nil
}

var binaryOps = map[int64]func(a, b int64) int64{
	OpAdd: func(a, b int64) int64 { return a + b },
	OpMul: func(a, b int64) int64 { return a * b },
}

// A Machine executes a program in place.
type Machine struct {
	mem   []int64
	ip    int
	state State
	err   error
}

// New returns a Machine that runs mem. The machine modifies mem directly.
func New(mem []int64) *Machine {
	return &Machine{mem: mem}
}

// State reports whether m is running, halted, or failed.
func (m *Machine) State() State { return m.state }

// IP returns the instruction pointer.
func (m *Machine) IP() int { return m.ip }

// Memory returns the machine's memory (the slice passed to New).
func (m *Machine) Memory() []int64 { return m.mem }

// Run steps the machine until it halts or fails.
func (m *Machine) Run() error {
	for m.state == Running {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. Stepping a halted machine does
// nothing; stepping a failed machine returns the error it failed with.
func (m *Machine) Step() error {
	switch m.state {
	case Halted:
		return nil
	case Failed:
		return m.err
	}

	if m.ip < 0 || m.ip >= len(m.mem) {
		return m.fail(0, ErrOutOfBounds, int64(m.ip))
	}
	op := m.mem[m.ip]
	if op == OpHalt {
		m.state = Halted
		return nil
	}
	fn, ok := binaryOps[op]
	if !ok {
		return m.fail(op, ErrInvalidOpcode, 0)
	}

	var args [3]int64
	for i := range args {
		addr := int64(m.ip + 1 + i)
		v, ok := m.load(addr)
		if !ok {
			return m.fail(op, ErrOutOfBounds, addr)
		}
		args[i] = v
	}
	a, ok := m.load(args[0])
	if !ok {
		return m.fail(op, ErrOutOfBounds, args[0])
	}
	b, ok := m.load(args[1])
	if !ok {
		return m.fail(op, ErrOutOfBounds, args[1])
	}
	if !m.store(args[2], fn(a, b)) {
		return m.fail(op, ErrOutOfBounds, args[2])
	}
	m.ip += 4
	return nil
}

func (m *Machine) load(addr int64) (int64, bool) {
	if addr < 0 || addr >= int64(len(m.mem)) {
		return 0, false
	}
	return m.mem[addr], true
}

func (m *Machine) store(addr, v int64) bool {
	if addr < 0 || addr >= int64(len(m.mem)) {
		return false
	}
	m.mem[addr] = v
	return true
}

func (m *Machine) fail(op int64, err error, addr int64) error {
	m.state = Failed
	m.err = &Error{IP: m.ip, Opcode: op, Addr: addr, Err: err}
	return m.err
}
