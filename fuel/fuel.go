// Package fuel computes the fuel required to launch spacecraft modules.
package fuel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadMass is returned by ParseMasses for a line that is not a
// non-negative integer.
var ErrBadMass = errors.New("bad module mass")

// Fuel returns the fuel needed for a module of mass m: m/3 rounded down,
// minus 2. The result may be zero or negative for small masses.
func Fuel(m int64) int64 {
	return m/3 - 2
}

// RecursiveFuel is like Fuel but also accounts for the mass of the fuel
// itself, and that fuel's fuel, and so on. It is never negative.
func RecursiveFuel(m int64) int64 {
	f := Fuel(m)
	if f <= 0 {
		return 0
	}
	return f + RecursiveFuel(f)
}

// Total sums fn over masses.
func Total(masses []int64, fn func(int64) int64) int64 {
	var sum int64
	for _, m := range masses {
		sum += fn(m)
	}
	return sum
}

// ParseMasses reads one mass per line from r. Blank lines are skipped.
func ParseMasses(r io.Reader) ([]int64, error) {
	var masses []int64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		m, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %s", line, ErrBadMass, err)
		}
		if m < 0 {
			return nil, fmt.Errorf("line %d: %w: negative mass %d", line, ErrBadMass, m)
		}
		masses = append(masses, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return masses, nil
}
