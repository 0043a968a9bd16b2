// Package solutions holds the registered puzzle solutions.
package solutions

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrBadInput is returned when an input file has the wrong overall shape.
var ErrBadInput = errors.New("bad puzzle input")

// A Solution solves one day's puzzle, reading the whole input and writing
// the answers to w.
type Solution func(input []byte, w io.Writer) error

var solutions = make(map[string]Solution)

func register(name string, fn Solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// Lookup returns the solution registered as name.
func Lookup(name string) (Solution, bool) {
	fn, ok := solutions[name]
	return fn, ok
}

// Names lists the registered solutions in day order.
func Names() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
