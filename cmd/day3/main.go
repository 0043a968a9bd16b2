// Command day3 solves Advent of Code 2019 day 3.
//
// Usage:
//
//	day3 <input>
package main

import "github.com/cespare/aoc2019/internal/cli"

func main() {
	cli.Main(cli.NewDayCommand("3"))
}
