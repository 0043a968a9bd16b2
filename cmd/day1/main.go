// Command day1 solves Advent of Code 2019 day 1.
//
// Usage:
//
//	day1 <input>
package main

import "github.com/cespare/aoc2019/internal/cli"

func main() {
	cli.Main(cli.NewDayCommand("1"))
}
