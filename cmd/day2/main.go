// Command day2 solves Advent of Code 2019 day 2.
//
// Usage:
//
//	day2 <input>
package main

import "github.com/cespare/aoc2019/internal/cli"

func main() {
	cli.Main(cli.NewDayCommand("2"))
}
