// Command advent runs any of the Advent of Code 2019 solutions.
//
// Usage:
//
//	advent <day> <input>
//
// Run without arguments to list the available days.
package main

import "github.com/cespare/aoc2019/internal/cli"

func main() {
	cli.Main(cli.NewAdventCommand())
}
