// Package cli builds the command-line front ends for the puzzle solutions.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/aoc2019/internal/solutions"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrMissingArgument is returned when no input file is given.
var ErrMissingArgument = errors.New("missing input file argument")

var errNoSolution = errors.New("no solution given")

// Main runs cmd and exits the process with status 1 if it fails.
func Main(cmd *cobra.Command) {
	setupLogging()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed")
		os.Exit(1)
	}
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// NewDayCommand returns a standalone command for the solution registered
// as name. It takes the input file as its only argument.
func NewDayCommand(name string) *cobra.Command {
	cmd := newSolutionCommand(name)
	cmd.Use = "day" + name + " <input>"
	return cmd
}

// NewAdventCommand returns a command with one sub-command per solution.
func NewAdventCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "advent <day> <input>",
		Short:         "Solve Advent of Code 2019 puzzles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Usage(); err != nil {
				return err
			}
			return errNoSolution
		},
	}
	for _, name := range solutions.Names() {
		root.AddCommand(newSolutionCommand(name))
	}
	return root
}

func newSolutionCommand(name string) *cobra.Command {
	fn, ok := solutions.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("no solution registered for %q", name))
	}
	return &cobra.Command{
		Use:           name + " <input>",
		Short:         "Solve day " + name,
		Args:          exactlyOneInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			return fn(input, cmd.OutOrStdout())
		},
	}
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return ErrMissingArgument
	case 1:
		return nil
	default:
		return fmt.Errorf("need 1 arg; got %d", len(args))
	}
}

func readInput(filename string) ([]byte, error) {
	log.Info().Str("file", filename).Msg("Reading input")
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	log.Info().Str("size", humanize.Bytes(uint64(len(b)))).Msg("Read input")
	return b, nil
}
