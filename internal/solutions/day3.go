package solutions

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/aoc2019/wire"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func init() {
	register("3", day3)
}

func day3(input []byte, w io.Writer) error {
	var lines []string
	for _, line := range strings.Split(string(input), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 2 {
		return fmt.Errorf("%w: need 2 wires; got %d", ErrBadInput, len(lines))
	}

	paths := make([]*wire.Path, len(lines))
	for i, line := range lines {
		ins, err := wire.ParseInstructions(line)
		if err != nil {
			return fmt.Errorf("wire %d: %w", i+1, err)
		}
		paths[i], err = wire.Trace(wire.Origin, ins)
		if err != nil {
			return fmt.Errorf("wire %d: %w", i+1, err)
		}
		log.Info().
			Int("wire", i+1).
			Str("points", humanize.Comma(int64(len(paths[i].Points)))).
			Str("corners", humanize.Comma(int64(len(paths[i].Corners)))).
			Msg("Traced wire")
	}

	shared := wire.SharedPoints(paths...)
	log.Info().Str("shared", humanize.Comma(int64(len(shared)))).Msg("Found shared points")
	d, err := wire.ClosestDistance(wire.Origin, shared)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "PART 1: The closest intersection is at distance %d\n", d)
	return nil
}
