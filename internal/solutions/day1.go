package solutions

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/aoc2019/fuel"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func init() {
	register("1", day1)
}

func day1(input []byte, w io.Writer) error {
	masses, err := fuel.ParseMasses(bytes.NewReader(input))
	if err != nil {
		return err
	}
	log.Info().Str("modules", humanize.Comma(int64(len(masses)))).Msg("Computing the fuel for modules")

	fmt.Fprintf(w, "PART 1: The total fuel needed is %d\n", fuel.Total(masses, fuel.Fuel))
	fmt.Fprintf(w, "PART 2: The total fuel needed (recursively) is %d\n", fuel.Total(masses, fuel.RecursiveFuel))
	return nil
}
