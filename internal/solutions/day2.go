package solutions

import (
	"fmt"
	"io"

	"github.com/cespare/aoc2019/intcode"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func init() {
	register("2", day2)
}

func day2(input []byte, w io.Writer) error {
	mem, err := intcode.Parse(string(input))
	if err != nil {
		return err
	}
	if err := intcode.Restore1202(mem); err != nil {
		return err
	}
	log.Info().Str("cells", humanize.Comma(int64(len(mem)))).Msg("Running program")

	m := intcode.New(mem)
	if err := m.Run(); err != nil {
		return err
	}
	fmt.Fprintf(w, "PART 1: The value at position 0 is %d\n", m.Memory()[0])
	return nil
}
