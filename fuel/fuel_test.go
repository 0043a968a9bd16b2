package fuel

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFuel(t *testing.T) {
	for _, tt := range []struct {
		mass int64
		want int64
	}{
		{12, 2},
		{14, 2},
		{1969, 654},
		{100756, 33583},
		{0, -2},
		{5, -1},
		{6, 0},
	} {
		if got := Fuel(tt.mass); got != tt.want {
			t.Errorf("Fuel(%d): got %d; want %d", tt.mass, got, tt.want)
		}
	}
}

func TestRecursiveFuel(t *testing.T) {
	for _, tt := range []struct {
		mass int64
		want int64
	}{
		{14, 2},
		{1969, 966},
		{100756, 50346},
		{0, 0},
		{8, 0},
	} {
		if got := RecursiveFuel(tt.mass); got != tt.want {
			t.Errorf("RecursiveFuel(%d): got %d; want %d", tt.mass, got, tt.want)
		}
	}
}

func TestRecursiveFuelAtLeastFuel(t *testing.T) {
	for m := int64(0); m < 5000; m += 7 {
		if got, lo := RecursiveFuel(m), max(Fuel(m), 0); got < lo {
			t.Fatalf("RecursiveFuel(%d): got %d; want at least %d", m, got, lo)
		}
	}
}

func TestTotal(t *testing.T) {
	masses := []int64{12, 14, 1969, 100756}
	if got, want := Total(masses, Fuel), int64(2+2+654+33583); got != want {
		t.Errorf("Total(Fuel): got %d; want %d", got, want)
	}
	if got, want := Total(masses, RecursiveFuel), int64(2+2+966+50346); got != want {
		t.Errorf("Total(RecursiveFuel): got %d; want %d", got, want)
	}
	if got := Total(nil, Fuel); got != 0 {
		t.Errorf("Total of no masses: got %d; want 0", got)
	}
}

func TestParseMasses(t *testing.T) {
	masses, err := ParseMasses(strings.NewReader("12\n14\n\n1969\n100756\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{12, 14, 1969, 100756}, masses); diff != "" {
		t.Errorf("ParseMasses (-want +got):\n%s", diff)
	}
}

func TestParseMassesErrors(t *testing.T) {
	for _, input := range []string{
		"12\nabc\n",
		"12\n-3\n",
		"1.5\n",
	} {
		if _, err := ParseMasses(strings.NewReader(input)); !errors.Is(err, ErrBadMass) {
			t.Errorf("ParseMasses(%q): got error %v; want ErrBadMass", input, err)
		}
	}
}
