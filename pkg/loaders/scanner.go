package loaders

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// forEachLine scans r line by line, skipping blank lines and lines whose
// first token starts with "#", and calls fn with the line's whitespace-
// separated tokens. lineNum is 1-based and matches the physical line in
// the file, for error messages.
func forEachLine(r io.Reader, fn func(lineNum int, tokens []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if strings.HasPrefix(tokens[0], "#") {
			continue
		}
		if err := fn(lineNum, tokens); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseFloats parses tokens[1:] as float64, returning an InvalidInput error
// tagged with lineNum and the offending directive if any token is not a
// valid number or too few tokens are present.
func parseFloats(lineNum int, directive string, tokens []string, count int) ([]float64, error) {
	if len(tokens) < count+1 {
		return nil, core.NewInvalidInput("line %d: %q expects %d values, got %d", lineNum, directive, count, len(tokens)-1)
	}
	values := make([]float64, count)
	for i := 0; i < count; i++ {
		v, err := parseFloat(tokens[i+1])
		if err != nil {
			return nil, core.NewInvalidInput("line %d: %q has invalid value %q: %v", lineNum, directive, tokens[i+1], err)
		}
		values[i] = v
	}
	return values, nil
}

// validatePatches checks the viewable/form-factor invariant every loaded
// patch must hold: a patch's form factors are addressed by the same index
// as its viewable set, so the two sequences must have matching lengths.
// AddViewablePatch keeps them in lockstep when called directly, but a
// loader builds both from raw file indices, so the invariant is re-checked
// once loading is complete rather than assumed.
func validatePatches(patches []*geometry.Patch) error {
	for i, p := range patches {
		if len(p.Viewable) != len(p.FormFactors) {
			return core.NewInconsistent("patch %d has %d viewable entries but %d form factors", i, len(p.Viewable), len(p.FormFactors))
		}
	}
	return nil
}
