package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errBadIndexRange flags a malformed column-range argument.
var errBadIndexRange = errors.New("malformed index range")

// parseIndexRanges expands arguments like "3" and "0-2" into a flat,
// zero-indexed column list.  Returns nil when no arguments were given,
// which downstream means "all columns".
func parseIndexRanges(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, nil
	}

	var out []int
	for _, arg := range args {
		first, second, isRange := strings.Cut(arg, "-")
		lo, err := strconv.Atoi(first)
		if err != nil || lo < 0 {
			return nil, fmt.Errorf("%w: %q", errBadIndexRange, arg)
		}
		hi := lo
		if isRange {
			if hi, err = strconv.Atoi(second); err != nil || hi < lo {
				return nil, fmt.Errorf("%w: %q", errBadIndexRange, arg)
			}
		}
		for i := lo; i <= hi; i++ {
			out = append(out, i)
		}
	}

	return out, nil
}
