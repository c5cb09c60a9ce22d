package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseValues converts raw command-line readings into numbers.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q at position %d: expected a number", arg, i+1)
		}
		values = append(values, v)
	}
	return values, nil
}
