// SPDX-License-Identifier: MIT
// Package: cliquekernel/dpcolor
//
// parse.go — sampler output decoding.
//
// Sample line:
//
//	|9| 1.0| 1000| 0.02| 300| d8| 258.0|not expected 6 | 0.000000 0 1000 -inf%| 258| ...
//
// Splitting on '|' yields an empty field 0 before the first pipe, so the
// estimate ("258.0") is field 7.

package dpcolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const countField = 7

// ParseCount extracts the clique estimate from sampler stdout, truncating toward zero.
//
// Errors:
//   - ErrProtocolParse when the field is missing, not a number, negative, or not finite.
func ParseCount(out string) (int64, error) {
	fields := strings.Split(out, "|")
	if len(fields) <= countField {
		return 0, fmt.Errorf("%w: %d fields in %q", ErrProtocolParse, len(fields), abbreviate(out))
	}
	raw := strings.TrimSpace(fields[countField])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %d %q: %w", ErrProtocolParse, countField, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: field %d out of range: %q", ErrProtocolParse, countField, raw)
	}

	return int64(v), nil
}

func abbreviate(s string) string {
	const limit = 120
	if len(s) > limit {
		return s[:limit] + "..."
	}

	return s
}
