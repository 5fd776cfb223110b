// SPDX-License-Identifier: MIT
package dpcolor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquekernel/dpcolor"
)

func TestParseCount(t *testing.T) {
	got, err := dpcolor.ParseCount("|9| 1.0| 1000| 0.02| 300| d8| 258.0|not expected 6 | 0.000000 0 1000 -inf%| 258| 100.00%| 0.05| 0.07| inf%\n")
	require.NoError(t, err)
	assert.EqualValues(t, 258, got)

	got, err = dpcolor.ParseCount("|4|a|b|c|d|e|  17.9  |")
	require.NoError(t, err)
	assert.EqualValues(t, 17, got, "truncated toward zero")

	got, err = dpcolor.ParseCount("|4|a|b|c|d|e|1.2e3|")
	require.NoError(t, err)
	assert.EqualValues(t, 1200, got)
}

func TestParseCount_Errors(t *testing.T) {
	for _, out := range []string{
		"",
		"no pipes at all",
		"|1|2|3|4|5|6",
		"|1|2|3|4|5|6|abc|",
		"|1|2|3|4|5|6|-3|",
		"|1|2|3|4|5|6|NaN|",
		"|1|2|3|4|5|6|inf|",
	} {
		_, err := dpcolor.ParseCount(out)
		assert.ErrorIs(t, err, dpcolor.ErrProtocolParse, out)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", dpcolor.StateIdle.String())
	assert.Equal(t, "cleaned-up", dpcolor.StateCleanedUp.String())
	assert.Equal(t, "State(42)", dpcolor.State(42).String())
}
