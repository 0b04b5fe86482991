package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatUSD(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{cents: 0, expected: "$0.00"},
		{cents: 4_500, expected: "$45.00"},
		{cents: 4_550, expected: "$45.50"},
		{cents: 123_450, expected: "$1,234.50"},
		{cents: 5, expected: "$0.05"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatUSD(tc.cents))
		})
	}
}
