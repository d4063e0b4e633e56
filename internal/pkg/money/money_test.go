//go:build unit

package money_test

import (
	"testing"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		pct      float64
		expected float64
	}{
		{name: "ten percent of 200", amount: 200, pct: 10, expected: 20},
		{name: "rounds half away from zero", amount: 10.05, pct: 50, expected: 5.03},
		{name: "classic float trap", amount: 0.1, pct: 300, expected: 0.3},
		{name: "zero percent", amount: 99.99, pct: 0, expected: 0},
		{name: "full price", amount: 42.5, pct: 100, expected: 42.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.Percent(tc.amount, tc.pct))
		})
	}
}

func TestSub(t *testing.T) {
	assert.Equal(t, 180.0, money.Sub(200, 20))
	assert.Equal(t, 0.0, money.Sub(40, 100), "never negative")
	assert.Equal(t, 0.2, money.Sub(0.3, 0.1))
}

func TestMinAndLess(t *testing.T) {
	assert.Equal(t, 40.0, money.Min(100, 40))
	assert.True(t, money.Less(49.99, 50))
	assert.False(t, money.Less(50, 50))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.75, money.Round(22.5/6))
	assert.Equal(t, 3.67, money.Round(11.0/3))
}
