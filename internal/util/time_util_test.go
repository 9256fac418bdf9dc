package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastMonthEnd(t *testing.T) {
	t.Run("mid-month falls back to the prior month end", func(t *testing.T) {
		require.Equal(t, NewDate(2026, 7, 31), LastMonthEnd(NewDate(2026, 8, 30)))
		require.Equal(t, NewDate(2025, 12, 31), LastMonthEnd(NewDate(2026, 1, 1)))
	})

	t.Run("a month end maps to itself", func(t *testing.T) {
		require.Equal(t, NewDate(2026, 8, 31), LastMonthEnd(NewDate(2026, 8, 31)))
		require.Equal(t, NewDate(2024, 2, 29), LastMonthEnd(NewDate(2024, 2, 29)))
	})
}

func TestMonthEnds(t *testing.T) {
	dates := MonthEnds(4, NewDate(2026, 8, 30))

	require.Equal(t, []string{
		"2026-04-30",
		"2026-05-31",
		"2026-06-30",
		"2026-07-31",
	}, []string{
		dates[0].Format(layout),
		dates[1].Format(layout),
		dates[2].Format(layout),
		dates[3].Format(layout),
	})
}
