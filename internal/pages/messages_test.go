package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	require.Equal(t, "30", points(30))
	require.Equal(t, "1,250", points(1250))
	require.Equal(t, "12.5", points(12.5))
	require.Equal(t, "10,000,000,000,000,000,000", points(1e19))
	require.Equal(t, "-10,000,000,000,000,000,000", points(-1e19))
}

func TestPointsKeepSignBeyondInt64(t *testing.T) {
	for _, score := range []float64{1 << 63, 1e19, 1e300} {
		require.False(t, strings.HasPrefix(points(score), "-"), "%g", score)
		require.True(t, strings.HasPrefix(points(-score), "-"), "%g", -score)
	}
}

func TestPluralCounts(t *testing.T) {
	require.Equal(t, "1 Workout Available", translate("workouts.count", 1))
	require.Equal(t, "3 Workouts Available", translate("workouts.count", 3))
	require.Equal(t, "0 Teams Available", translate("teams.count", 0))
	require.Equal(t, "Top Performers (1,024 participants)", translate("leaderboard.count", 1024))
}
