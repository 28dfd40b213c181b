package fetch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/octofit/internal/apiclient"
)

func TestZeroStateIsLoading(t *testing.T) {
	var state State[[]string]
	require.True(t, state.Loading())
	require.False(t, state.Failed())
	require.False(t, state.Empty())
	require.Nil(t, state.Data)
	require.Empty(t, state.Message)
}

func TestLoadSuccess(t *testing.T) {
	calls := 0
	state := Load(context.Background(), "teams", func(context.Context) ([]string, error) {
		calls++
		return []string{"Falcons"}, nil
	})

	require.Equal(t, 1, calls)
	require.Equal(t, Success, state.Status)
	require.Equal(t, []string{"Falcons"}, state.Data)
	require.False(t, state.Empty())
	require.Empty(t, state.Message)
}

func TestLoadEmptyCollection(t *testing.T) {
	state := Load(context.Background(), "workouts", func(context.Context) ([]int, error) {
		return []int{}, nil
	})
	require.True(t, state.Empty())
}

func TestLoadErrorCarriesStatusCode(t *testing.T) {
	state := Load(context.Background(), "leaderboard", func(context.Context) ([]int, error) {
		return []int{1}, &apiclient.APIError{StatusCode: 500, Status: "Internal Server Error", Path: "/leaderboard/"}
	})

	require.True(t, state.Failed())
	require.False(t, state.Canceled())
	require.Nil(t, state.Data)
	require.Equal(t, "Error fetching leaderboard: API error: 500 Internal Server Error", state.Message)
	require.Equal(t, 500, apiclient.StatusCode(state.Err))
}

func TestLoadCanceledContextSkipsFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	state := Load(ctx, "users", func(context.Context) ([]int, error) {
		called = true
		return nil, nil
	})

	require.False(t, called)
	require.True(t, state.Canceled())
}

func TestLoadCanceledMidFetchIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	state := Load(ctx, "users", func(ctx context.Context) (int, error) {
		cancel()
		return 0, fmt.Errorf("request /users/: %w", ctx.Err())
	})
	require.True(t, state.Canceled())
	require.True(t, state.Failed())
}

func TestLoadUpstreamTimeoutIsAFailure(t *testing.T) {
	state := Load(context.Background(), "users", func(context.Context) (int, error) {
		return 0, fmt.Errorf("request /users/: %w", context.DeadlineExceeded)
	})
	require.False(t, state.Canceled())
	require.Equal(t, "Error fetching users: request /users/: context deadline exceeded", state.Message)

	state = Load(context.Background(), "users", func(context.Context) (int, error) {
		return 0, errors.New("connection refused")
	})
	require.False(t, state.Canceled())
}

type bag struct{ n int }

func (b bag) Len() int { return b.n }

func TestCount(t *testing.T) {
	require.Equal(t, 0, Count(nil))
	require.Equal(t, 2, Count([]int{1, 2}))
	require.Equal(t, 0, Count(map[string]int{}))
	require.Equal(t, 3, Count(bag{n: 3}))
	require.Equal(t, 1, Count(struct{}{}))
	var nilPtr *[]int
	require.Equal(t, 0, Count(nilPtr))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "loading", Loading.String())
	require.Equal(t, "success", Success.String())
	require.Equal(t, "error", Error.String())
}
