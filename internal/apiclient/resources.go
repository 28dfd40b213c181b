package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"example.com/octofit/internal/domain"
)

// APIInfo fetches the API root description.
func (c *Client) APIInfo(ctx context.Context) (domain.APIInfo, error) {
	var info domain.APIInfo
	err := c.Get(ctx, "/", &info, WithEndpoint("root"))
	return info, err
}

// Users fetches every user.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	return getList[domain.User](ctx, c, "users", "/users/")
}

// User fetches a single user.
func (c *Client) User(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	err := c.Get(ctx, "/users/"+formatID(id)+"/", &user, WithEndpoint("users/{id}"))
	return user, err
}

// Teams fetches every team with its members.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	return getList[domain.Team](ctx, c, "teams", "/teams/")
}

// Team fetches a single team.
func (c *Client) Team(ctx context.Context, id int64) (domain.Team, error) {
	var team domain.Team
	err := c.Get(ctx, "/teams/"+formatID(id)+"/", &team, WithEndpoint("teams/{id}"))
	return team, err
}

// Activities fetches every logged activity.
func (c *Client) Activities(ctx context.Context) ([]domain.Activity, error) {
	return getList[domain.Activity](ctx, c, "activities", "/activities/")
}

// Activity fetches a single activity.
func (c *Client) Activity(ctx context.Context, id int64) (domain.Activity, error) {
	var activity domain.Activity
	err := c.Get(ctx, "/activities/"+formatID(id)+"/", &activity, WithEndpoint("activities/{id}"))
	return activity, err
}

// Leaderboard fetches leaderboard entries in server order. Callers rank
// them with domain.RankLeaderboard.
func (c *Client) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return getList[domain.LeaderboardEntry](ctx, c, "leaderboard", "/leaderboard/")
}

// Workouts fetches every workout.
func (c *Client) Workouts(ctx context.Context) ([]domain.Workout, error) {
	return getList[domain.Workout](ctx, c, "workouts", "/workouts/")
}

// UserWorkouts fetches the workouts completed by one user.
func (c *Client) UserWorkouts(ctx context.Context, userID int64) ([]domain.UserWorkout, error) {
	query := url.Values{"user": []string{formatID(userID)}}
	return getList[domain.UserWorkout](ctx, c, "user-workouts", "/user-workouts/?"+query.Encode())
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// getList fetches a collection served either as a bare JSON array or as a
// paginated envelope with a "results" array.
func getList[T any](ctx context.Context, c *Client, endpoint, path string) ([]T, error) {
	var body listBody[T]
	if err := c.Get(ctx, path, &body, WithEndpoint(endpoint)); err != nil {
		return nil, err
	}
	return body.items, nil
}

// listBody decodes a collection response, so a body of the wrong shape
// fails inside Do as a *DecodeError.
type listBody[T any] struct {
	items []T
}

func (b *listBody[T]) UnmarshalJSON(data []byte) error {
	items, err := decodeList[T](data)
	if err != nil {
		return err
	}
	b.items = items
	return nil
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}

	items := []T{}
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
	case '{':
		var envelope struct {
			Results *[]T `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		if envelope.Results == nil {
			return nil, errors.New(`object without "results" array`)
		}
		items = *envelope.Results
	default:
		return nil, fmt.Errorf("expected array, got %q", trimmed[:1])
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
