// Package intervals is a client for the intervals.icu API.
package intervals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vivek-dodia/fast/internal/dateutil"
)

const (
	defaultBaseURL = "https://intervals.icu/api/v1"
	userAgent      = "fast-workout-analyzer/1.0"

	// intervals.icu basic auth uses the literal string API_KEY as the
	// username and the actual key as the password.
	authUsername = "API_KEY"
)

// Client fetches training data from intervals.icu.
type Client struct {
	apiKey    string
	athleteID string
	baseURL   string
	http      *http.Client
}

// NewClient creates a client for the given athlete.
func NewClient(apiKey, athleteID string) *Client {
	return &Client{
		apiKey:    apiKey,
		athleteID: athleteID,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API base URL, for the base_url config
// override and for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// AthleteProfile fetches the athlete profile including current fitness
// metrics.
func (c *Client) AthleteProfile(ctx context.Context) (Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/athlete/%s", c.athleteID)
	if err := c.get(ctx, path, nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Activities fetches activities between oldest and newest (YYYY-MM-DD,
// inclusive). The provider returns them newest-first.
func (c *Client) Activities(ctx context.Context, oldest, newest string) ([]Activity, error) {
	var activities []Activity
	path := fmt.Sprintf("/athlete/%s/activities", c.athleteID)
	if err := c.get(ctx, path, rangeParams(oldest, newest), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// ActivityDetail fetches the full record for a single activity.
func (c *Client) ActivityDetail(ctx context.Context, activityID string) (Activity, error) {
	var activity Activity
	if err := c.get(ctx, "/activity/"+activityID, nil, &activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Wellness fetches wellness entries between oldest and newest.
func (c *Client) Wellness(ctx context.Context, oldest, newest string) ([]WellnessEntry, error) {
	var wellness []WellnessEntry
	path := fmt.Sprintf("/athlete/%s/wellness.json", c.athleteID)
	if err := c.get(ctx, path, rangeParams(oldest, newest), &wellness); err != nil {
		return nil, err
	}
	return wellness, nil
}

// FitnessTrend fetches daily CTL/ATL trend points between oldest and
// newest. Not every account exposes this endpoint.
func (c *Client) FitnessTrend(ctx context.Context, oldest, newest string) ([]TrendPoint, error) {
	var trend []TrendPoint
	path := fmt.Sprintf("/athlete/%s/fitness-trend", c.athleteID)
	if err := c.get(ctx, path, rangeParams(oldest, newest), &trend); err != nil {
		return nil, err
	}
	return trend, nil
}

// FetchTrainingData fetches the full analysis bundle for the last daysBack
// days. Wellness and fitness-trend data are best-effort: accounts without
// them still get an analysis.
func (c *Client) FetchTrainingData(ctx context.Context, daysBack int) (*TrainingData, error) {
	today := dateutil.TruncateToDay(time.Now())
	oldest := dateutil.DayString(today.AddDate(0, 0, -daysBack))
	newest := dateutil.DayString(today)

	profile, err := c.AthleteProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching athlete profile: %w", err)
	}

	activities, err := c.Activities(ctx, oldest, newest)
	if err != nil {
		return nil, fmt.Errorf("fetching activities: %w", err)
	}

	wellness, err := c.Wellness(ctx, oldest, newest)
	if err != nil {
		wellness = nil
	}

	trend, err := c.FitnessTrend(ctx, oldest, newest)
	if err != nil {
		trend = nil
	}

	return &TrainingData{
		Profile:      profile,
		Activities:   activities,
		Wellness:     wellness,
		FitnessTrend: trend,
		DateRange: DateRange{
			Start: oldest,
			End:   newest,
			Days:  daysBack,
		},
	}, nil
}

func rangeParams(oldest, newest string) url.Values {
	params := url.Values{}
	if oldest != "" {
		params.Set("oldest", oldest)
	}
	if newest != "" {
		params.Set("newest", newest)
	}
	return params
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(authUsername, c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("authentication failed (403) for %s: check your intervals.icu API key and athlete ID", u)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("intervals.icu returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
