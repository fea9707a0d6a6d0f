// Package courseapi is a thin client for the external course-data provider,
// used to search courses by city and import their hole data.
package courseapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fairwaylabs/pressbook/internal/models"
)

// ErrCourseNotFound is returned when the provider has no such course
var ErrCourseNotFound = errors.New("course not found")

// CourseSummary is one search hit from the provider
type CourseSummary struct {
	// ExternalID is the provider's ID for the course
	ExternalID string `json:"id"`

	// Name is the course name
	Name string `json:"name"`

	// City is the course's city
	City string `json:"city"`
}

// Config holds configuration for the course-data client
type Config struct {
	// BaseURL is the provider's base URL
	BaseURL string

	// HTTPClient overrides the default HTTP client
	HTTPClient *http.Client
}

// Client calls the external course-data provider
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new course-data client
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// SearchByCity searches the provider for courses in a city
func (c *Client) SearchByCity(ctx context.Context, city string) ([]CourseSummary, error) {
	endpoint := fmt.Sprintf("%s/courses?city=%s", c.baseURL, url.QueryEscape(city))

	var body struct {
		Courses []CourseSummary `json:"courses"`
	}
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return body.Courses, nil
}

// GetByID fetches a course's full hole data from the provider. The
// returned course has no ID or owner; the caller saves its own copy.
func (c *Client) GetByID(ctx context.Context, externalID string) (*models.Course, error) {
	endpoint := fmt.Sprintf("%s/courses/%s", c.baseURL, url.PathEscape(externalID))

	var body struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		City  string `json:"city"`
		Holes []struct {
			Number      int `json:"number"`
			Par         int `json:"par"`
			StrokeIndex int `json:"strokeIndex"`
		} `json:"holes"`
	}
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	holes := make(map[int]models.Hole, len(body.Holes))
	for _, h := range body.Holes {
		holes[h.Number] = models.Hole{
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		}
	}

	return &models.Course{
		Name:       body.Name,
		City:       body.City,
		Holes:      holes,
		ExternalID: body.ID,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("course provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrCourseNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("course provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
