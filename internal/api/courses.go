package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golf-wager/internal/config"

	"github.com/valyala/fasthttp"
)

var ErrDirectoryDisabled = errors.New("course directory not configured")

// StatusError is a non-200 answer from the course directory.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("course directory error: %d", e.Status)
}

func (e *StatusError) NotFound() bool {
	return e.Status == fasthttp.StatusNotFound
}

type CourseDirectoryClient struct {
	baseURL     string
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

type ScorecardResponse struct {
	Data Scorecard `json:"data"`
}

type Scorecard struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Holes []ScorecardHole `json:"holes"`
}

type ScorecardHole struct {
	Number   int `json:"number"`
	Par      int `json:"par"`
	Handicap int `json:"handicap"`
}

func NewCourseDirectoryClient(cfg *config.Config) *CourseDirectoryClient {
	return &CourseDirectoryClient{
		baseURL: strings.TrimRight(cfg.CourseAPIURL, "/"),
		apiKey:  cfg.CourseAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *CourseDirectoryClient) Enabled() bool {
	return c.baseURL != ""
}

func (c *CourseDirectoryClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *CourseDirectoryClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-Ratelimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-Ratelimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-Ratelimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *CourseDirectoryClient) GetScorecard(ctx context.Context, courseID string) (*ScorecardResponse, error) {
	if !c.Enabled() {
		return nil, ErrDirectoryDisabled
	}
	u := fmt.Sprintf("%s/v1/courses/%s/scorecard", c.baseURL, url.PathEscape(courseID))
	return doRequest[ScorecardResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *CourseDirectoryClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	if client.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+client.apiKey)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
