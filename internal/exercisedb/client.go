package exercisedb

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/five82/reps/internal/rapidapi"
)

const (
	// DefaultBaseURL is the hosted ExerciseDB endpoint on RapidAPI.
	DefaultBaseURL = "https://exercisedb.p.rapidapi.com"
	// DefaultHost is the X-RapidAPI-Host marker for ExerciseDB.
	DefaultHost = "exercisedb.p.rapidapi.com"
)

// Client exposes the ExerciseDB endpoints as typed results. Concurrent calls
// for the same URL share one request.
type Client struct {
	gw    *rapidapi.Gateway
	base  *url.URL
	group singleflight.Group
}

// New builds a Client rooted at baseURL.
func New(gw *rapidapi.Gateway, baseURL string) (*Client, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is nil")
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{gw: gw, base: base}, nil
}

// EndpointAll is the unfiltered exercise list URL.
func (c *Client) EndpointAll() string {
	return c.endpoint("exercises")
}

// EndpointBodyPart is the exercise list URL filtered by body part.
func (c *Client) EndpointBodyPart(part string) string {
	return c.endpoint("exercises", "bodyPart", part)
}

// Exercises fetches every exercise.
func (c *Client) Exercises(ctx context.Context) rapidapi.Result[[]Exercise] {
	return c.list(ctx, c.EndpointAll())
}

// ByBodyPart fetches exercises for one body part.
func (c *Client) ByBodyPart(ctx context.Context, part string) rapidapi.Result[[]Exercise] {
	return c.list(ctx, c.EndpointBodyPart(part))
}

// ByTarget fetches exercises that work the given target muscle.
func (c *Client) ByTarget(ctx context.Context, target string) rapidapi.Result[[]Exercise] {
	return c.list(ctx, c.endpoint("exercises", "target", target))
}

// ByEquipment fetches exercises that use the given equipment.
func (c *Client) ByEquipment(ctx context.Context, equipment string) rapidapi.Result[[]Exercise] {
	return c.list(ctx, c.endpoint("exercises", "equipment", equipment))
}

// BodyParts fetches the body-part enumeration.
func (c *Client) BodyParts(ctx context.Context) rapidapi.Result[[]string] {
	return rapidapi.List[string](ctx, c.gw, c.endpoint("exercises", "bodyPartList"))
}

// Exercise fetches a single exercise by id.
func (c *Client) Exercise(ctx context.Context, id string) rapidapi.Result[Exercise] {
	return rapidapi.Object[Exercise](ctx, c.gw, c.endpoint("exercises", "exercise", id))
}

func (c *Client) list(ctx context.Context, endpoint string) rapidapi.Result[[]Exercise] {
	v, _, shared := c.group.Do(endpoint, func() (any, error) {
		return rapidapi.List[Exercise](ctx, c.gw, endpoint), nil
	})
	res := v.(rapidapi.Result[[]Exercise])
	if !shared {
		return res
	}
	items, ok := res.Value()
	if !ok {
		return res
	}
	return rapidapi.Ok(slices.Clone(items))
}

func (c *Client) endpoint(elem ...string) string {
	for i, e := range elem {
		elem[i] = strings.TrimSpace(e)
	}
	return c.base.JoinPath(elem...).String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
