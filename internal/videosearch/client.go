package videosearch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/reps/internal/rapidapi"
)

const (
	// DefaultBaseURL is the hosted video search endpoint on RapidAPI.
	DefaultBaseURL = "https://youtube-search-and-download.p.rapidapi.com"
	// DefaultHost is the X-RapidAPI-Host marker for video search.
	DefaultHost = "youtube-search-and-download.p.rapidapi.com"

	watchURL = "https://www.youtube.com/watch?v="
)

// Video is one search hit.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// URL returns the watch link for the video.
func (v Video) URL() string {
	return watchURL + url.QueryEscape(v.ID)
}

type searchResponse struct {
	Contents []struct {
		Video *struct {
			VideoID     string `json:"videoId"`
			Title       string `json:"title"`
			ChannelName string `json:"channelName"`
			Thumbnails  []struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"video"`
	} `json:"contents"`
}

// Client queries the video search API.
type Client struct {
	gw   *rapidapi.Gateway
	base *url.URL
}

// New builds a Client rooted at baseURL.
func New(gw *rapidapi.Gateway, baseURL string) (*Client, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway is nil")
	}
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	base.Path = strings.TrimRight(base.Path, "/")
	base.RawQuery = ""
	base.Fragment = ""
	return &Client{gw: gw, base: base}, nil
}

// Search returns videos for query. Entries without a video id (channels,
// playlists) are skipped.
func (c *Client) Search(ctx context.Context, query string) rapidapi.Result[[]Video] {
	endpoint := c.base.JoinPath("search")
	endpoint.RawQuery = url.Values{"query": {strings.TrimSpace(query)}}.Encode()

	res := rapidapi.Object[searchResponse](ctx, c.gw, endpoint.String())
	payload, ok := res.Value()
	if !ok {
		return rapidapi.Fail[[]Video](res.Failure())
	}
	videos := make([]Video, 0, len(payload.Contents))
	for _, entry := range payload.Contents {
		if entry.Video == nil || strings.TrimSpace(entry.Video.VideoID) == "" {
			continue
		}
		v := Video{
			ID:      entry.Video.VideoID,
			Title:   entry.Video.Title,
			Channel: entry.Video.ChannelName,
		}
		if len(entry.Video.Thumbnails) > 0 {
			v.Thumbnail = entry.Video.Thumbnails[0].URL
		}
		videos = append(videos, v)
	}
	return rapidapi.Ok(videos)
}
