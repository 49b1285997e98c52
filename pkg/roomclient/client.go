// Package roomclient fetches room descriptors, sprite descriptors and images from the room service.
package roomclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // asset decoders
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"escaperoom/pkg/game/room"
	"escaperoom/pkg/logger"
)

var (
	// ErrNetwork covers transport failures, non-2xx responses and unreadable bodies.
	ErrNetwork = errors.New("network failure")
	// ErrAssetLoad is returned when an image cannot be fetched or decoded.
	ErrAssetLoad = errors.New("asset load failure")
)

// StatusError reports a non-2xx response
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Client talks to a room service rooted at BaseURL
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client. A zero timeout means requests are never cut short.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchRoom returns the descriptor for roomID
func (c *Client) FetchRoom(ctx context.Context, roomID string) (room.Room, error) {
	var r room.Room
	if err := c.getJSON(ctx, "/room/"+url.PathEscape(roomID), &r); err != nil {
		return room.Room{}, fmt.Errorf("fetch room %q: %w", roomID, err)
	}
	return r, nil
}

// FetchSprite returns the descriptor for spriteID
func (c *Client) FetchSprite(ctx context.Context, spriteID string) (room.Sprite, error) {
	var s room.Sprite
	if err := c.getJSON(ctx, "/sprite/"+url.PathEscape(spriteID), &s); err != nil {
		return room.Sprite{}, fmt.Errorf("fetch sprite %q: %w", spriteID, err)
	}
	return s, nil
}

// FetchImage downloads and decodes the image at assetPath (e.g. "/assets/sprites/player.png")
func (c *Client) FetchImage(ctx context.Context, assetPath string) (image.Image, error) {
	body, err := c.get(ctx, assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, assetPath, err)
	}
	defer body.Close()

	img, _, err := image.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAssetLoad, assetPath, err)
	}
	return img, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrNetwork, path, err)
	}
	return nil
}

// get performs the request and returns the body of a 2xx response
func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	u := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Log.WithField("request_id", reqID).WithError(err).Debug("Request failed")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		logger.Log.WithField("request_id", reqID).WithField("status", resp.StatusCode).Debug("Unexpected status")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, &StatusError{URL: u, StatusCode: resp.StatusCode, Status: resp.Status})
	}
	return resp.Body, nil
}
