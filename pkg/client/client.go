// Package client talks to the portfolio API over HTTP and the realtime
// websocket. It implements livesync.ContentStore and livesync.MessageStore.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"portfolio-be/pkg/livesync"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer that does not map onto a livesync error.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	wsURL   string
	timeout time.Duration
	logger  *zap.Logger
	dialer  *websocket.Dialer

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New points a client at the API root, e.g. http://localhost:3000/api.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		baseURL: u.String(),
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	c.wsURL = u.String()

	for _, opt := range opts {
		opt(c)
	}
	c.dialer = &websocket.Dialer{HandshakeTimeout: c.timeout}
	return c, nil
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges owner credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var res struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, fiber.MethodPost, "/auth/login", body, &res); err != nil {
		return err
	}
	c.SetToken(res.AccessToken)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", livesync.ErrTransient, err)
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if tok := c.Token(); tok != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			fiber.ReleaseAgent(a)
			return fmt.Errorf("encode request: %w", err)
		}
		a.ContentType(fiber.MIMEApplicationJSON)
		a.Body(payload)
	}
	a.Timeout(c.timeoutFor(ctx))

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%w: %v", livesync.ErrTransient, err)
	}

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", livesync.ErrTransient, errors.Join(errs...))
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && code < 300 {
			return fmt.Errorf("%w: decode response: %v", livesync.ErrTransient, err)
		}
	}
	if err := statusError(code, env.Message); err != nil {
		return err
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", livesync.ErrTransient, err)
	}
	return nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < c.timeout {
			return left
		}
	}
	return c.timeout
}

// statusError maps an HTTP status onto the livesync error taxonomy.
func statusError(code int, message string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == fiber.StatusUnauthorized, code == fiber.StatusForbidden:
		return fmt.Errorf("%w: %s", livesync.ErrNotAuthenticated, message)
	case code == fiber.StatusNotFound:
		return fmt.Errorf("%w: %s", livesync.ErrNotFound, message)
	case code >= 500, code == fiber.StatusTooManyRequests, code == fiber.StatusRequestTimeout:
		return fmt.Errorf("%w: status %d: %s", livesync.ErrTransient, code, message)
	default:
		return &APIError{Code: code, Message: message}
	}
}
