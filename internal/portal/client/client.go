package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/collegeportal/internal/app/models"
)

// maxBodySize caps how much of a backend answer is read.
const maxBodySize = 4 << 20

// errNoEnvelope is returned when a body parses as JSON but carries no success flag.
var errNoEnvelope = errors.New("response is not a {success, data, message} envelope")

// Client talks to the REST backend. It holds no per-user state; tokens are passed per call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for transport errors.
func WithLogger(lgr zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = lgr
	}
}

// New creates a client for the API rooted at baseURL (for example http://localhost:5000/api).
// A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is read loosely: Success is a pointer so a missing flag can be told from false.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Ack is the payload of a mutation; the message lives on the Result.
type Ack struct{}

// Fetch GETs path and decodes the envelope's data into T.
func Fetch[T any](ctx context.Context, c *Client, path string) Result[T] {
	body, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return broken[T](err)
	}
	return decode[T](body)
}

// Mutate sends a POST, PUT or DELETE with the form as JSON and the bearer token attached.
func (c *Client) Mutate(ctx context.Context, method, path, token string, form map[string]string) Result[Ack] {
	var payload any
	if form != nil {
		payload = form
	}
	body, err := c.do(ctx, method, path, token, payload)
	if err != nil {
		return broken[Ack](err)
	}
	return decode[Ack](body)
}

// Create POSTs a new record to a collection endpoint.
func (c *Client) Create(ctx context.Context, endpoint, token string, form map[string]string) Result[Ack] {
	return c.Mutate(ctx, http.MethodPost, endpoint, token, form)
}

// Update PUTs the form to endpoint/id.
func (c *Client) Update(ctx context.Context, endpoint string, id int64, token string, form map[string]string) Result[Ack] {
	return c.Mutate(ctx, http.MethodPut, itemPath(endpoint, id), token, form)
}

// Delete removes endpoint/id.
func (c *Client) Delete(ctx context.Context, endpoint string, id int64, token string) Result[Ack] {
	return c.Mutate(ctx, http.MethodDelete, itemPath(endpoint, id), token, nil)
}

// SearchStudent looks a student up by roll number.
func (c *Client) SearchStudent(ctx context.Context, rollNumber string) Result[models.Student] {
	return Fetch[models.Student](ctx, c, "/students/search/"+url.PathEscape(rollNumber))
}

// Faculty returns the faculty grouped by department name.
func (c *Client) Faculty(ctx context.Context) Result[models.FacultyByDepartment] {
	return Fetch[models.FacultyByDepartment](ctx, c, "/faculty")
}

// Departments returns every department for select inputs.
func (c *Client) Departments(ctx context.Context) Result[[]models.Department] {
	return Fetch[[]models.Department](ctx, c, "/departments")
}

// LoginData is what a successful login hands back.
type LoginData struct {
	ID        int64
	Name      string
	Token     string
	ExpiresAt time.Time
}

type loginResponse struct {
	Success   *bool     `json:"success"`
	Message   string    `json:"message"`
	AdminID   int64     `json:"admin_id"`
	TeacherID int64     `json:"teacher_id"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login posts the credentials to /admin/login or /teacher/login depending on role.
func (c *Client) Login(ctx context.Context, role models.Role, username, password string) Result[LoginData] {
	body, err := c.do(ctx, http.MethodPost, "/"+string(role)+"/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return broken[LoginData](err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return broken[LoginData](fmt.Errorf("decode login response: %w", err))
	}
	if resp.Success == nil {
		return broken[LoginData](errNoEnvelope)
	}
	if !*resp.Success {
		return failed[LoginData](resp.Message)
	}

	data := LoginData{Name: resp.Name, Token: resp.Token, ExpiresAt: resp.ExpiresAt, ID: resp.AdminID}
	if role == models.RoleTeacher {
		data.ID = resp.TeacherID
	}
	return succeeded(data, resp.Message)
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Failed to read backend response")
		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("Backend responded")
	return body, nil
}

// decode turns a body into a Result. The HTTP status is ignored: a well-formed envelope with
// success=false is a Failure whatever the status code.
func decode[T any](body []byte) Result[T] {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return broken[T](fmt.Errorf("decode envelope: %w", err))
	}
	if env.Success == nil {
		return broken[T](errNoEnvelope)
	}
	if !*env.Success {
		return failed[T](env.Message)
	}

	var data T
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return broken[T](fmt.Errorf("decode data: %w", err))
		}
	}
	return succeeded(data, env.Message)
}

func itemPath(endpoint string, id int64) string {
	return endpoint + "/" + strconv.FormatInt(id, 10)
}
