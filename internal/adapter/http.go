package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-keeper/models"
)

const defaultTimeout = 15 * time.Second

// tokenCookieName is the cookie the server reads the credential from.
const tokenCookieName = "token"

// ClientConfig configures [NewHTTPUserAPI].
type ClientConfig struct {
	// Address is the server address, with or without a scheme
	// ("localhost:8080", "https://users.example.com").
	Address string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpUserAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPUserAPI constructs an HTTP implementation of [UserAPI].
// Returns an error if cfg.Address is empty or is not a valid URL.
func NewHTTPUserAPI(cfg ClientConfig) (UserAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpUserAPI{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpUserAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpUserAPI) ListUsers(ctx context.Context) ([]models.UserView, error) {
	var result models.UsersResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Users, nil
}

func (h *httpUserAPI) GetUser(ctx context.Context, id int64) (models.UserView, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get("/users/{id}")
	if err != nil {
		return models.UserView{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return result.User, nil
}

func (h *httpUserAPI) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.UserView, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&result).
		Patch("/users/{id}")
	if err != nil {
		return models.UserView{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}

	return result.User, nil
}

func (h *httpUserAPI) DeleteUser(ctx context.Context, id int64) (models.DeletedUserView, error) {
	var result models.DeletedUserResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Delete("/users/{id}")
	if err != nil {
		return models.DeletedUserView{}, fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeletedUserView{}, err
	}

	return result.User, nil
}

func (h *httpUserAPI) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return result, nil
}

func (h *httpUserAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	}
	return req
}
