package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avrillon/roomscout/pkg/domain"
)

// UpdateUserRequest is the payload for the combined profile update. The
// photo travels separately through UploadPicture.
type UpdateUserRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Description string `json:"description"`
}

// Client is the marketplace API client. It holds no session state:
// operations on authenticated endpoints take the bearer token as an
// argument, so the caller decides which identity each request carries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client rooted at baseURL (".../api/airbnb").
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ListListings fetches the unfiltered listing set.
func (c *Client) ListListings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.get(ctx, "/rooms", &listings); err != nil {
		return nil, fmt.Errorf("api.ListListings: %w", err)
	}
	return listings, nil
}

// ListListingsAround fetches listings near the given coordinate.
func (c *Client) ListListingsAround(ctx context.Context, coord domain.Coordinate) ([]domain.Listing, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))

	var listings []domain.Listing
	if err := c.get(ctx, "/rooms/around?"+params.Encode(), &listings); err != nil {
		return nil, fmt.Errorf("api.ListListingsAround: %w", err)
	}
	return listings, nil
}

// GetListing fetches a single listing by id.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	if err := c.get(ctx, "/rooms/"+url.PathEscape(id), &listing); err != nil {
		return nil, fmt.Errorf("api.GetListing: %w", err)
	}
	return &listing, nil
}

// SignUp registers a new account and returns the issued session token.
func (c *Client) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.AuthResponse, error) {
	var auth domain.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/sign_up", req, "", &auth); err != nil {
		return nil, fmt.Errorf("api.SignUp: %w", err)
	}
	return &auth, nil
}

// SignIn authenticates an existing account.
func (c *Client) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.AuthResponse, error) {
	var auth domain.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/user/log_in", req, "", &auth); err != nil {
		return nil, fmt.Errorf("api.SignIn: %w", err)
	}
	return &auth, nil
}

// GetUser fetches a user profile. Requires a bearer token.
func (c *Client) GetUser(ctx context.Context, token, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/user/"+url.PathEscape(id), nil, token, &profile); err != nil {
		return nil, fmt.Errorf("api.GetUser: %w", err)
	}
	return &profile, nil
}

// UpdateUser updates the profile fields of the token's owner.
func (c *Client) UpdateUser(ctx context.Context, token string, req UpdateUserRequest) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "/user/update", req, token, &profile); err != nil {
		return nil, fmt.Errorf("api.UpdateUser: %w", err)
	}
	return &profile, nil
}

// UploadPicture replaces the profile picture of the token's owner with
// the image at photoPath. The request is multipart/form-data with a
// single "photo" field whose filename and part content type derive from
// the local file's extension.
func (c *Client) UploadPicture(ctx context.Context, token, photoPath string) (*domain.UserProfile, error) {
	f, err := os.Open(photoPath)
	if err != nil {
		return nil, fmt.Errorf("api.UploadPicture: open photo: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	ext := strings.TrimPrefix(filepath.Ext(photoPath), ".")
	if ext == "" {
		ext = "jpg"
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="my-pic.%s"`, ext))
	header.Set("Content-Type", "image/"+ext)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("api.UploadPicture: create form part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("api.UploadPicture: read photo: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("api.UploadPicture: finalize form: %w", err)
	}

	var profile domain.UserProfile
	if err := c.doRequest(ctx, http.MethodPut, "/user/upload_picture", &buf, form.FormDataContentType(), token, &profile); err != nil {
		return nil, fmt.Errorf("api.UploadPicture: %w", err)
	}
	return &profile, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, token string, out any) error {
	var reqBody io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.doRequest(ctx, method, path, reqBody, contentType, token, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()[:8]
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("req_id", reqID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	c.logger.Debug("request done",
		zap.String("req_id", reqID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := ""
		if json.Unmarshal(respBody, &payload) == nil {
			if payload.Error != "" {
				msg = payload.Error
			} else {
				msg = payload.Message
			}
		}
		if msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &UnexpectedError{Err: err}
		}
	}
	return nil
}
