package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cheonTH/singlelife/internal/models"
)

// TokenSource yields the current bearer token, if any. The session store
// implements this.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the board/user REST backend
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// NewClient creates a new backend client
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// errorBody is the backend's JSON error envelope
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request against the backend. When auth is set the bearer
// token is attached; a missing token aborts the call with ErrAuthRequired
// before anything is sent.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token, ok := c.tokens.Token()
		if !ok {
			return ErrAuthRequired
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend call failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", eb.Error).
			Msg("Backend returned error")
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrAuthRequired
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrConflict
		default:
			return &StatusError{Code: resp.StatusCode, Message: eb.Error}
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListPosts fetches the full post collection
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/board", false, nil, &posts); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost fetches one post with viewer-specific like/save flags
func (c *Client) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/board/%d", id), true, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePostRequest is the payload for creating or editing a post
type CreatePostRequest struct {
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Category    models.Category `json:"category"`
	UserID      string          `json:"userId"`
	NickName    string          `json:"nickName"`
	WritingTime time.Time       `json:"writingTime"`
	ImageURLs   []string        `json:"imageUrls"`
}

// CreatePost creates a new post
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/api/board", true, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost edits an existing post
func (c *Client) UpdatePost(ctx context.Context, id int64, req CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/board/%d", id), true, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/board/%d", id), true, nil, nil)
}

// ToggleLike flips the viewer's like on a post. The response is the source
// of truth for the new count and flag.
func (c *Client) ToggleLike(ctx context.Context, id int64) (*models.LikeResponse, error) {
	var res models.LikeResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/board/%d/like", id), true, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ToggleSave flips the viewer's bookmark on a post
func (c *Client) ToggleSave(ctx context.Context, id int64) (*models.SaveResponse, error) {
	var res models.SaveResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/board/%d/save", id), true, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListComments fetches the flat comment list for a post
func (c *Client) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/comments/%d", postID), false, nil, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CreateCommentRequest is the payload for posting a comment or reply
type CreateCommentRequest struct {
	BoardID  int64  `json:"boardId"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parentId"`
}

// CreateComment posts a new comment or reply
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, "/api/comments", true, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment edits the content of an existing comment
func (c *Client) UpdateComment(ctx context.Context, id int64, content string) error {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/comments/%d", id), true, body, nil)
}

// DeleteComment removes a comment
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", id), true, nil, nil)
}

// query builds an escaped query string from pairs
func query(pairs ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return "?" + v.Encode()
}
