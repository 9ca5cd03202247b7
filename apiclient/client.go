// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/your-pick/models"
	"github.com/danielhkuo/your-pick/normalize"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 4 << 20

var (
	ErrNotFound = errors.New("not found")
	ErrRejected = errors.New("request rejected")
)

// APIError is returned for any non-2xx response
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client talks to the voting API rooted at <base>/api/v1
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}

// ListPrograms handles GET /programs
func (c *Client) ListPrograms(ctx context.Context) ([]models.Program, error) {
	data, err := c.do(ctx, http.MethodGet, "/programs", nil)
	if err != nil {
		return nil, err
	}
	return normalize.Programs(data)
}

// GetProgram handles GET /programs/{id}
func (c *Client) GetProgram(ctx context.Context, programID int) (models.Program, error) {
	data, err := c.do(ctx, http.MethodGet, "/programs/"+strconv.Itoa(programID), nil)
	if err != nil {
		return models.Program{}, err
	}
	return normalize.Program(data)
}

// ListTopics handles GET /topics?program_id={id}
func (c *Client) ListTopics(ctx context.Context, programID int) ([]models.Topic, error) {
	q := url.Values{"program_id": {strconv.Itoa(programID)}}
	data, err := c.do(ctx, http.MethodGet, "/topics?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return normalize.Topics(data)
}

// GetTopic handles GET /topics/{id}
func (c *Client) GetTopic(ctx context.Context, topicID int) (models.Topic, error) {
	data, err := c.do(ctx, http.MethodGet, "/topics/"+strconv.Itoa(topicID), nil)
	if err != nil {
		return models.Topic{}, err
	}
	return normalize.Topic(data)
}

// SubmitVote handles POST /topics/{id}/votes
func (c *Client) SubmitVote(ctx context.Context, topicID, choice int) (models.VoteReceipt, error) {
	path := "/topics/" + strconv.Itoa(topicID) + "/votes"
	data, err := c.do(ctx, http.MethodPost, path, models.VoteRequest{VoteChoice: choice})
	if err != nil {
		return models.VoteReceipt{}, err
	}
	return normalize.VoteReceipt(data)
}

// GetResults handles GET /topics/{id}/results
func (c *Client) GetResults(ctx context.Context, topicID int) (models.ResultAggregate, error) {
	data, err := c.do(ctx, http.MethodGet, "/topics/"+strconv.Itoa(topicID)+"/results", nil)
	if err != nil {
		return models.ResultAggregate{}, err
	}
	return normalize.Results(data)
}

// ListComments handles GET /topics/{id}/comments
func (c *Client) ListComments(ctx context.Context, topicID int) ([]models.Comment, error) {
	data, err := c.do(ctx, http.MethodGet, "/topics/"+strconv.Itoa(topicID)+"/comments", nil)
	if err != nil {
		return nil, err
	}
	return normalize.Comments(data)
}

// CreateComment handles POST /votes/{vote_id}/comments. Any 2xx reply means
// the comment exists; only an explicit success:false is an error. The returned
// comment is whatever the reply carried, possibly empty.
func (c *Client) CreateComment(ctx context.Context, voteID int, req models.CreateCommentRequest) (models.Comment, error) {
	path := "/votes/" + strconv.Itoa(voteID) + "/comments"
	data, err := c.do(ctx, http.MethodPost, path, req)
	if err != nil {
		return models.Comment{}, err
	}
	if rejected(data) {
		return models.Comment{}, fmt.Errorf("POST %s: %w", path, ErrRejected)
	}

	comment, _ := normalize.Comment(data)
	return comment, nil
}

// DeleteComment handles DELETE /comments/{id}. The password is sent as-is;
// the API decides whether it matches.
func (c *Client) DeleteComment(ctx context.Context, commentID int, password string) error {
	path := "/comments/" + strconv.Itoa(commentID)
	data, err := c.do(ctx, http.MethodDelete, path, models.DeleteCommentRequest{Password: password})
	if err != nil {
		return err
	}
	if rejected(data) {
		return fmt.Errorf("DELETE %s: %w", path, ErrRejected)
	}
	return nil
}

// rejected reports whether a 2xx body is an envelope carrying success:false
func rejected(data []byte) bool {
	var resp struct {
		Success *bool `json:"success"`
	}
	if len(bytes.TrimSpace(data)) == 0 || json.Unmarshal(data, &resp) != nil {
		return false
	}
	return resp.Success != nil && !*resp.Success
}
