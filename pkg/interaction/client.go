package interaction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ActingUser is the identity on whose behalf mutating requests are sent.
// It is injected by the caller; the core never assumes a particular user.
type ActingUser struct {
	ID string
}

// Comment is a single comment as returned by the community API.
// Replies are at most one level deep.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Comment `json:"replies,omitempty"`
}

// RecipeUpdate carries the editable fields of a recipe. Field names match
// the PATCH wire contract.
type RecipeUpdate struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	IngredientsList  []string `json:"ingredientsList"`
	InstructionsList []string `json:"instructionsList"`
	Servings         int      `json:"servings"`
	PrepTime         string   `json:"prepTime"`
	Photos           []string `json:"photos"`
}

// SuccessStory is one entry in the transformation gallery.
type SuccessStory struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	UserName           string    `json:"userName"`
	PetName            string    `json:"petName"`
	PetType            string    `json:"petType"`
	Title              string    `json:"title"`
	Story              string    `json:"story"`
	TransformationType string    `json:"transformationType"`
	Timeframe          string    `json:"timeframe"`
	BeforePhoto        string    `json:"beforePhoto,omitempty"`
	AfterPhoto         string    `json:"afterPhoto,omitempty"`
	Likes              int       `json:"likes"`
	CreatedAt          time.Time `json:"createdAt"`
}

// StoryFilter narrows and orders the success story gallery. Zero values
// mean "no filter"; SortBy defaults to most recent server-side.
type StoryFilter struct {
	PetType            string
	TransformationType string
	Timeframe          string
	SortBy             string
}

// Client talks to the community REST API on behalf of one acting user.
type Client struct {
	baseURL string
	http    *http.Client
	user    ActingUser
	log     *logrus.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger replaces the client's logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client rooted at baseURL acting as user.
func NewClient(baseURL string, user ActingUser, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		user:    user,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User returns the acting user this client was built with.
func (c *Client) User() ActingUser { return c.user }

// envelope is the API's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

func (c *Client) itemPath(item Item, parts ...string) string {
	p := c.baseURL + "/api/community/" + item.Type.CollectionPath() + "/" + url.PathEscape(item.ID)
	if len(parts) > 0 {
		p += "/" + strings.Join(parts, "/")
	}
	return p
}

// SetLiked persists the liked state for an item.
func (c *Client) SetLiked(ctx context.Context, item Item, liked bool) error {
	return c.post(ctx, c.itemPath(item, "like"), map[string]bool{"liked": liked}, nil)
}

// SetSaved persists the saved state for an item.
func (c *Client) SetSaved(ctx context.Context, item Item, saved bool) error {
	return c.post(ctx, c.itemPath(item, "save"), map[string]bool{"saved": saved}, nil)
}

// Comments fetches the full comment list for an item, newest first.
func (c *Client) Comments(ctx context.Context, item Item) ([]Comment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.itemPath(item, "comments"), nil)
	if err != nil {
		return nil, err
	}
	var comments []Comment
	if err := c.do(req, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment submits a comment (or a reply when parentCommentID is
// non-empty) and returns the authoritative created comment.
func (c *Client) CreateComment(ctx context.Context, item Item, content, parentCommentID string) (*Comment, error) {
	body := map[string]string{"content": content}
	if parentCommentID != "" {
		body["parentCommentId"] = parentCommentID
	}
	var created Comment
	if err := c.post(ctx, c.itemPath(item, "comments"), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRecipe applies an owner-only recipe edit.
func (c *Client) UpdateRecipe(ctx context.Context, recipeID string, upd RecipeUpdate) error {
	payload, err := json.Marshal(upd)
	if err != nil {
		return err
	}
	target := c.itemPath(Item{ID: recipeID, Type: TypeRecipe})
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", c.user.ID)
	return c.do(req, nil)
}

// DeleteRecipe deletes an owner's recipe.
func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	target := c.itemPath(Item{ID: recipeID, Type: TypeRecipe})
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-user-id", c.user.ID)
	return c.do(req, nil)
}

// SuccessStories fetches the gallery, filtered and sorted server-side.
func (c *Client) SuccessStories(ctx context.Context, filter StoryFilter) ([]SuccessStory, error) {
	q := url.Values{}
	q.Set("petType", filter.PetType)
	q.Set("transformationType", filter.TransformationType)
	q.Set("timeframe", filter.Timeframe)
	q.Set("sortBy", filter.SortBy)
	target := c.baseURL + "/api/success-stories?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	var stories []SuccessStory
	if err := c.do(req, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (c *Client) post(ctx context.Context, target string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", c.user.ID)
	return c.do(req, out)
}

// do executes the request and decodes the response envelope. A non-2xx
// status or success:false becomes an error carrying the server message.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return fmt.Errorf("malformed response from %s: %w", req.URL.Path, err)
			}
			return fmt.Errorf("request to %s failed with status %d", req.URL.Path, resp.StatusCode)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success) {
		if env.Error != "" {
			return errors.New(env.Error)
		}
		return fmt.Errorf("request to %s failed with status %d", req.URL.Path, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
		}
	}
	return nil
}
