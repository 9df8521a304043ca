package interaction

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Thread is the comment list for one item. The list is fetched lazily on
// first expansion and cached for the thread's lifetime. Submission is not
// optimistic: a comment appears only once the server confirms it.
type Thread struct {
	client *Client
	item   Item
	log    *logrus.Logger

	mu       sync.Mutex
	loaded   bool
	comments []Comment
	count    int
}

// NewThread builds a collapsed thread seeded with the server-provided
// comment count, without fetching the list.
func NewThread(c *Client, item Item, initialCommentCount int) *Thread {
	return &Thread{
		client: c,
		item:   item,
		log:    c.log,
		count:  initialCommentCount,
	}
}

// Expand loads the comment list on first call. Once a load has succeeded,
// later calls are no-ops. A failed load is logged and returned without
// marking the thread loaded, so the caller can fall back to an empty view
// and a later expand retries.
func (t *Thread) Expand(ctx context.Context) error {
	t.mu.Lock()
	if t.loaded {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	comments, err := t.client.Comments(ctx, t.item)
	if err != nil {
		t.log.WithError(err).Error("failed to load comments")
		return err
	}

	t.mu.Lock()
	if !t.loaded {
		t.comments = comments
		t.count = len(comments)
		t.loaded = true
	}
	t.mu.Unlock()
	return nil
}

// Submit posts a new comment (or reply, when parentCommentID is set).
// Whitespace-only content is a silent no-op with no network call. On
// success the authoritative comment is prepended and the count bumped; on
// failure nothing changes and the error is returned for the caller to
// surface.
func (t *Thread) Submit(ctx context.Context, content, parentCommentID string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	created, err := t.client.CreateComment(ctx, t.item, content, parentCommentID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	if parentCommentID == "" {
		t.comments = append([]Comment{*created}, t.comments...)
	} else {
		for i := range t.comments {
			if t.comments[i].ID == parentCommentID {
				t.comments[i].Replies = append(t.comments[i].Replies, *created)
				break
			}
		}
	}
	t.count++
	t.mu.Unlock()
	return created, nil
}

// Comments returns a snapshot of the loaded list, newest first.
func (t *Thread) Comments() []Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Comment, len(t.comments))
	copy(out, t.comments)
	return out
}

// Count returns the visible comment count. Before the first load this is
// the seeded initial count.
func (t *Thread) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Loaded reports whether the list has been fetched.
func (t *Thread) Loaded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded
}

// Empty is true only after a successful load found zero comments; it
// drives the "be the first to comment" placeholder.
func (t *Thread) Empty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loaded && len(t.comments) == 0
}
