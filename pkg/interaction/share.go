package interaction

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ShareInput describes the content being shared. URL overrides the derived
// canonical link when set.
type ShareInput struct {
	Item        Item
	Title       string
	Description string
	URL         string
}

// ShareContent is the resolved link and text handed to share targets.
type ShareContent struct {
	URL  string
	Text string
}

// Content resolves the canonical share URL and text for the input.
// Without an explicit URL the link is {origin}/community/{type}s/{id}.
func (in ShareInput) Content(origin string) ShareContent {
	link := in.URL
	if link == "" {
		link = fmt.Sprintf("%s/community/%s/%s", origin, in.Item.Type.CollectionPath(), in.Item.ID)
	}
	return ShareContent{
		URL:  link,
		Text: fmt.Sprintf("Check out this %s: %s", in.Item.Type, in.Title),
	}
}

// TweetURL builds the Twitter/X intent link for the content.
func TweetURL(c ShareContent) string {
	q := url.Values{}
	q.Set("text", c.Text)
	q.Set("url", c.URL)
	return "https://twitter.com/intent/tweet?" + q.Encode()
}

// FacebookShareURL builds the Facebook sharer link for the content.
func FacebookShareURL(c ShareContent) string {
	q := url.Values{}
	q.Set("u", c.URL)
	return "https://www.facebook.com/sharer/sharer.php?" + q.Encode()
}

// MailtoURL builds a mailto link with subject=title and the description
// plus link as the body.
func MailtoURL(in ShareInput, c ShareContent) string {
	body := c.URL
	if in.Description != "" {
		body = in.Description + "\n\n" + c.URL
	}
	q := url.Values{}
	q.Set("subject", in.Title)
	q.Set("body", body)
	return "mailto:?" + q.Encode()
}

// NativeSharer is a platform share sheet, when the runtime provides one.
type NativeSharer interface {
	Share(ctx context.Context, title, text, url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

const copiedConfirmation = 2 * time.Second

// Sharer dispatches shares to the native sheet when available and exposes
// the deterministic fallback targets otherwise. It never talks to the
// community API.
type Sharer struct {
	origin string
	native NativeSharer
	clip   Clipboard
	log    *logrus.Logger

	now func() time.Time

	mu          sync.Mutex
	copiedUntil time.Time
}

// NewSharer builds a Sharer for the given site origin. native and clip may
// be nil when the runtime lacks them.
func NewSharer(origin string, native NativeSharer, clip Clipboard) *Sharer {
	return &Sharer{
		origin: origin,
		native: native,
		clip:   clip,
		log:    logrus.StandardLogger(),
		now:    time.Now,
	}
}

// Share invokes the native share sheet when available and reports whether
// it handled the share. A cancelled or failed native share is swallowed;
// false means the caller should present the fallback targets.
func (s *Sharer) Share(ctx context.Context, in ShareInput) bool {
	if s.native == nil {
		return false
	}
	c := in.Content(s.origin)
	text := in.Description
	if text == "" {
		text = c.Text
	}
	if err := s.native.Share(ctx, in.Title, text, c.URL); err != nil {
		// User cancellation and share-sheet failures are both non-fatal.
		s.log.WithError(err).Debug("native share dismissed")
	}
	return true
}

// Content resolves the share content against the sharer's origin.
func (s *Sharer) Content(in ShareInput) ShareContent {
	return in.Content(s.origin)
}

// CopyLink copies the canonical link to the clipboard and arms the
// "copied" confirmation for two seconds. Failures are logged only.
func (s *Sharer) CopyLink(ctx context.Context, in ShareInput) {
	if s.clip == nil {
		return
	}
	c := in.Content(s.origin)
	if err := s.clip.WriteText(ctx, c.URL); err != nil {
		s.log.WithError(err).Warn("failed to copy share link")
		return
	}
	s.mu.Lock()
	s.copiedUntil = s.now().Add(copiedConfirmation)
	s.mu.Unlock()
}

// Copied reports whether the copy confirmation is still showing.
func (s *Sharer) Copied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.copiedUntil)
}
