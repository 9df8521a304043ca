package interaction

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareContentDerivation(t *testing.T) {
	tests := []struct {
		name     string
		in       ShareInput
		wantURL  string
		wantText string
	}{
		{
			name:     "recipe without explicit url",
			in:       ShareInput{Item: Item{ID: "r1", Type: TypeRecipe}, Title: "Chicken & Tripe Mix"},
			wantURL:  "https://example.com/community/recipes/r1",
			wantText: "Check out this recipe: Chicken & Tripe Mix",
		},
		{
			name:     "post without explicit url",
			in:       ShareInput{Item: Item{ID: "p9", Type: TypePost}, Title: "Week one results"},
			wantURL:  "https://example.com/community/posts/p9",
			wantText: "Check out this post: Week one results",
		},
		{
			name:     "explicit url wins",
			in:       ShareInput{Item: Item{ID: "p9", Type: TypePost}, Title: "Week one results", URL: "https://short.link/x"},
			wantURL:  "https://short.link/x",
			wantText: "Check out this post: Week one results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in.Content("https://example.com")
			assert.Equal(t, tt.wantURL, c.URL)
			assert.Equal(t, tt.wantText, c.Text)
		})
	}
}

func TestIntentURLs(t *testing.T) {
	in := ShareInput{Item: Item{ID: "r1", Type: TypeRecipe}, Title: "Raw 101", Description: "A starter guide"}
	c := in.Content("https://example.com")

	tweet, err := url.Parse(TweetURL(c))
	require.NoError(t, err)
	assert.Equal(t, "twitter.com", tweet.Host)
	assert.Equal(t, c.Text, tweet.Query().Get("text"))
	assert.Equal(t, c.URL, tweet.Query().Get("url"))

	fb, err := url.Parse(FacebookShareURL(c))
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", fb.Host)
	assert.Equal(t, c.URL, fb.Query().Get("u"))

	mail, err := url.Parse(MailtoURL(in, c))
	require.NoError(t, err)
	assert.Equal(t, "mailto", mail.Scheme)
	q := mail.Query()
	assert.Equal(t, "Raw 101", q.Get("subject"))
	assert.Equal(t, "A starter guide\n\n"+c.URL, q.Get("body"))
}

type stubNative struct {
	calls int
	err   error
	url   string
}

func (s *stubNative) Share(ctx context.Context, title, text, u string) error {
	s.calls++
	s.url = u
	return s.err
}

type stubClipboard struct {
	written []string
	err     error
}

func (s *stubClipboard) WriteText(ctx context.Context, text string) error {
	s.written = append(s.written, text)
	return s.err
}

func TestShareUsesNativeWhenAvailable(t *testing.T) {
	native := &stubNative{}
	s := NewSharer("https://example.com", native, nil)

	handled := s.Share(context.Background(), ShareInput{Item: Item{ID: "p1", Type: TypePost}, Title: "t"})

	assert.True(t, handled)
	assert.Equal(t, 1, native.calls)
	assert.Equal(t, "https://example.com/community/posts/p1", native.url)
}

func TestShareSwallowsNativeFailure(t *testing.T) {
	native := &stubNative{err: errors.New("user cancelled")}
	s := NewSharer("https://example.com", native, nil)

	handled := s.Share(context.Background(), ShareInput{Item: Item{ID: "p1", Type: TypePost}, Title: "t"})

	// Cancellation is non-fatal and still counts as handled natively.
	assert.True(t, handled)
}

func TestShareFallsBackWithoutNative(t *testing.T) {
	s := NewSharer("https://example.com", nil, nil)
	handled := s.Share(context.Background(), ShareInput{Item: Item{ID: "p1", Type: TypePost}, Title: "t"})
	assert.False(t, handled)
}

func TestCopyLinkConfirmationWindow(t *testing.T) {
	clip := &stubClipboard{}
	s := NewSharer("https://example.com", nil, clip)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	in := ShareInput{Item: Item{ID: "r1", Type: TypeRecipe}, Title: "t"}
	s.CopyLink(context.Background(), in)

	require.Equal(t, []string{"https://example.com/community/recipes/r1"}, clip.written)
	assert.True(t, s.Copied())

	now = now.Add(1900 * time.Millisecond)
	assert.True(t, s.Copied())

	now = now.Add(200 * time.Millisecond)
	assert.False(t, s.Copied(), "confirmation reverts after two seconds")
}

func TestCopyLinkFailureIsSilent(t *testing.T) {
	clip := &stubClipboard{err: errors.New("denied")}
	s := NewSharer("https://example.com", nil, clip)

	s.CopyLink(context.Background(), ShareInput{Item: Item{ID: "r1", Type: TypeRecipe}})

	assert.False(t, s.Copied())
}
