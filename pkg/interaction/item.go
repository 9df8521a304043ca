// Package interaction implements the client-side social interaction core:
// optimistic like/save toggles, share link construction, and lazy-loading
// comment threads, all speaking the community REST API.
package interaction

import "fmt"

// ItemType identifies the kind of content an interaction targets.
type ItemType int

const (
	TypePost ItemType = iota
	TypeRecipe
	TypeComment
)

// String returns the singular name used in share text ("post", "recipe", "comment").
func (t ItemType) String() string {
	switch t {
	case TypePost:
		return "post"
	case TypeRecipe:
		return "recipe"
	case TypeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// CollectionPath returns the URL path segment for the type's collection.
// Pluralization lives here and nowhere else, so a typo cannot slip into
// an endpoint path at a call site.
func (t ItemType) CollectionPath() string {
	switch t {
	case TypePost:
		return "posts"
	case TypeRecipe:
		return "recipes"
	case TypeComment:
		return "comments"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	return t == TypePost || t == TypeRecipe || t == TypeComment
}

// Item identifies a likeable/saveable/commentable piece of content.
type Item struct {
	ID   string
	Type ItemType
}

func (i Item) String() string {
	return fmt.Sprintf("%s/%s", i.Type.CollectionPath(), i.ID)
}
