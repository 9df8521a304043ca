package interaction

import (
	"context"
	"errors"
)

// Seed is the server-provided initial interaction state for one item,
// plus the display attributes sharing needs.
type Seed struct {
	Liked        bool
	Likes        int
	Saved        bool
	CommentCount int
	Title        string
	Description  string
	URL          string
}

// ActionRow composes the like toggle, save toggle, comment thread and
// share action for a single content item.
type ActionRow struct {
	Item   Item
	Like   *Toggle
	Save   *Toggle
	Thread *Thread
	Share  *Sharer

	client *Client
	input  ShareInput
}

// NewActionRow wires the four interaction widgets for item from its seed
// state. onLike and onSave may be nil; they let sibling views stay in
// sync with toggle state.
func NewActionRow(c *Client, sharer *Sharer, item Item, seed Seed, onLike, onSave ChangeFunc) *ActionRow {
	return &ActionRow{
		Item:   item,
		Like:   NewLikeToggle(c, item, seed.Liked, seed.Likes, onLike),
		Save:   NewSaveToggle(c, item, seed.Saved, onSave),
		Thread: NewThread(c, item, seed.CommentCount),
		Share:  sharer,
		client: c,
		input: ShareInput{
			Item:        item,
			Title:       seed.Title,
			Description: seed.Description,
			URL:         seed.URL,
		},
	}
}

// ShareInput returns the share payload for this item.
func (r *ActionRow) ShareInput() ShareInput { return r.input }

// CanEdit reports whether the acting user owns the content and should see
// edit controls. Real enforcement stays server-side.
func (r *ActionRow) CanEdit(ownerID string) bool {
	return ownerID != "" && ownerID == r.client.user.ID
}

// ErrDeleteNotConfirmed is returned when the confirmation gate refuses a
// recipe deletion; no request is sent in that case.
var ErrDeleteNotConfirmed = errors.New("delete not confirmed")

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// DeleteRecipe deletes the row's recipe after the confirmation gate
// passes. A nil confirm is treated as a refusal, so the gate cannot be
// skipped by omission. Only meaningful for recipe items.
func (r *ActionRow) DeleteRecipe(ctx context.Context, confirm ConfirmFunc) error {
	if confirm == nil || !confirm("Delete this recipe? This cannot be undone.") {
		return ErrDeleteNotConfirmed
	}
	return r.client.DeleteRecipe(ctx, r.Item.ID)
}

// UpdateRecipe applies an owner edit to the row's recipe.
func (r *ActionRow) UpdateRecipe(ctx context.Context, upd RecipeUpdate) error {
	return r.client.UpdateRecipe(ctx, r.Item.ID, upd)
}
