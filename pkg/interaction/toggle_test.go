package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggleSuccess(t *testing.T) {
	var persisted []bool
	tog := NewToggle(false, 5, true, func(ctx context.Context, v bool) error {
		persisted = append(persisted, v)
		return nil
	}, nil)

	tog.Toggle(context.Background())

	liked, likes := tog.State()
	assert.True(t, liked)
	assert.Equal(t, 6, likes)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0])
	assert.False(t, tog.Pending())
}

func TestLikeToggleRoundTrip(t *testing.T) {
	tog := NewToggle(false, 10, true, func(ctx context.Context, v bool) error {
		return nil
	}, nil)

	tog.Toggle(context.Background())
	tog.Toggle(context.Background())

	liked, likes := tog.State()
	assert.False(t, liked)
	assert.Equal(t, 10, likes)
}

func TestLikeToggleRollbackOnFailure(t *testing.T) {
	tog := NewToggle(false, 10, true, func(ctx context.Context, v bool) error {
		return errors.New("network down")
	}, nil)

	tog.Toggle(context.Background())

	liked, likes := tog.State()
	assert.False(t, liked, "value must revert to the captured prior")
	assert.Equal(t, 10, likes, "count must revert to exactly the captured prior")
}

func TestToggleNotifiesBeforePersist(t *testing.T) {
	var order []string
	var observed []bool
	tog := NewToggle(false, 5, true, func(ctx context.Context, v bool) error {
		order = append(order, "persist")
		return nil
	}, func(v bool, count int) {
		order = append(order, "change")
		observed = append(observed, v)
	})

	tog.Toggle(context.Background())

	require.Equal(t, []string{"change", "persist"}, order)
	assert.Equal(t, []bool{true}, observed)
}

func TestToggleNotifiesRevertedStateOnFailure(t *testing.T) {
	var values []bool
	var counts []int
	tog := NewToggle(false, 5, true, func(ctx context.Context, v bool) error {
		return errors.New("boom")
	}, func(v bool, count int) {
		values = append(values, v)
		counts = append(counts, count)
	})

	tog.Toggle(context.Background())

	// Optimistic flip first, then the rollback notification.
	require.Equal(t, []bool{true, false}, values)
	require.Equal(t, []int{6, 5}, counts)
}

func TestSaveToggleIsBinary(t *testing.T) {
	tog := NewToggle(false, 0, false, func(ctx context.Context, v bool) error {
		return nil
	}, nil)

	tog.Toggle(context.Background())
	saved, count := tog.State()
	assert.True(t, saved)
	assert.Equal(t, 0, count, "save carries no counter")

	tog.Toggle(context.Background())
	saved, count = tog.State()
	assert.False(t, saved)
	assert.Equal(t, 0, count)
}

func TestSaveToggleRollback(t *testing.T) {
	tog := NewToggle(true, 0, false, func(ctx context.Context, v bool) error {
		return errors.New("network down")
	}, nil)

	tog.Toggle(context.Background())

	saved, _ := tog.State()
	assert.True(t, saved)
}

func TestToggleEachCallNegatesCurrentValue(t *testing.T) {
	var persisted []bool
	tog := NewToggle(false, 0, true, func(ctx context.Context, v bool) error {
		persisted = append(persisted, v)
		return nil
	}, nil)

	tog.Toggle(context.Background())
	tog.Toggle(context.Background())
	tog.Toggle(context.Background())

	assert.Equal(t, []bool{true, false, true}, persisted)
}
