package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessPredicates(t *testing.T) {
	b := &Booking{ID: 1, ItemID: 10, ItemOwnerID: 1, BookerID: 2}

	t.Run("only the item owner may decide", func(t *testing.T) {
		assert.True(t, CanDecide(1, b))
		assert.False(t, CanDecide(2, b))
		assert.False(t, CanDecide(3, b))
	})

	t.Run("owner and booker may view", func(t *testing.T) {
		assert.True(t, CanView(1, b))
		assert.True(t, CanView(2, b))
		assert.False(t, CanView(3, b))
	})

	t.Run("commenting requires a past booking of the item", func(t *testing.T) {
		past := []*Booking{
			{ItemID: 20, BookerID: 2},
			{ItemID: 10, BookerID: 2},
		}
		assert.True(t, CanComment(2, 10, past))
		assert.False(t, CanComment(2, 30, past))
		assert.False(t, CanComment(2, 10, nil))
	})
}
