package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFromCart_SnapshotsLines(t *testing.T) {
	widget := &Item{ID: uuid.New(), Name: "Round Widget", Price: 299}
	gadget := &Item{ID: uuid.New(), Name: "Square Widget", Price: 199}
	cart := &Cart{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []*CartItem{
			{ItemID: widget.ID, Item: widget, Quantity: 2},
			{ItemID: gadget.ID, Item: gadget, Quantity: 1},
		},
	}

	order := OrderFromCart(cart)

	require.Len(t, order.Items, 2)
	assert.Equal(t, cart.UserID, order.UserID)
	assert.Equal(t, "Round Widget", order.Items[0].Name)
	assert.Equal(t, int64(299), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2*299+199), order.Total)
}

func TestOrderFromCart_SkipsInvalidLines(t *testing.T) {
	widget := &Item{ID: uuid.New(), Name: "Round Widget", Price: 299}
	cart := &Cart{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []*CartItem{
			{ItemID: widget.ID, Item: widget, Quantity: 1},
			{ItemID: uuid.New(), Item: nil, Quantity: 3},
			{ItemID: widget.ID, Item: widget, Quantity: 0},
		},
	}

	order := OrderFromCart(cart)

	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(299), order.Total)
}

func TestCartTotalAndLookup(t *testing.T) {
	widget := &Item{ID: uuid.New(), Price: 100}
	cart := &Cart{
		Items: []*CartItem{{ItemID: widget.ID, Item: widget, Quantity: 3}},
	}

	assert.Equal(t, int64(300), cart.Total())
	assert.False(t, cart.IsEmpty())
	require.NotNil(t, cart.FindLine(widget.ID))
	assert.Nil(t, cart.FindLine(uuid.New()))
	assert.True(t, (&Cart{}).IsEmpty())
}
