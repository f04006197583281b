package impl

import (
	"context"
	"testing"

	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	user    *entity.User
	cart    *entity.Cart
	orders  *fakeOrderRepo
	created *entity.Order
	cleared bool
}

func newOrderFixture() *orderFixture {
	userID := uuid.New()
	item := &entity.Item{ID: uuid.New(), Name: "Round Widget", Price: 299}
	cart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ItemID: item.ID, Item: item, Quantity: 2},
		},
	}

	return &orderFixture{
		user:   &entity.User{ID: userID, Username: "alice"},
		cart:   cart,
		orders: &fakeOrderRepo{},
	}
}

func (fx *orderFixture) service(qr *stubQRService) usecase.OrderUsecase {
	users := &fakeUserRepo{
		findByUsernameFn: func(_ context.Context, username string) (*entity.User, error) {
			if username == fx.user.Username {
				return fx.user, nil
			}

			return nil, errors.New("unexpected username")
		},
	}
	carts := &fakeCartRepo{
		findByUserIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Cart, error) {
			return fx.cart, nil
		},
		clearFn: func(_ context.Context, _ uuid.UUID) error {
			fx.cleared = true

			return nil
		},
	}
	if fx.orders.createFn == nil {
		fx.orders.createFn = func(_ context.Context, order *entity.Order) error {
			order.ID = uuid.New()
			fx.created = order

			return nil
		}
	}

	return NewOrderService(OrderServiceParams{
		TxManager: &fakeTxManager{factory: &fakeRepoFactory{users: users, carts: carts, orders: fx.orders}},
		UserRepo:  users,
		OrderRepo: fx.orders,
		QRService: qr,
		Logger:    newDiscardLogger(),
	})
}

func TestOrderService_SubmitOrder_Success(t *testing.T) {
	fx := newOrderFixture()
	service := fx.service(&stubQRService{})

	order, err := service.SubmitOrder(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, fx.user.ID, order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Round Widget", order.Items[0].Name)
	assert.Equal(t, int64(299), order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(598), order.Total)
	assert.True(t, fx.cleared)
	assert.Same(t, order, fx.created)
}

func TestOrderService_SubmitOrder_EmptyCart(t *testing.T) {
	fx := newOrderFixture()
	fx.cart.Items = nil
	service := fx.service(&stubQRService{})

	order, err := service.SubmitOrder(context.Background(), "alice")

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	assert.False(t, fx.cleared)
	assert.Nil(t, fx.created)
}

func TestOrderService_OrderHistory_NewestFirst(t *testing.T) {
	fx := newOrderFixture()
	newest := &entity.Order{ID: uuid.New(), UserID: fx.user.ID}
	oldest := &entity.Order{ID: uuid.New(), UserID: fx.user.ID}
	fx.orders.findByUserIDFn = func(_ context.Context, _ uuid.UUID) ([]*entity.Order, error) {
		return []*entity.Order{newest, oldest}, nil
	}
	service := fx.service(&stubQRService{})

	orders, err := service.OrderHistory(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newest.ID, orders[0].ID)
}

func TestOrderService_OrderPickupCode_Success(t *testing.T) {
	fx := newOrderFixture()
	order := &entity.Order{ID: uuid.New(), UserID: fx.user.ID}
	fx.orders.findByIDFn = func(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	service := fx.service(&stubQRService{png: []byte("png-bytes")})

	png, err := service.OrderPickupCode(context.Background(), "alice", order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_OrderPickupCode_ForeignOrder(t *testing.T) {
	fx := newOrderFixture()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	fx.orders.findByIDFn = func(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
		return order, nil
	}
	service := fx.service(&stubQRService{png: []byte("png-bytes")})

	png, err := service.OrderPickupCode(context.Background(), "alice", order.ID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_OrderPickupCode_UnknownOrder(t *testing.T) {
	fx := newOrderFixture()
	service := fx.service(&stubQRService{png: []byte("png-bytes")})

	png, err := service.OrderPickupCode(context.Background(), "alice", uuid.New())

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
