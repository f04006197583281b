package impl

import (
	"context"
	"io"
	"log/slog"

	"sareeta/internal/domain/entity"
	"sareeta/internal/domain/repository"
	"sareeta/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Repository fakes ---

type fakeUserRepo struct {
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	createFn         func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	user.ID = uuid.New()

	return nil
}

type fakeCartRepo struct {
	createFn       func(ctx context.Context, cart *entity.Cart) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	saveFn         func(ctx context.Context, cart *entity.Cart) error
	clearFn        func(ctx context.Context, cartID uuid.UUID) error
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	if f.createFn != nil {
		return f.createFn(ctx, cart)
	}
	cart.ID = uuid.New()

	return nil
}

func (f *fakeCartRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	if f.findByUserIDFn != nil {
		return f.findByUserIDFn(ctx, userID)
	}

	return nil, repository.ErrCartNotFound
}

func (f *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, cart)
	}

	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, cartID uuid.UUID) error {
	if f.clearFn != nil {
		return f.clearFn(ctx, cartID)
	}

	return nil
}

type fakeItemRepo struct {
	findAllFn    func(ctx context.Context) ([]*entity.Item, error)
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	findByNameFn func(ctx context.Context, name string) ([]*entity.Item, error)
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}

	return nil, nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}

	return nil, repository.ErrItemNotFound
}

func (f *fakeItemRepo) FindByName(ctx context.Context, name string) ([]*entity.Item, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}

	return nil, nil
}

type fakeOrderRepo struct {
	createFn       func(ctx context.Context, order *entity.Order) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.createFn != nil {
		return f.createFn(ctx, order)
	}
	order.ID = uuid.New()

	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}

	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if f.findByUserIDFn != nil {
		return f.findByUserIDFn(ctx, userID)
	}

	return nil, nil
}

// --- Transaction fakes ---

// fakeRepoFactory hands the fakes above to code running inside a transaction.
type fakeRepoFactory struct {
	users  *fakeUserRepo
	carts  *fakeCartRepo
	items  *fakeItemRepo
	orders *fakeOrderRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *fakeRepoFactory) CartRepo() repository.CartRepository {
	return f.carts
}

func (f *fakeRepoFactory) ItemRepo() repository.ItemRepository {
	return f.items
}

func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository {
	return f.orders
}

// fakeTxManager runs the transactional function directly against the factory.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// --- Service stubs ---

type stubHasher struct {
	digest      string
	hashErr     error
	checkResult bool
}

func (s *stubHasher) Hash(string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return s.digest, nil
}

func (s *stubHasher) Check(string, string) bool {
	return s.checkResult
}

type stubTokenService struct {
	token       string
	issueErr    error
	claims      *service.Claims
	validateErr error
}

func (s *stubTokenService) Issue(string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return s.token, nil
}

func (s *stubTokenService) Validate(string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}

	return s.claims, nil
}

type stubQRService struct {
	png []byte
	err error
}

func (s *stubQRService) Generate(string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.png, nil
}
