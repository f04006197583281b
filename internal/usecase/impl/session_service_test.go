package impl

import (
	"context"
	"testing"

	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/domain/service"
	"sareeta/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(users *fakeUserRepo, hasher *stubHasher, tokens *stubTokenService) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		UserRepo:     users,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})
}

func TestSessionService_Login_Success(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "digest"}
	users := &fakeUserRepo{
		findByUsernameFn: func(_ context.Context, _ string) (*entity.User, error) {
			return user, nil
		},
	}
	service := newSessionService(users, &stubHasher{checkResult: true}, &stubTokenService{token: "signed-token"})

	output, err := service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestSessionService_Login_UnknownUser(t *testing.T) {
	service := newSessionService(&fakeUserRepo{}, &stubHasher{checkResult: true}, &stubTokenService{token: "signed-token"})

	output, err := service.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "hunter22"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "digest"}
	users := &fakeUserRepo{
		findByUsernameFn: func(_ context.Context, _ string) (*entity.User, error) {
			return user, nil
		},
	}
	service := newSessionService(users, &stubHasher{checkResult: false}, &stubTokenService{token: "signed-token"})

	output, err := service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Both failure modes must surface the same domain error so callers cannot
// probe which usernames exist.
func TestSessionService_Login_FailuresIndistinguishable(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "digest"}
	knownUsers := &fakeUserRepo{
		findByUsernameFn: func(_ context.Context, _ string) (*entity.User, error) {
			return user, nil
		},
	}

	wrongPassword := newSessionService(knownUsers, &stubHasher{checkResult: false}, &stubTokenService{})
	unknownUser := newSessionService(&fakeUserRepo{}, &stubHasher{checkResult: true}, &stubTokenService{})

	_, errWrongPassword := wrongPassword.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrong"})
	_, errUnknownUser := unknownUser.Login(context.Background(), &usecase.LoginInput{Username: "ghost", Password: "hunter22"})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownUser)
	assert.True(t, errors.Is(errWrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errUnknownUser, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_VerifyToken_Success(t *testing.T) {
	claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}
	service := newSessionService(&fakeUserRepo{}, &stubHasher{}, &stubTokenService{claims: claims})

	username, err := service.VerifyToken(context.Background(), "signed-token")

	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestSessionService_VerifyToken_Invalid(t *testing.T) {
	service := newSessionService(&fakeUserRepo{}, &stubHasher{}, &stubTokenService{validateErr: errors.New("bad signature")})

	username, err := service.VerifyToken(context.Background(), "tampered")

	require.Error(t, err)
	assert.Empty(t, username)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
