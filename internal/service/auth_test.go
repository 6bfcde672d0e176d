package service

import (
	"context"
	"testing"
	"time"

	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*mocks.MockUserRepo, *AuthService) {
	t.Helper()
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, "test-secret", time.Hour, newTestLogger(t))
	return userRepo, svc
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo, svc := newAuthService(t)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "Awa.Diop@Example.SN",
		Password:  "motdepasse",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, "awa.diop@example.sn", user.Email)
	assert.NotEqual(t, "motdepasse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("motdepasse")))
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	_, svc := newAuthService(t)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.sn",
		Password:  "court",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	userRepo, svc := newAuthService(t)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		FirstName: "Awa",
		LastName:  "Diop",
		Email:     "awa@example.sn",
		Password:  "motdepasse",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "u1",
		Email:        "awa@example.sn",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	userRepo.EXPECT().GetByEmail(mock.Anything, "awa@example.sn").Return(stored, nil)

	token, user, err := svc.Login(context.Background(), " Awa@Example.SN ", "motdepasse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.ID)

	viewer, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", viewer.UserID)
	assert.Equal(t, domain.RoleAdmin, viewer.Role)
	assert.True(t, viewer.IsAdmin())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().GetByEmail(mock.Anything, "awa@example.sn").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), "awa@example.sn", "mauvais")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo, svc := newAuthService(t)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.sn").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.sn", "motdepasse")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	_, svc := newAuthService(t)

	_, err := svc.ParseToken("not-a-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	issuer := NewAuthService(userRepo, "secret-a", time.Hour, newTestLogger(t))
	verifier := NewAuthService(userRepo, "secret-b", time.Hour, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.EXPECT().GetByEmail(mock.Anything, "awa@example.sn").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	token, _, err := issuer.Login(context.Background(), "awa@example.sn", "motdepasse")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
