package service

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"scribverse-backend/internal/domains/user"
	"scribverse-backend/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo user.Repository) (user.Service, *jwt.Manager) {
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, manager), manager
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc, manager := newTestService(repo)

	repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)

	var created *user.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*user.User)
		}).
		Return(nil)

	res, err := svc.Signup(context.Background(), user.SignupRequest{
		Email:    "alice@example.com",
		Password: "pw123",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Password must be stored hashed, never verbatim.
	assert.NotEqual(t, "pw123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw123")))

	claims, err := manager.Verify(res.JWT)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

	_, err := svc.Signup(context.Background(), user.SignupRequest{
		Email:    "alice@example.com",
		Password: "pw123",
	})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), user.SignupRequest{
		Email:    "not-an-email",
		Password: "pw123",
	})
	require.Error(t, err)

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&user.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.Signin(context.Background(), user.SigninRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestSigninHidesUnknownEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, user.ErrUserNotFound)

	_, err := svc.Signin(context.Background(), user.SigninRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestSigninSurfacesRepositoryFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	dbErr := errors.New("connection refused")
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, dbErr)

	_, err := svc.Signin(context.Background(), user.SigninRequest{
		Email:    "alice@example.com",
		Password: "pw123",
	})
	require.Error(t, err)

	// A database outage is a 500, not a credentials mismatch.
	assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
	assert.ErrorIs(t, err, dbErr)
}

func TestUpdateProfileRequiresFields(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), user.UpdateProfileRequest{})
	assert.ErrorIs(t, err, user.ErrNoFieldsToUpdate)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newTestService(repo)

	id := uuid.New()
	oldName := "Old Name"
	oldBio := "old bio"
	repo.On("FindByID", mock.Anything, id).Return(&user.User{
		ID:    id,
		Email: "alice@example.com",
		Name:  &oldName,
		Bio:   &oldBio,
	}, nil)
	repo.On("UpdateProfile", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	newBio := "new bio"
	dto, err := svc.UpdateProfile(context.Background(), id, user.UpdateProfileRequest{
		Bio: &newBio,
	})
	require.NoError(t, err)

	assert.Equal(t, "new bio", *dto.Bio)
	assert.Equal(t, "Old Name", *dto.Name)
}
