package user

import (
	"context"
	"testing"

	"foodie-journal/domain"
	"foodie-journal/entities"
	"foodie-journal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsernameOrEmail(_ context.Context, usernameOrEmail string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func newTestUserService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, NewStubAuthProvider(), jwt.NewJWTService(), nil)
	return service, repo
}

func TestRegister(t *testing.T) {
	service, repo := newTestUserService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username:        "vince",
		Email:           "vince@carenderia.ph",
		Phone:           "09171234567",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "vince", res.User.Username)

	stored := repo.users[res.User.ID]
	assert.NotNil(t, stored)
	// passwords are stored hashed, never verbatim
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	service, repo := newTestUserService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username:        "vince",
		Email:           "vince@carenderia.ph",
		Password:        "secret123",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.Empty(t, repo.users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()

	req := domain.RegisterRequest{
		Username:        "vince",
		Email:           "vince@carenderia.ph",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	_, err := service.Register(context.Background(), req)
	assert.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginCreatesUnknownIdentity(t *testing.T) {
	service, repo := newTestUserService()

	res, err := service.Login(context.Background(), domain.LoginRequest{
		UsernameOrEmail: "maria@example.com",
		Password:        "anything",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "maria@example.com", res.User.Username)
	assert.Len(t, repo.users, 1)

	// logging in again reuses the record instead of creating another
	again, err := service.Login(context.Background(), domain.LoginRequest{
		UsernameOrEmail: "maria@example.com",
		Password:        "a different password entirely",
	})
	assert.NoError(t, err)
	assert.Equal(t, res.User.ID, again.User.ID)
	assert.Len(t, repo.users, 1)
}

func TestLoginTokenCarriesUserID(t *testing.T) {
	service, _ := newTestUserService()

	res, err := service.Login(context.Background(), domain.LoginRequest{
		UsernameOrEmail: "juan@example.com",
		Password:        "pw",
	})
	assert.NoError(t, err)

	id, role, err := jwt.NewJWTService().GetUserIDByToken(res.Token)
	assert.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestLogoutIsStateless(t *testing.T) {
	service, _ := newTestUserService()
	assert.NoError(t, service.Logout(context.Background(), uuid.NewString()))
}

func TestMe(t *testing.T) {
	service, _ := newTestUserService()

	res, err := service.Login(context.Background(), domain.LoginRequest{
		UsernameOrEmail: "ana@example.com",
		Password:        "pw",
	})
	assert.NoError(t, err)

	me, err := service.Me(context.Background(), res.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Email)

	_, err = service.Me(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUserDataKeepsUnsetFields(t *testing.T) {
	service, _ := newTestUserService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username:        "vince",
		Email:           "vince@carenderia.ph",
		Phone:           "09171234567",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	assert.NoError(t, err)

	updated, err := service.UpdateUserData(context.Background(), domain.UpdateUserRequest{
		Firstname: "Vince",
		Lastname:  "Reyes",
	}, res.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Vince", updated.Firstname)
	assert.Equal(t, "Reyes", updated.Lastname)
	// fields left blank in the request are untouched
	assert.Equal(t, "vince", updated.Username)
	assert.Equal(t, "vince@carenderia.ph", updated.Email)
	assert.Equal(t, "09171234567", updated.Phone)
}

func TestStubAuthProviderAcceptsAnyPassword(t *testing.T) {
	provider := NewStubAuthProvider()
	user := &entities.User{ID: uuid.New(), Username: "anyone"}

	assert.NoError(t, provider.Verify(context.Background(), user, ""))
	assert.NoError(t, provider.Verify(context.Background(), user, "hunter2"))
}
