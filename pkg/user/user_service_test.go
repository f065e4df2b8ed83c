package user

import (
	"context"
	"strconv"
	"testing"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	users  []*entities.User
	roles  map[string]*entities.Role
	nextID uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		roles: map[string]*entities.Role{
			entities.RoleTypeAuthenticated: {ID: 2, Name: "Authenticated", Type: entities.RoleTypeAuthenticated},
		},
		nextID: 1,
	}
}

func (m *mockUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) GetRoleByType(ctx context.Context, roleType string) (*entities.Role, error) {
	if r, ok := m.roles[roleType]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	// run the same hook gorm would
	if err := user.BeforeCreate(nil); err != nil {
		return err
	}
	user.ID = m.nextID
	m.nextID++
	m.users = append(m.users, user)
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	jwtService := jwt.NewJWTServiceWithKey("secret", "TEST")
	svc := NewUserService(newMockUserRepository(), jwtService)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "ana",
		Email:    "Ana@Example.com ",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, domain.RoleAuthenticated, res.User.Role)
	assert.NotEmpty(t, res.JWT)

	id, role, err := jwtService.GetUserIDByToken(res.JWT)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(int(res.User.ID)), id)
	assert.Equal(t, domain.RoleAuthenticated, role)

	login, err := svc.Login(context.Background(), domain.LoginRequest{Identifier: "ana", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Identifier: "ana", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Identifier: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{Username: "ana", Email: "other@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestBlockedUser(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewUserService(repo, jwt.NewJWTServiceWithKey("secret", "TEST"))

	res, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "budi", Email: "budi@example.com", Password: "hunter22"})
	require.NoError(t, err)
	repo.users[0].Blocked = true

	_, err = svc.Login(context.Background(), domain.LoginRequest{Identifier: "budi@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrUserBlocked)

	_, err = svc.Me(context.Background(), res.User.ID)
	assert.ErrorIs(t, err, domain.ErrUserBlocked)

	_, err = svc.Me(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
