package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/jwt"
)

func newTestService(t *testing.T) UserService {
	t.Helper()
	store := demostore.New()
	return NewUserService(store, jwt.NewJWTService(), 0)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "staff@replate.com",
		Password: demostore.DemoPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "staff-1", res.User.ID)
	assert.Equal(t, entities.RoleStaff, res.User.Role)
	assert.Equal(t, "canteen-1", res.User.CanteenID)
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "Student@Replate.com",
		Password: demostore.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "student-1", res.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "staff@replate.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@replate.com",
		Password: demostore.DemoPassword,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Me(context.Background(), "volunteer-1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Rodriguez", res.Name)
	assert.Equal(t, "ngo-1", res.NGOID)

	_, err = svc.Me(context.Background(), "ghost-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
