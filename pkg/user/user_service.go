package user

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"replate-backend/domain"
	"replate-backend/entities"
	"replate-backend/pkg/demostore"
	"replate-backend/pkg/jwt"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		store      *demostore.Store
		jwtService jwt.JWTService
		demoDelay  time.Duration
	}
)

// NewUserService builds the demo session service. demoDelay mimics a remote
// authentication round trip; pass 0 to disable.
func NewUserService(store *demostore.Store, jwtService jwt.JWTService, demoDelay time.Duration) UserService {
	return &userService{
		store:      store,
		jwtService: jwtService,
		demoDelay:  demoDelay,
	}
}

func userResponse(u entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CanteenID: u.CanteenID,
		NGOID:     u.NGOID,
	}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if s.demoDelay > 0 {
		select {
		case <-ctx.Done():
			return domain.LoginResponse{}, ctx.Err()
		case <-time.After(s.demoDelay):
		}
	}

	u, err := s.store.UserByEmail(strings.ToLower(req.Email))
	if err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(u.ID, string(u.Role))
	return domain.LoginResponse{
		Token: token,
		User:  userResponse(u),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	u, err := s.store.UserByID(userID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return userResponse(u), nil
}
