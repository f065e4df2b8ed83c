package user

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"Go-Storefront/domain"
	"Go-Storefront/entities"
	"Go-Storefront/pkg/jwt"
	"Go-Storefront/pkg/mapper"

	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID uint) (domain.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckUserExists(ctx, req.Username, email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrEmailTaken
	}

	role, err := s.userRepository.GetRoleByType(ctx, entities.RoleTypeAuthenticated)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrRoleNotFound
		}
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		Username: req.Username,
		Email:    email,
		Password: req.Password,
		RoleID:   role.ID,
		Role:     role,
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	return s.issue(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByIdentifier(ctx, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if !user.CheckPassword(req.Password) {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}
	if user.Blocked {
		return domain.AuthResponse{}, domain.ErrUserBlocked
	}

	return s.issue(user), nil
}

func (s *userService) issue(user *entities.User) domain.AuthResponse {
	role := domain.RoleAuthenticated
	if user.Role != nil {
		role = user.Role.Type
	}
	return domain.AuthResponse{
		JWT:  s.jwtService.GenerateTokenUser(strconv.FormatUint(uint64(user.ID), 10), role),
		User: *mapper.User(user),
	}
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	if user.Blocked {
		return domain.User{}, domain.ErrUserBlocked
	}
	return *mapper.User(user), nil
}
