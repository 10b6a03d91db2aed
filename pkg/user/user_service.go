package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodie-journal/domain"
	"foodie-journal/entities"
	"foodie-journal/internal/utils"
	"foodie-journal/internal/utils/mailing"
	"foodie-journal/internal/utils/storage"
	"foodie-journal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, userID string) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUserData(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		UploadProfilePicture(ctx context.Context, req domain.UploadProfilePictureRequest, userID string) (domain.UserResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		authProvider   AuthProvider
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, authProvider AuthProvider, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		authProvider:   authProvider,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error) {
	if req.Password != req.ConfirmPassword {
		return domain.LoginResponse{}, domain.ErrPasswordMismatch
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.LoginResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Login starts a session for any well-formed credentials. An unknown identity
// becomes a fresh user record on the spot, the same way the app treats every
// login as a new-or-returning session; the AuthProvider decides whether the
// password is ever checked.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, err
		}
		user = &entities.User{
			ID:       uuid.New(),
			Username: req.UsernameOrEmail,
			Email:    req.UsernameOrEmail,
			Role:     domain.RoleUser,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	}

	if err := s.authProvider.Verify(ctx, user, req.Password); err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Logout has nothing to revoke server-side: sessions are bearer tokens the
// client discards. Reviews submitted during the session are not touched.
func (s *userService) Logout(_ context.Context, _ string) error {
	return nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUserData(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Firstname != "" {
		user.Firstname = req.Firstname
	}
	if req.Lastname != "" {
		user.Lastname = req.Lastname
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, req domain.UploadProfilePictureRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	fileName := fmt.Sprintf("profile-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	if user.ProfilePic != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.ProfilePic)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.ProfilePicture, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.ProfilePicture, "profiles", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.ProfilePicture, "profiles", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.UserResponse{}, uploadErr
	}

	user.ProfilePic = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, 15*time.Minute)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Tap the link below to reset your Foodie Journal password. The link expires in 15 minutes.</p><p><a href=%q>Reset password</a></p>",
		user.Username, resetLink,
	)
	return mailing.SendMail(user.Email, "Reset your Foodie Journal password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	return s.userRepository.UpdateUser(ctx, user)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Phone:      user.Phone,
		Firstname:  user.Firstname,
		Lastname:   user.Lastname,
		ProfilePic: user.ProfilePic,
	}
}
