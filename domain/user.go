package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister             = "account registered successfully"
	MessageSuccessLogin                = "login success"
	MessageSuccessLogout               = "logout success"
	MessageSuccessGetProfile           = "profile retrieved successfully"
	MessageSuccessUpdateProfile        = "profile updated successfully"
	MessageSuccessUploadProfilePicture = "profile picture uploaded successfully"
	MessageSuccessForgotPassword       = "password reset email sent"
	MessageSuccessResetPassword        = "password reset successfully"

	MessageFailedRegister             = "failed to register account"
	MessageFailedLogin                = "login failed. please try again"
	MessageFailedLogout               = "failed to logout"
	MessageFailedGetProfile           = "failed to retrieve profile"
	MessageFailedUpdateProfile        = "failed to update profile"
	MessageFailedUploadProfilePicture = "failed to upload profile picture"
	MessageFailedForgotPassword       = "failed to send password reset email"
	MessageFailedResetPassword        = "failed to reset password"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrCredentialsMalformed = errors.New("credentials malformed")
)

type (
	RegisterRequest struct {
		Username        string `json:"username" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone" validate:"required,phone_ph"`
		Password        string `json:"password" validate:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	}

	LoginRequest struct {
		UsernameOrEmail string `json:"username_or_email" validate:"required"`
		Password        string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Firstname string `json:"firstname" validate:"omitempty"`
		Lastname  string `json:"lastname" validate:"omitempty"`
		Username  string `json:"username" validate:"omitempty"`
		Email     string `json:"email" validate:"omitempty,email"`
		Phone     string `json:"phone" validate:"omitempty,phone_ph"`
	}

	UploadProfilePictureRequest struct {
		ProfilePicture *multipart.FileHeader `json:"profile_picture" form:"profile_picture" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token           string `json:"token" validate:"required"`
		Password        string `json:"password" validate:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	}

	UserResponse struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Firstname  string `json:"firstname,omitempty"`
		Lastname   string `json:"lastname,omitempty"`
		ProfilePic string `json:"profile_pic,omitempty"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
