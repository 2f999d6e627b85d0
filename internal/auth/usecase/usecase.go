package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/auth"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type authUC struct {
	cfg      *config.Config
	authRepo auth.Repository
	logger   logger.Logger
}

func NewAuthUseCase(cfg *config.Config, authRepo auth.Repository, log logger.Logger) auth.UseCase {
	return &authUC{
		cfg:      cfg,
		authRepo: authRepo,
		logger:   log,
	}
}

func (u *authUC) Register(ctx context.Context, user *models.User) (*models.UserWithToken, error) {
	if err := utils.ValidateStruct(ctx, user); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	existUser, err := u.authRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		u.logger.Errorf("Register - FindByEmail error: %v", err)
		return nil, fmt.Errorf("failed to check existing user: %v", err)
	}
	if existUser != nil {
		return nil, fmt.Errorf("user with email %s already exists", user.Email)
	}

	if err = user.PrepareCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare user for create: %v", err)
	}
	createdUser, err := u.authRepo.Register(ctx, user)
	if err != nil {
		u.logger.Errorf("Register - repo error: %v", err)
		return nil, fmt.Errorf("failed to create user: %v", err)
	}
	createdUser.SanitizePassword()

	token, err := utils.GenerateJWTToken(createdUser, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate jwt token: %v", err)
	}
	return &models.UserWithToken{
		User:  createdUser,
		Token: token,
	}, nil
}

func (u *authUC) Login(ctx context.Context, input *models.LoginInput) (*models.UserWithToken, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	existUser, err := u.authRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid credentials")
		}
		u.logger.Errorf("Login - FindByEmail error: %v", err)
		return nil, fmt.Errorf("failed to find user: %v", err)
	}
	if err = existUser.ComparePassword(input.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	existUser.SanitizePassword()
	token, err := utils.GenerateJWTToken(existUser, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate jwt token: %v", err)
	}
	return &models.UserWithToken{
		User:  existUser,
		Token: token,
	}, nil
}

func (u *authUC) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := u.authRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.SanitizePassword()
	return user, nil
}

func (u *authUC) UpdateProfile(ctx context.Context, input *models.UpdateProfileInput) (*models.User, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	updated, err := u.authRepo.UpdateName(ctx, user.UserID, input.Name)
	if err != nil {
		u.logger.Errorf("UpdateProfile - repo error: user=%s: %v", user.UserID, err)
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}
	updated.SanitizePassword()
	return updated, nil
}

func (u *authUC) ChangePassword(ctx context.Context, input *models.ChangePasswordInput) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return fmt.Errorf("invalid input: %v", err)
	}
	stored, err := u.authRepo.GetByID(ctx, user.UserID)
	if err != nil {
		u.logger.Errorf("ChangePassword - GetByID error: user=%s: %v", user.UserID, err)
		return fmt.Errorf("failed to find user: %v", err)
	}
	if err = stored.ComparePassword(input.CurrentPassword); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	next := &models.User{Password: input.NewPassword}
	if err = next.HashPassword(); err != nil {
		return err
	}
	if err = u.authRepo.UpdatePassword(ctx, user.UserID, next.Password); err != nil {
		u.logger.Errorf("ChangePassword - repo error: user=%s: %v", user.UserID, err)
		return fmt.Errorf("failed to change password: %v", err)
	}
	return nil
}
