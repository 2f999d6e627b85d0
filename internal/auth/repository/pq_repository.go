package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/auth"
	"github.com/streamflix/streamflix-server/internal/models"
)

type authRepo struct {
	db *sqlx.DB
}

func NewAuthRepo(db *sqlx.DB) auth.Repository {
	return &authRepo{
		db: db,
	}
}

func (r *authRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	created := &models.User{}
	if err := r.db.QueryRowxContext(
		ctx,
		createUserQuery,
		user.Email,
		user.Name,
		user.Password,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "authRepo.Register.StructScan")
	}
	return created, nil
}

func (r *authRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(ctx, getUserByEmailQuery, email).StructScan(user); err != nil {
		return nil, errors.Wrap(err, "authRepo.FindByEmail.StructScan")
	}
	return user, nil
}

func (r *authRepo) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(ctx, getUserByIDQuery, userID).StructScan(user); err != nil {
		return nil, errors.Wrap(err, "authRepo.GetByID.StructScan")
	}
	return user, nil
}

func (r *authRepo) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*models.User, error) {
	user := &models.User{}
	if err := r.db.QueryRowxContext(ctx, updateUserNameQuery, userID, name).StructScan(user); err != nil {
		return nil, errors.Wrap(err, "authRepo.UpdateName.StructScan")
	}
	return user, nil
}

func (r *authRepo) UpdatePassword(ctx context.Context, userID uuid.UUID, hashedPassword string) error {
	if _, err := r.db.ExecContext(ctx, updateUserPasswordQuery, userID, hashedPassword); err != nil {
		return errors.Wrap(err, "authRepo.UpdatePassword.ExecContext")
	}
	return nil
}
