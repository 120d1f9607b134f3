package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// registrationRepository implements repository.RegistrationRepository
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateSiswaAccount(ctx context.Context, user *entity.User, siswa *entity.Siswa) error {
	now := time.Now()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if siswa.ID == uuid.Nil {
		siswa.ID = uuid.New()
	}
	siswa.UserID = user.ID
	siswa.CreatedAt = now
	siswa.UpdatedAt = now

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(UserModelFromEntity(user)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.AlreadyExistsError("email")
			}
			return err
		}
		if err := tx.Create(SiswaModelFromEntity(siswa)).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.AlreadyExistsError("siswa")
			}
			return err
		}
		return nil
	})
}
