package repository

import (
	"context"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// RegistrationRepository persists a login account together with its student
// profile in one transaction. Either both rows land or neither does; a
// rejected registration never leaves an account without a profile behind.
type RegistrationRepository interface {
	CreateSiswaAccount(ctx context.Context, user *entity.User, siswa *entity.Siswa) error
}
