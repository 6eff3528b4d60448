package repositories

import (
	"context"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type AdminUserRepository interface {
	// FindByUsernameOrEmail matches exactly one account by exact string
	// equality on either the username or the email column.
	FindByUsernameOrEmail(ctx context.Context, login string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
}

type AdminUserRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &AdminUserRepositoryImpl{db: db}
}

func (r *AdminUserRepositoryImpl) FindByUsernameOrEmail(ctx context.Context, login string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", login, login).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}
