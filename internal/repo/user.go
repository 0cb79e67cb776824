package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorbuddy/backend/internal/models"
)

// CreateUser persists a new user, and when supplier is non-nil creates the
// supplier record in the same transaction and links the user to it. A
// duplicate email rolls the whole unit back.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User, supplier *models.Supplier) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if supplier != nil {
			if err := tx.Create(supplier).Error; err != nil {
				return err
			}
			u.SupplierID = &supplier.ID
		}

		res := tx.Where("email = ?", u.Email).FirstOrCreate(u)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserAlreadyExists
		}
		return nil
	})
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) SumSavedThisMonth(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Select("COALESCE(SUM(saved_this_month), 0)").
		Scan(&total).Error
	return total, err
}

func (r *GormRepo) CountVendors(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("user_type = ?", "vendor").
		Count(&count).Error
	return count, err
}
