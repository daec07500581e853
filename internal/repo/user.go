package repo

import (
	"context"

	"github.com/jcancelado/fiapp/internal/hash"
	"github.com/jcancelado/fiapp/internal/models"
)

// FindByEmail looks a user up by the digested, case-folded form of the
// email address.
func (r *GormRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email_key = ?", hash.EmailKey(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts u unless its email key is already present. The unique
// index on email_key backs this up: a concurrent duplicate insert fails at
// the database instead of overwriting the first writer.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email_key = ?", u.EmailKey).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// SetUserRole overwrites the role of the user stored under email and
// returns the updated record. The miss propagates as record-not-found.
func (r *GormRepo) SetUserRole(ctx context.Context, email, role string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email_key = ?", hash.EmailKey(email)).First(&user).Error; err != nil {
		return nil, err
	}
	user.Role = role
	if err := r.DB.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the record under email. Deleting an absent user is
// not an error.
func (r *GormRepo) DeleteUser(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).
		Where("email_key = ?", hash.EmailKey(email)).
		Delete(&models.User{}).Error
}
