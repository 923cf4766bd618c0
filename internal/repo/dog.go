package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/doggee/internal/models"
)

func (r *GormRepo) ListDogs(ctx context.Context, ownerID uint) ([]models.Dog, error) {
	dogs := make([]models.Dog, 0)
	if err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *GormRepo) CreateDog(ctx context.Context, dog *models.Dog) error {
	return r.DB.WithContext(ctx).Create(dog).Error
}

func (r *GormRepo) FindDog(ctx context.Context, ownerID, dogID uint) (*models.Dog, error) {
	var dog models.Dog
	if err := r.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", dogID, ownerID).First(&dog).Error; err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *GormRepo) SaveDog(ctx context.Context, dog *models.Dog) error {
	return r.DB.WithContext(ctx).Save(dog).Error
}

func (r *GormRepo) DeleteDog(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Dog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
