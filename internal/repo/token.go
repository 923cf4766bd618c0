package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/doggee/internal/models"
)

var ErrTokenRotated = errors.New("refresh token already rotated")

func (r *GormRepo) AddRefreshToken(ctx context.Context, token string, userID uint) (*models.RefreshToken, error) {
	rt := models.RefreshToken{
		Token:  token,
		UserID: userID,
	}
	if err := r.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// FindRefreshToken matches on both the token string and its owner, so a
// token lifted from one account never resolves for another.
func (r *GormRepo) FindRefreshToken(ctx context.Context, token string, userID uint) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.DB.WithContext(ctx).
		Where("token = ? AND user_id = ?", token, userID).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// RotateRefreshToken replaces the token string of row id, but only while
// the row still holds oldToken. Of two concurrent rotations of the same
// token exactly one wins; the other gets ErrTokenRotated.
func (r *GormRepo) RotateRefreshToken(ctx context.Context, id uint, oldToken, newToken string) error {
	res := r.DB.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("id = ? AND token = ?", id, oldToken).
		Update("token", newToken)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenRotated
	}
	return nil
}
