package repository

import (
	"Blogicum/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LocationRepo interface {
	GetLocationByID(ctx context.Context, id uint64) (*model.Location, error)
	GetAllLocations(ctx context.Context) ([]*model.Location, error)
	CreateLocation(ctx context.Context, location *model.Location) error
	UpdateLocation(ctx context.Context, location *model.Location) error
	DeleteLocation(ctx context.Context, id uint64) error
}

type LocationRepoImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepo {
	return &LocationRepoImpl{db: db}
}

func (s *LocationRepoImpl) GetLocationByID(ctx context.Context, id uint64) (*model.Location, error) {
	var location model.Location
	err := s.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (s *LocationRepoImpl) GetAllLocations(ctx context.Context) ([]*model.Location, error) {
	locations := make([]*model.Location, 0)
	err := s.db.WithContext(ctx).Order("id ASC").Find(&locations).Error
	return locations, err
}

func (s *LocationRepoImpl) CreateLocation(ctx context.Context, location *model.Location) error {
	return s.db.WithContext(ctx).Create(location).Error
}

func (s *LocationRepoImpl) UpdateLocation(ctx context.Context, location *model.Location) error {
	return s.db.WithContext(ctx).
		Model(location).
		Select("name", "is_published").
		Updates(location).Error
}

// DeleteLocation 删除地点，关联帖子的 location_id 置空
func (s *LocationRepoImpl) DeleteLocation(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Post{}).
			Where("location_id = ?", id).
			Update("location_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Location{}, id).Error
	})
}
