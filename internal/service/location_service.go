package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/repository"
	"context"
)

type LocationService interface {
	ListLocations(ctx context.Context) ([]*dto.LocationDTO, error)
	CreateLocation(ctx context.Context, locationDTO *dto.LocationBaseDTO) (*dto.LocationDTO, error)
	UpdateLocation(ctx context.Context, id uint64, locationDTO *dto.LocationBaseDTO) (*dto.LocationDTO, error)
	DeleteLocation(ctx context.Context, id uint64) error
}

type locationServiceImpl struct {
	locationRepo repository.LocationRepo
}

func NewLocationService(locationRepo repository.LocationRepo) LocationService {
	return &locationServiceImpl{locationRepo: locationRepo}
}

func (s *locationServiceImpl) ListLocations(ctx context.Context) ([]*dto.LocationDTO, error) {
	locations, err := s.locationRepo.GetAllLocations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationDTO, len(locations))
	for i, location := range locations {
		if out[i], err = toLocationDTO(location); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *locationServiceImpl) CreateLocation(ctx context.Context, locationDTO *dto.LocationBaseDTO) (*dto.LocationDTO, error) {
	location := &model.Location{
		Name:        locationDTO.Name,
		IsPublished: util.BoolOr(locationDTO.IsPublished, true),
	}
	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}
	return toLocationDTO(location)
}

func (s *locationServiceImpl) UpdateLocation(ctx context.Context, id uint64, locationDTO *dto.LocationBaseDTO) (*dto.LocationDTO, error) {
	location, err := s.locationRepo.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	location.Name = locationDTO.Name
	location.IsPublished = util.BoolOr(locationDTO.IsPublished, location.IsPublished)
	if err = s.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, err
	}
	return toLocationDTO(location)
}

func (s *locationServiceImpl) DeleteLocation(ctx context.Context, id uint64) error {
	location, err := s.locationRepo.GetLocationByID(ctx, id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrLocationNotFound
	}
	return s.locationRepo.DeleteLocation(ctx, id)
}
