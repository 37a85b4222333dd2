package services

import (
	"context"

	"go.uber.org/zap"

	"journeys/internal/models/db_models"
	"journeys/internal/models/request_models"
	"journeys/internal/models/response_models"
	"journeys/internal/repositories"
	"journeys/internal/views"
	"journeys/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCities(ctx context.Context, req request_models.CitySearchRequest) (*response_models.CityListResponse, error)
	GetCityDetail(ctx context.Context, cityID string) (*response_models.CityDetailResponse, error)
	SearchPlaces(ctx context.Context, req request_models.PlaceSearchRequest) ([]db_models.Place, error)
	GetPlace(ctx context.Context, placeID string) (*db_models.Place, error)
	MapPlaces(ctx context.Context, active []db_models.Category) ([]db_models.Place, error)
}

type CatalogService struct {
	cityRepo  repositories.CityRepository
	placeRepo repositories.PlaceRepository
	seasons   views.SeasonTable
	logger    *zap.Logger
}

func NewCatalogService(
	cityRepo repositories.CityRepository,
	placeRepo repositories.PlaceRepository,
	seasons views.SeasonTable,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		cityRepo:  cityRepo,
		placeRepo: placeRepo,
		seasons:   seasons,
		logger:    logger.Named("catalog"),
	}
}

// ListCities backs the discover screen: query matches name, country or tag,
// and an optional season index narrows to that season's featured cities.
func (s *CatalogService) ListCities(ctx context.Context, req request_models.CitySearchRequest) (*response_models.CityListResponse, error) {
	var season *views.Season
	if req.Season != nil {
		parsed, err := views.ParseSeason(*req.Season)
		if err != nil {
			return nil, err
		}
		season = &parsed
	}

	cities, err := s.cityRepo.GetCities(ctx)
	if err != nil {
		s.logger.Error("get cities", zap.Error(err))
		return nil, err
	}

	resp := &response_models.CityListResponse{
		Seasons: views.SeasonOptions(),
		Cities:  views.FilterCities(cities, req.Query, season, s.seasons),
	}
	if season != nil {
		resp.Season = &views.SeasonOption{Index: int(*season), Label: season.Label()}
	}
	return resp, nil
}

func (s *CatalogService) GetCityDetail(ctx context.Context, cityID string) (*response_models.CityDetailResponse, error) {
	city, err := s.cityRepo.GetCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	places, err := s.placeRepo.GetPlaces(ctx, city.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.CityDetailResponse{City: *city, Places: places}, nil
}

func (s *CatalogService) SearchPlaces(ctx context.Context, req request_models.PlaceSearchRequest) ([]db_models.Place, error) {
	places, err := s.placeRepo.SearchPlaces(ctx, req.Query, req.CityID)
	if err != nil {
		s.logger.Error("search places", zap.String("query", req.Query), zap.Error(err))
		return nil, err
	}
	return places, nil
}

func (s *CatalogService) GetPlace(ctx context.Context, placeID string) (*db_models.Place, error) {
	place, err := s.placeRepo.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

// MapPlaces returns the pins for the map screen under the active category
// chips.
func (s *CatalogService) MapPlaces(ctx context.Context, active []db_models.Category) ([]db_models.Place, error) {
	places, err := s.placeRepo.GetPlaces(ctx, "")
	if err != nil {
		return nil, err
	}
	return views.FilterPlacesByCategories(places, active), nil
}
