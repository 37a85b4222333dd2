package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"journeys/internal/models/db_models"
	"journeys/internal/models/request_models"
	"journeys/internal/models/response_models"
	"journeys/internal/repositories"
	"journeys/internal/views"
	"journeys/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetTimeline(ctx context.Context, tripID string) (*response_models.TimelineResponse, error)
	AddItem(ctx context.Context, tripID string, req request_models.AddItineraryItemRequest) (*db_models.ItineraryItem, error)
	UpdateItem(ctx context.Context, itemID string, req request_models.UpdateItineraryItemRequest) (*db_models.ItineraryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type ItineraryService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
	placeRepo     repositories.PlaceRepository
	logger        *zap.Logger
}

func NewItineraryService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
		placeRepo:     placeRepo,
		logger:        logger.Named("itinerary"),
	}
}

func (s *ItineraryService) getTrip(ctx context.Context, tripID string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// GetTimeline groups the trip's items by day in stored order and joins
// each item with its place.
func (s *ItineraryService) GetTimeline(ctx context.Context, tripID string) (*response_models.TimelineResponse, error) {
	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	label, err := views.FormatDateRangeLabel(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}

	items, err := s.itineraryRepo.GetItinerary(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	places, err := s.placeRepo.GetPlaces(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]db_models.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}

	resp := &response_models.TimelineResponse{
		TripID:         trip.ID,
		TripName:       trip.Name,
		DateRangeLabel: label,
		ItemCount:      len(items),
		Days:           make([]response_models.TimelineDay, 0),
	}
	for _, g := range views.GroupItemsByDate(items) {
		day := response_models.TimelineDay{
			Date:      g.Date,
			DayNumber: g.DayNumber,
			Entries:   make([]response_models.TimelineEntry, 0, len(g.Items)),
		}
		if h, err := views.HeadingForDate(g.Date); err == nil {
			day.Weekday = h.Weekday
			day.ShortDate = h.ShortDate
		}
		for _, item := range g.Items {
			entry := response_models.TimelineEntry{Item: item}
			if end, err := views.ItemEndTime(item); err == nil {
				entry.EndTime = end
			} else {
				s.logger.Warn("item end time", zap.String("item_id", item.ID), zap.Error(err))
			}
			if p, ok := byID[item.PlaceID]; ok {
				entry.Place = &response_models.PlaceSummary{ID: p.ID, Name: p.Name, Category: p.Category, ImageURL: p.ImageURL}
			}
			day.Entries = append(day.Entries, entry)
		}
		resp.Days = append(resp.Days, day)
	}
	return resp, nil
}

func (s *ItineraryService) AddItem(ctx context.Context, tripID string, req request_models.AddItineraryItemRequest) (*db_models.ItineraryItem, error) {
	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	item := req.ToItem()
	if err := s.validateItem(ctx, item, *trip); err != nil {
		return nil, err
	}

	added, err := s.itineraryRepo.AddItineraryItem(ctx, trip.ID, item)
	if err != nil {
		s.logger.Error("add itinerary item", zap.String("trip_id", trip.ID), zap.Error(err))
		return nil, err
	}
	return added, nil
}

func (s *ItineraryService) UpdateItem(ctx context.Context, itemID string, req request_models.UpdateItineraryItemRequest) (*db_models.ItineraryItem, error) {
	current, tripID, err := s.itineraryRepo.FindItineraryItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.ErrItineraryItemNotFound
	}
	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := s.validateItem(ctx, req.Apply(*current), *trip); err != nil {
		return nil, err
	}

	return s.itineraryRepo.UpdateItineraryItem(ctx, itemID, req.Apply)
}

// DeleteItem succeeds for ids that do not exist.
func (s *ItineraryService) DeleteItem(ctx context.Context, itemID string) error {
	return s.itineraryRepo.DeleteItineraryItem(ctx, itemID)
}

func (s *ItineraryService) validateItem(ctx context.Context, item db_models.ItineraryItem, trip db_models.Trip) error {
	if item.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", utils.ErrInvalidInput)
	}
	if _, err := utils.ParseClock(item.StartTime); err != nil {
		return err
	}
	within, err := views.DateWithinTrip(item.Date, trip)
	if err != nil {
		return err
	}
	if !within {
		return fmt.Errorf("%w: %s is not between %s and %s", utils.ErrItemOutsideTrip, item.Date, trip.StartDate, trip.EndDate)
	}

	place, err := s.placeRepo.GetPlace(ctx, item.PlaceID)
	if err != nil {
		return err
	}
	if place == nil {
		return fmt.Errorf("%w: unknown place %q", utils.ErrInvalidInput, item.PlaceID)
	}
	return nil
}
