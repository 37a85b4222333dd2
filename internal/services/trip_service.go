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

type TripServiceInterface interface {
	ListTrips(ctx context.Context, filter string) (*response_models.TripListResponse, error)
	GetTripDetail(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error)
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
	logger        *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
		logger:        logger.Named("trips"),
	}
}

// ListTrips returns the tab counts over every trip plus the trips of the
// selected tab, sorted by start date and grouped by month.
func (s *TripService) ListTrips(ctx context.Context, filter string) (*response_models.TripListResponse, error) {
	f, err := views.ParseTripFilter(filter)
	if err != nil {
		return nil, err
	}

	all, err := s.tripRepo.GetTrips(ctx, views.TripFilterAll)
	if err != nil {
		s.logger.Error("get trips", zap.Error(err))
		return nil, err
	}

	sorted := views.SortTripsByStartDate(views.FilterTrips(all, f))
	groups := views.GroupTripsByMonth(sorted)

	resp := &response_models.TripListResponse{
		Filter: f,
		Tabs:   views.CountTripTabs(all),
		Groups: make([]response_models.TripMonthGroup, 0, len(groups)),
	}
	for _, g := range groups {
		cards := make([]response_models.TripCard, 0, len(g.Trips))
		for _, t := range g.Trips {
			card, err := tripCard(t)
			if err != nil {
				s.logger.Warn("skip trip with bad dates", zap.String("trip_id", t.ID), zap.Error(err))
				continue
			}
			cards = append(cards, card)
		}
		if len(cards) == 0 {
			continue
		}
		resp.Groups = append(resp.Groups, response_models.TripMonthGroup{Label: g.Label, Trips: cards})
	}
	return resp, nil
}

func tripCard(t db_models.Trip) (response_models.TripCard, error) {
	days, err := views.ElapsedDayCount(t.StartDate, t.EndDate)
	if err != nil {
		return response_models.TripCard{}, err
	}
	dateRange, err := views.CompactDateRange(t.StartDate, t.EndDate)
	if err != nil {
		return response_models.TripCard{}, err
	}
	return response_models.TripCard{
		ID:            t.ID,
		Name:          t.Name,
		Destination:   t.Destination,
		CoverImage:    t.CoverImage,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		DateRange:     dateRange,
		DayCount:      days,
		Status:        t.Status,
		Travelers:     t.Travelers,
		TravelerCount: len(t.Travelers),
		IsShared:      t.IsShared(),
	}, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	days, err := views.ElapsedDayCount(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}
	start, _ := utils.ParseCalendarDate(trip.StartDate)
	end, _ := utils.ParseCalendarDate(trip.EndDate)

	items, err := s.itineraryRepo.GetItinerary(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	return &response_models.TripDetailResponse{
		Trip:          *trip,
		Duration:      views.FormatDayCount(days),
		StartDate:     utils.FormatLongDate(start),
		EndDate:       utils.FormatLongDate(end),
		TravelerCount: len(trip.Travelers),
		ActivityCount: len(items),
		Budget:        views.BudgetBreakdown(*trip),
	}, nil
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	trip := req.ToTrip()
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	created, err := s.tripRepo.CreateTrip(ctx, trip)
	if err != nil {
		s.logger.Error("create trip", zap.Error(err))
		return nil, err
	}
	s.logger.Info("trip created", zap.String("trip_id", created.ID))
	return created, nil
}

// UpdateTrip validates the merged trip before anything is written.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	current, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.ErrTripNotFound
	}
	if err := validateTrip(req.Apply(*current)); err != nil {
		return nil, err
	}

	return s.tripRepo.UpdateTrip(ctx, tripID, req.Apply)
}

func validateTrip(t db_models.Trip) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", utils.ErrInvalidInput)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: status %q", utils.ErrInvalidInput, t.Status)
	}
	if t.Budget != nil && *t.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", utils.ErrInvalidInput)
	}
	if _, err := views.ElapsedDayCount(t.StartDate, t.EndDate); err != nil {
		return err
	}
	return nil
}
