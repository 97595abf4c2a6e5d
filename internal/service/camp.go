package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// PopularCampsLimit is how many camps the home page highlights.
const PopularCampsLimit = 6

// CampService manages the camp catalog.
type CampService struct {
	camps CampStore
	log   *zerolog.Logger
}

// NewCampService constructs a CampService.
func NewCampService(camps CampStore, log *zerolog.Logger) *CampService {
	return &CampService{camps: camps, log: log}
}

// CreateCamp validates the request and stores a camp with a zero participant
// count.
func (s *CampService) CreateCamp(ctx context.Context, req model.CampRequest) (model.InsertResult, error) {
	req.CampName = strings.TrimSpace(req.CampName)
	if err := validate(ctx, req); err != nil {
		return model.InsertResult{}, err
	}
	req.ParticipantCount = 0
	res, err := s.camps.Create(ctx, req)
	if err != nil {
		return res, fmt.Errorf("create camp: %w", err)
	}
	s.log.Info().Str("camp_id", res.InsertedID).Str("camp_name", req.CampName).Msg("camp created")
	return res, nil
}

// GetCamp returns a single camp by id.
func (s *CampService) GetCamp(ctx context.Context, id string) (*model.Camp, error) {
	if err := requireID(id, "camp"); err != nil {
		return nil, err
	}
	return s.camps.GetByID(ctx, id)
}

// ListCamps searches camp name, location and date, ordered by sort.
func (s *CampService) ListCamps(ctx context.Context, search, sort string) ([]model.Camp, error) {
	order := CampSort(sort)
	switch order {
	case SortNone, SortMostRegistered, SortCampFees, SortAlphabeticalName:
	default:
		order = SortNone
	}
	return s.camps.Search(ctx, strings.TrimSpace(search), order)
}

// ManageCamps searches camp name, date and professional name for the
// organizer dashboard.
func (s *CampService) ManageCamps(ctx context.Context, search string) ([]model.Camp, error) {
	return s.camps.SearchManaged(ctx, strings.TrimSpace(search))
}

// PopularCamps returns the camps with the most participants.
func (s *CampService) PopularCamps(ctx context.Context) ([]model.Camp, error) {
	return s.camps.TopByParticipants(ctx, PopularCampsLimit)
}

// UpdateCamp replaces the editable fields of a camp, inserting it if the id
// is unknown. The participant count is taken from the request as sent.
func (s *CampService) UpdateCamp(ctx context.Context, id string, req model.CampRequest) (model.UpdateResult, error) {
	if err := requireID(id, "camp"); err != nil {
		return model.UpdateResult{}, err
	}
	req.CampName = strings.TrimSpace(req.CampName)
	if err := validate(ctx, req); err != nil {
		return model.UpdateResult{}, err
	}
	res, err := s.camps.Upsert(ctx, id, req)
	if err != nil {
		return res, fmt.Errorf("update camp: %w", err)
	}
	s.log.Info().Str("camp_id", id).Int64("modified", res.ModifiedCount).Msg("camp updated")
	return res, nil
}

// DeleteCamp removes a camp. Registrations referencing it are left alone.
func (s *CampService) DeleteCamp(ctx context.Context, id string) (model.DeleteResult, error) {
	if err := requireID(id, "camp"); err != nil {
		return model.DeleteResult{}, err
	}
	res, err := s.camps.Delete(ctx, id)
	if err != nil {
		return res, fmt.Errorf("delete camp: %w", err)
	}
	s.log.Info().Str("camp_id", id).Int64("deleted", res.DeletedCount).Msg("camp deleted")
	return res, nil
}
