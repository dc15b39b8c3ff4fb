package service

import (
	"context"
	"fmt"
	"time"

	"velvethome-backend/internal/apperr"
	"velvethome-backend/internal/dto"
	"velvethome-backend/internal/model"
	"velvethome-backend/internal/repository"
)

type LeadService interface {
	Create(ctx context.Context, req *dto.LeadRequest) (*model.Lead, error)
}

type leadServiceImpl struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadServiceImpl{leadRepo: leadRepo}
}

func (s *leadServiceImpl) Create(ctx context.Context, req *dto.LeadRequest) (*model.Lead, error) {
	if req.CustomerName == "" || req.Email == "" || req.MobileNumber == "" || req.PreferredDate == "" || req.TimeSlot == "" {
		return nil, apperr.Validation("Missing required lead information.")
	}

	preferredDate, err := parseLeadDate(req.PreferredDate)
	if err != nil {
		return nil, apperr.Validation("Invalid preferred date.")
	}

	lead := &model.Lead{
		CustomerName:      req.CustomerName,
		Email:             req.Email,
		MobileNumber:      req.MobileNumber,
		PreferredDate:     preferredDate,
		TimeSlot:          req.TimeSlot,
		ProjectType:       req.ProjectType,
		BudgetRange:       req.BudgetRange,
		Status:            model.LeadStatusNew,
		AdditionalMessage: req.AdditionalMessage,
	}

	saved, err := s.leadRepo.Insert(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("store lead: %w", err)
	}
	return saved, nil
}

func parseLeadDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
