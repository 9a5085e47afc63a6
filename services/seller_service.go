package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"gorm.io/gorm"
)

type SellerService interface {
	BecomeSeller(actor Actor, req models.BecomeSellerRequest) (*models.SellerProfile, error)
	GetProfile(userID uint) (*models.SellerProfile, error)
	UpdateProfile(actor Actor, userID uint, req models.UpdateSellerProfileRequest) (*models.SellerProfile, error)
}

type sellerService struct {
	sellerRepo repositories.SellerRepository
	userRepo   repositories.UserRepository
}

func NewSellerService(sellerRepo repositories.SellerRepository, userRepo repositories.UserRepository) SellerService {
	return &sellerService{sellerRepo: sellerRepo, userRepo: userRepo}
}

func (s *sellerService) BecomeSeller(actor Actor, req models.BecomeSellerRequest) (*models.SellerProfile, error) {
	if err := Authorize(actor, ActionBecomeSeller, Resource{}); err != nil {
		return nil, err
	}
	if err := validateSellerDraft(req); err != nil {
		return nil, err
	}

	profile := &models.SellerProfile{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Skills:      models.StringList(req.Skills).Dedup(),
		Languages:   models.StringList(req.Languages).Dedup(),
		HourlyRate:  req.HourlyRate,
		IsAvailable: true,
	}

	if err := s.sellerRepo.CreateWithRoleFlip(actor.ID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *sellerService) GetProfile(userID uint) (*models.SellerProfile, error) {
	profile, err := s.sellerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *sellerService) UpdateProfile(actor Actor, userID uint, req models.UpdateSellerProfileRequest) (*models.SellerProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, ActionUpdateSellerProfile, Resource{OwnerID: profile.UserID}); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := checkLength("title", *req.Title, 5, 100); err != nil {
			return nil, err
		}
		profile.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if err := checkLength("description", *req.Description, 50, 1000); err != nil {
			return nil, err
		}
		profile.Description = strings.TrimSpace(*req.Description)
	}
	if req.Skills != nil {
		skills, err := checkSkills(req.Skills)
		if err != nil {
			return nil, err
		}
		profile.Skills = skills
	}
	if req.Languages != nil {
		if len(req.Languages) > 10 {
			return nil, models.Invalid("languages", "cannot specify more than 10 languages")
		}
		profile.Languages = models.StringList(req.Languages).Dedup()
	}
	if req.HourlyRate != nil {
		if err := checkHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
		profile.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := s.sellerRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// validateSellerDraft rejects with the first failing field before any
// write happens.
func validateSellerDraft(req models.BecomeSellerRequest) error {
	if _, err := checkSkills(req.Skills); err != nil {
		return err
	}
	if err := checkLength("description", req.Description, 50, 1000); err != nil {
		return err
	}
	if err := checkHourlyRate(req.HourlyRate); err != nil {
		return err
	}
	if err := checkLength("title", req.Title, 5, 100); err != nil {
		return err
	}
	if len(req.Languages) > 10 {
		return models.Invalid("languages", "cannot specify more than 10 languages")
	}
	return nil
}

func checkSkills(skills []string) (models.StringList, error) {
	deduped := models.StringList(skills).Dedup()
	if len(deduped) == 0 {
		return nil, models.Invalid("skills", "at least one skill is required")
	}
	if len(deduped) > 20 {
		return nil, models.Invalid("skills", "maximum 20 skills allowed")
	}
	return deduped, nil
}

func checkHourlyRate(rate float64) error {
	if rate < 1 || rate > 1000 {
		return models.Invalid("hourly_rate", "hourly rate must be between 1 and 1000")
	}
	if rem := math.Mod(rate, 0.5); rem > 1e-9 && rem < 0.5-1e-9 {
		return models.Invalid("hourly_rate", "hourly rate must be in increments of 0.50")
	}
	return nil
}

func checkLength(field, value string, min, max int) error {
	n := len(strings.TrimSpace(value))
	if n < min || n > max {
		return models.Invalid(field, fmt.Sprintf("length must be between %d and %d characters", min, max))
	}
	return nil
}
