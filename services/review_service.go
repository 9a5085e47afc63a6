package services

import (
	"errors"
	"log"

	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"gorm.io/gorm"
)

type ReviewService interface {
	RecordReview(actor Actor, req models.CreateReviewRequest) (*models.Review, error)
	ListReviews(gigID uint) ([]models.Review, error)
	// RecomputeGigRating rebuilds a gig's rating aggregate from its
	// reviews. Normally the aggregate is maintained incrementally; this
	// is the repair pass for a detected inconsistency.
	RecomputeGigRating(gigID uint) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	gigRepo    repositories.GigRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, gigRepo repositories.GigRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, gigRepo: gigRepo}
}

func (s *reviewService) RecordReview(actor Actor, req models.CreateReviewRequest) (*models.Review, error) {
	if err := Authorize(actor, ActionWriteReview, Resource{}); err != nil {
		return nil, err
	}
	// The binding layer checks this too, but direct callers must not be
	// able to skew the aggregate with an out-of-range star.
	if req.Star < 1 || req.Star > 5 {
		return nil, models.Invalid("star", "star rating must be between 1 and 5")
	}

	gig, err := s.gigRepo.GetByID(req.GigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if gig.Status != models.GigActive {
		return nil, models.ErrNotFound
	}

	review := &models.Review{
		GigID:   req.GigID,
		UserID:  actor.ID,
		Star:    req.Star,
		Comment: req.Comment,
	}

	if err := s.reviewRepo.CreateWithAggregates(review, gig.UserID); err != nil {
		if errors.Is(err, models.ErrDuplicateReview) {
			return nil, err
		}
		// The insert and the aggregate update share one transaction, so
		// a failure here left nothing behind; log and surface it.
		log.Printf("recordReview gig=%d user=%d: %v", req.GigID, actor.ID, err)
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(gigID uint) ([]models.Review, error) {
	if _, err := s.gigRepo.GetByID(gigID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return s.reviewRepo.GetByGig(gigID)
}

func (s *reviewService) RecomputeGigRating(gigID uint) error {
	return s.reviewRepo.RecomputeGigAggregates(gigID)
}
