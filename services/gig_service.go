package services

import (
	"errors"

	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type GigService interface {
	CreateGig(actor Actor, req models.CreateGigRequest) (*models.Gig, error)
	GetGig(id uint, viewerID uint) (*models.Gig, error)
	// ListGigs composes a safe query plan from untrusted parameters.
	// viewerID, when non-zero, lets an owner see their own inactive
	// listings; public callers pass zero.
	ListGigs(params models.GigListParams, viewerID uint) ([]models.Gig, int64, error)
	UpdateGig(actor Actor, id uint, req models.UpdateGigRequest) (*models.Gig, error)
	DeleteGig(actor Actor, id uint) error
	ToggleStatus(actor Actor, id uint) (*models.Gig, error)
}

type gigService struct {
	gigRepo repositories.GigRepository
}

func NewGigService(gigRepo repositories.GigRepository) GigService {
	return &gigService{gigRepo: gigRepo}
}

func (s *gigService) CreateGig(actor Actor, req models.CreateGigRequest) (*models.Gig, error) {
	if err := Authorize(actor, ActionCreateGig, Resource{}); err != nil {
		return nil, err
	}
	if !req.Category.Valid() {
		return nil, models.Invalid("category", "unknown category")
	}

	gig := &models.Gig{
		UserID:       actor.ID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
		ImageURL:     req.ImageURL,
		Status:       models.GigActive,
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *gigService) GetGig(id uint, viewerID uint) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	// Inactive listings are visible to their owner only.
	if gig.Status != models.GigActive && gig.UserID != viewerID {
		return nil, models.ErrNotFound
	}
	return gig, nil
}

func (s *gigService) ListGigs(params models.GigListParams, viewerID uint) ([]models.Gig, int64, error) {
	q, empty, err := ComposeGigQuery(params, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if empty {
		return []models.Gig{}, 0, nil
	}
	return s.gigRepo.GetList(q)
}

// ComposeGigQuery normalizes untrusted list parameters into a query plan.
// It is pure: no store access, no mutation. The returned empty flag
// short-circuits filters that can never match (unknown category).
func ComposeGigQuery(params models.GigListParams, viewerID uint) (repositories.GigQuery, bool, error) {
	var q repositories.GigQuery

	if params.Category != "" {
		category := models.GigCategory(params.Category)
		if !category.Valid() {
			// Unknown category yields an empty result, not an error.
			return q, true, nil
		}
		q.Category = category
	}

	if params.MinPrice > 0 {
		q.HasMinPrice = true
		q.MinPrice = params.MinPrice
	}
	if params.MaxPrice > 0 {
		q.HasMaxPrice = true
		q.MaxPrice = params.MaxPrice
	}
	if q.HasMinPrice && q.HasMaxPrice && q.MinPrice > q.MaxPrice {
		return q, false, models.Invalid("min_price", "minimum price must not exceed maximum price")
	}

	q.UserID = params.UserID
	q.Search = params.Search
	q.OwnerView = viewerID

	// Sort whitelist; anything unknown falls back to newest.
	switch params.Sort {
	case "oldest":
		q.OrderColumn, q.OrderDescending = "created_at", false
	case "priceAsc":
		q.OrderColumn, q.OrderDescending = "price", false
	case "priceDesc":
		q.OrderColumn, q.OrderDescending = "price", true
	default:
		q.OrderColumn, q.OrderDescending = "created_at", true
	}

	page, limit := NormalizePaging(params.Page, params.Limit)
	q.Offset = (page - 1) * limit
	q.Limit = limit

	return q, false, nil
}

// NormalizePaging clamps untrusted paging parameters to the values the
// composed query actually uses; response pagination must be derived
// from these, not from the raw request.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func (s *gigService) UpdateGig(actor Actor, id uint, req models.UpdateGigRequest) (*models.Gig, error) {
	gig, err := s.loadOwned(actor, id, ActionUpdateGig)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, models.Invalid("category", "unknown category")
		}
		gig.Category = *req.Category
	}
	if req.Price != nil {
		gig.Price = *req.Price
	}
	if req.DeliveryDays != nil {
		gig.DeliveryDays = *req.DeliveryDays
	}
	if req.ImageURL != nil {
		gig.ImageURL = *req.ImageURL
	}

	if err := s.gigRepo.Update(gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *gigService) DeleteGig(actor Actor, id uint) error {
	if _, err := s.loadOwned(actor, id, ActionDeleteGig); err != nil {
		return err
	}
	return s.gigRepo.Delete(id)
}

func (s *gigService) ToggleStatus(actor Actor, id uint) (*models.Gig, error) {
	gig, err := s.loadOwned(actor, id, ActionToggleGig)
	if err != nil {
		return nil, err
	}
	if gig.Status == models.GigActive {
		gig.Status = models.GigInactive
	} else {
		gig.Status = models.GigActive
	}
	if err := s.gigRepo.Update(gig); err != nil {
		return nil, err
	}
	return gig, nil
}

func (s *gigService) loadOwned(actor Actor, id uint, action Action) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if err := Authorize(actor, action, Resource{OwnerID: gig.UserID}); err != nil {
		return nil, err
	}
	return gig, nil
}
