package repositories

import (
	"fmt"

	"gig-marketplace/models"

	"gorm.io/gorm"
)

// GigQuery is the normalized plan produced by the gig service from
// untrusted list parameters. Every field here is already validated, so
// the repository applies it mechanically.
type GigQuery struct {
	UserID          uint
	Category        models.GigCategory
	HasMinPrice     bool
	MinPrice        float64
	HasMaxPrice     bool
	MaxPrice        float64
	Search          string
	OrderColumn     string
	OrderDescending bool
	Offset          int
	Limit           int
	// OwnerView lifts the active-only restriction for the given owner's
	// own listings; zero means public view.
	OwnerView uint
}

type GigRepository interface {
	Create(gig *models.Gig) error
	GetByID(id uint) (*models.Gig, error)
	GetList(q GigQuery) ([]models.Gig, int64, error)
	// Update persists the mutable listing columns only; the rating
	// aggregate columns are owned by ReviewRepository.
	Update(gig *models.Gig) error
	Delete(id uint) error
}

type gigRepository struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

func (r *gigRepository) GetByID(id uint) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.Preload("User").First(&gig, id).Error; err != nil {
		return nil, err
	}
	gig.ComputeRating()
	return &gig, nil
}

func (r *gigRepository) GetList(q GigQuery) ([]models.Gig, int64, error) {
	var gigs []models.Gig
	var total int64

	query := r.db.Model(&models.Gig{})

	if q.OwnerView != 0 {
		query = query.Where("status = ? OR user_id = ?", models.GigActive, q.OwnerView)
	} else {
		query = query.Where("status = ?", models.GigActive)
	}

	if q.UserID > 0 {
		query = query.Where("user_id = ?", q.UserID)
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.HasMinPrice {
		query = query.Where("price >= ?", q.MinPrice)
	}
	if q.HasMaxPrice {
		query = query.Where("price <= ?", q.MaxPrice)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	// Count and fetch share the composed filter.
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "asc"
	if q.OrderDescending {
		direction = "desc"
	}
	err := query.Order(fmt.Sprintf("%s %s", q.OrderColumn, direction)).
		Offset(q.Offset).Limit(q.Limit).
		Find(&gigs).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range gigs {
		gigs[i].ComputeRating()
	}
	return gigs, total, nil
}

func (r *gigRepository) Update(gig *models.Gig) error {
	return r.db.Model(gig).
		Select("Title", "Description", "Category", "Price", "DeliveryDays", "ImageURL", "Status").
		Updates(gig).Error
}

func (r *gigRepository) Delete(id uint) error {
	return r.db.Delete(&models.Gig{}, id).Error
}
