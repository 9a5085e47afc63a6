package repositories

import (
	"gig-marketplace/models"

	"gorm.io/gorm"
)

type SellerRepository interface {
	GetByUserID(userID uint) (*models.SellerProfile, error)
	// Update persists the profile's own fields only; the rating
	// aggregate columns are owned by ReviewRepository, so a stale
	// snapshot here can never erase a concurrent review's increment.
	Update(profile *models.SellerProfile) error
	// CreateWithRoleFlip promotes the user to seller and inserts the
	// profile as one transaction; a partial state is never visible.
	CreateWithRoleFlip(userID uint, profile *models.SellerProfile) error
}

type sellerRepository struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) GetByUserID(userID uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *sellerRepository) Update(profile *models.SellerProfile) error {
	return r.db.Model(profile).
		Select("Title", "Description", "Skills", "Languages", "HourlyRate", "IsAvailable").
		Updates(profile).Error
}

func (r *sellerRepository) CreateWithRoleFlip(userID uint, profile *models.SellerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", userID, models.RoleBuyer).
			Update("role", models.RoleSeller)
		if res.Error != nil {
			return res.Error
		}
		// Zero rows means a concurrent promotion won; surface it the
		// same way a pre-checked duplicate would be.
		if res.RowsAffected == 0 {
			return models.ErrAlreadySeller
		}
		profile.UserID = userID
		return tx.Create(profile).Error
	})
}
