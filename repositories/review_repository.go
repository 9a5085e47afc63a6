package repositories

import (
	"errors"

	"gig-marketplace/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	// CreateWithAggregates inserts the review and folds the gig and
	// seller rating updates into the same transaction. Uniqueness of
	// (gig_id, user_id) is enforced by the index, so of two concurrent
	// submissions exactly one commits; the loser gets
	// models.ErrDuplicateReview.
	CreateWithAggregates(review *models.Review, sellerUserID uint) error
	GetByGig(gigID uint) ([]models.Review, error)
	// RecomputeGigAggregates is the repair pass: rebuilds the gig's
	// rating columns from its reviews in one statement.
	RecomputeGigAggregates(gigID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateWithAggregates(review *models.Review, sellerUserID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDuplicateReview
			}
			return err
		}

		// Atomic increments; never read-modify-write at this tier.
		err := tx.Model(&models.Gig{}).Where("id = ?", review.GigID).
			Updates(map[string]interface{}{
				"total_stars":   gorm.Expr("total_stars + ?", review.Star),
				"star_number":   gorm.Expr("star_number + 1"),
				"reviews_count": gorm.Expr("reviews_count + 1"),
			}).Error
		if err != nil {
			return err
		}

		// Incremental mean on the seller profile, computed in SQL so two
		// concurrent reviews of different gigs by the same seller cannot
		// lose an update.
		return tx.Model(&models.SellerProfile{}).
			Where("user_id = ?", sellerUserID).
			Updates(map[string]interface{}{
				"rating_average": gorm.Expr(
					"(rating_average * rating_count + ?) / (rating_count + 1)", review.Star),
				"rating_count": gorm.Expr("rating_count + 1"),
			}).Error
	})
}

func (r *reviewRepository) GetByGig(gigID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("gig_id = ?", gigID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) RecomputeGigAggregates(gigID uint) error {
	return r.db.Exec(`
		UPDATE gigs SET
			total_stars   = agg.stars,
			star_number   = agg.cnt,
			reviews_count = agg.cnt
		FROM (
			SELECT COALESCE(SUM(star), 0) AS stars, COUNT(*) AS cnt
			FROM reviews WHERE gig_id = ?
		) AS agg
		WHERE gigs.id = ?`, gigID, gigID).Error
}
