package models

import (
	"time"

	"gorm.io/gorm"
)

type GigCategory string

const (
	CategoryDesign      GigCategory = "Design"
	CategoryProgramming GigCategory = "Programming"
	CategoryWriting     GigCategory = "Writing"
	CategoryMarketing   GigCategory = "Marketing"
	CategoryVideo       GigCategory = "Video"
	CategoryMusic       GigCategory = "Music"
)

func (c GigCategory) Valid() bool {
	switch c {
	case CategoryDesign, CategoryProgramming, CategoryWriting,
		CategoryMarketing, CategoryVideo, CategoryMusic:
		return true
	}
	return false
}

type GigStatus string

const (
	GigActive   GigStatus = "active"
	GigInactive GigStatus = "inactive"
)

// Gig is a seller's listing. TotalStars and StarNumber are the rating
// aggregate; only ReviewRepository mutates them, with atomic SQL
// increments, so the average never suffers a lost update.
type Gig struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	UserID       uint           `json:"user_id" gorm:"index;not null"`
	User         *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"not null"`
	Category     GigCategory    `json:"category" gorm:"index;not null"`
	Price        float64        `json:"price" gorm:"index;not null"`
	DeliveryDays int            `json:"delivery_days" gorm:"not null"`
	ImageURL     string         `json:"image_url"`
	TotalStars   int64          `json:"-" gorm:"default:0"`
	StarNumber   int64          `json:"-" gorm:"default:0"`
	ReviewsCount int64          `json:"reviews_count" gorm:"default:0"`
	Status       GigStatus      `json:"status" gorm:"default:'active'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	Rating float64 `json:"rating" gorm:"-"`
}

// ComputeRating derives the exposed average from the integer aggregate.
func (g *Gig) ComputeRating() {
	if g.StarNumber > 0 {
		g.Rating = float64(g.TotalStars) / float64(g.StarNumber)
	}
}
