package models

import (
	"time"
)

// Review of a gig by a user. The composite unique index is what makes two
// concurrent submissions for the same (gig, user) pair resolve
// deterministically: the second insert fails at the storage layer.
type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	GigID     uint      `json:"gig_id" gorm:"uniqueIndex:idx_reviews_gig_user;not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_reviews_gig_user;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Star      int       `json:"star" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
