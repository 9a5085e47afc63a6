package models

import (
	"strings"
	"time"
)

// SellerProfile is the 1:1 extension of a User with role seller.
// It exists iff the owning user has role seller; the role flip and the
// profile insert happen in the same transaction (see SellerService).
type SellerProfile struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	UserID        uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User          *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description" gorm:"not null"`
	Skills        StringList `json:"skills" gorm:"serializer:json;not null"`
	Languages     StringList `json:"languages" gorm:"serializer:json"`
	HourlyRate    float64    `json:"hourly_rate" gorm:"not null"`
	IsAvailable   bool       `json:"is_available" gorm:"default:true"`
	RatingAverage float64    `json:"rating_average" gorm:"default:0"`
	RatingCount   int64      `json:"rating_count" gorm:"default:0"`
	CompletedJobs int64      `json:"completed_jobs" gorm:"default:0"`
	Earnings      float64    `json:"earnings" gorm:"default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// StringList is stored as a JSON array column.
type StringList []string

// Dedup trims every entry and drops empties and duplicates, keeping
// first-seen order.
func (l StringList) Dedup() StringList {
	seen := make(map[string]bool, len(l))
	out := make(StringList, 0, len(l))
	for _, s := range l {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
