package models

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=50"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName        *string `json:"full_name" binding:"omitempty,min=2,max=50"`
	Username        *string `json:"username" binding:"omitempty,min=3,max=30"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"password" binding:"omitempty,min=8,max=100"`
	CurrentPassword string  `json:"current_password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

type BecomeSellerRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Languages   []string `json:"languages"`
	HourlyRate  float64  `json:"hourly_rate"`
}

type UpdateSellerProfileRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Languages   []string `json:"languages"`
	HourlyRate  *float64 `json:"hourly_rate"`
	IsAvailable *bool    `json:"is_available"`
}

type CreateGigRequest struct {
	Title        string      `json:"title" binding:"required,min=10,max=100"`
	Description  string      `json:"description" binding:"required,min=20,max=1000"`
	Category     GigCategory `json:"category" binding:"required"`
	Price        float64     `json:"price" binding:"required,min=5,max=10000"`
	DeliveryDays int         `json:"delivery_days" binding:"required,min=1,max=90"`
	ImageURL     string      `json:"image_url"`
}

type UpdateGigRequest struct {
	Title        *string      `json:"title" binding:"omitempty,min=10,max=100"`
	Description  *string      `json:"description" binding:"omitempty,min=20,max=1000"`
	Category     *GigCategory `json:"category"`
	Price        *float64     `json:"price" binding:"omitempty,min=5,max=10000"`
	DeliveryDays *int         `json:"delivery_days" binding:"omitempty,min=1,max=90"`
	ImageURL     *string      `json:"image_url"`
}

type CreateReviewRequest struct {
	GigID   uint   `json:"gig_id" binding:"required"`
	Star    int    `json:"star" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,min=10,max=500"`
}

// GigListParams are the untrusted search parameters; GigService composes
// them into a safe query plan.
type GigListParams struct {
	UserID   uint    `form:"user_id"`
	Category string  `form:"category"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Search   string  `form:"search"`
	Sort     string  `form:"sort"`
	Page     int     `form:"page,default=1"`
	Limit    int     `form:"limit,default=10"`
}
