package services

import (
	"sync"

	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. They honor the same contracts as the
// gorm-backed implementations: gorm.ErrRecordNotFound on misses,
// uniqueness violations on duplicate keys, atomic aggregate updates.

var (
	_ repositories.UserRepository   = (*fakeUserRepo)(nil)
	_ repositories.SellerRepository = (*fakeSellerRepo)(nil)
	_ repositories.ReviewRepository = (*fakeReviewRepo)(nil)
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeSellerRepo struct {
	mu       sync.Mutex
	users    *fakeUserRepo
	nextID   uint
	profiles map[uint]*models.SellerProfile // keyed by user id
}

func newFakeSellerRepo(users *fakeUserRepo) *fakeSellerRepo {
	return &fakeSellerRepo{users: users, nextID: 1, profiles: make(map[uint]*models.SellerProfile)}
}

func (f *fakeSellerRepo) GetByUserID(userID uint) (*models.SellerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeSellerRepo) Update(profile *models.SellerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.profiles[profile.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Mirrors the column whitelist of the real Update: the rating
	// aggregate is never written from a profile snapshot.
	existing.Title = profile.Title
	existing.Description = profile.Description
	existing.Skills = profile.Skills
	existing.Languages = profile.Languages
	existing.HourlyRate = profile.HourlyRate
	existing.IsAvailable = profile.IsAvailable
	return nil
}

func (f *fakeSellerRepo) CreateWithRoleFlip(userID uint, profile *models.SellerProfile) error {
	f.users.mu.Lock()
	user, ok := f.users.users[userID]
	if ok && user.Role == models.RoleBuyer {
		user.Role = models.RoleSeller
	} else {
		ok = false
	}
	f.users.mu.Unlock()
	if !ok {
		return models.ErrAlreadySeller
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	profile.ID = f.nextID
	f.nextID++
	profile.UserID = userID
	cp := *profile
	f.profiles[userID] = &cp
	return nil
}

type fakeGigRepo struct {
	mu        sync.Mutex
	nextID    uint
	gigs      map[uint]*models.Gig
	lastQuery repositories.GigQuery
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{nextID: 1, gigs: make(map[uint]*models.Gig)}
}

func (f *fakeGigRepo) Create(gig *models.Gig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	gig.ID = f.nextID
	f.nextID++
	cp := *gig
	f.gigs[gig.ID] = &cp
	return nil
}

func (f *fakeGigRepo) GetByID(id uint) (*models.Gig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.gigs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	cp.ComputeRating()
	return &cp, nil
}

func (f *fakeGigRepo) GetList(q repositories.GigQuery) ([]models.Gig, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q

	var matched []models.Gig
	for _, g := range f.gigs {
		if g.Status != models.GigActive && g.UserID != q.OwnerView {
			continue
		}
		if q.UserID > 0 && g.UserID != q.UserID {
			continue
		}
		if q.Category != "" && g.Category != q.Category {
			continue
		}
		if q.HasMinPrice && g.Price < q.MinPrice {
			continue
		}
		if q.HasMaxPrice && g.Price > q.MaxPrice {
			continue
		}
		cp := *g
		cp.ComputeRating()
		matched = append(matched, cp)
	}

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []models.Gig{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], total, nil
}

func (f *fakeGigRepo) Update(gig *models.Gig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.gigs[gig.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Mirrors the column whitelist of the real Update: rating columns
	// are never written here.
	existing.Title = gig.Title
	existing.Description = gig.Description
	existing.Category = gig.Category
	existing.Price = gig.Price
	existing.DeliveryDays = gig.DeliveryDays
	existing.ImageURL = gig.ImageURL
	existing.Status = gig.Status
	return nil
}

func (f *fakeGigRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.gigs, id)
	return nil
}

type reviewKey struct {
	gigID  uint
	userID uint
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	gigs    *fakeGigRepo
	sellers *fakeSellerRepo
	nextID  uint
	reviews map[reviewKey]*models.Review
}

func newFakeReviewRepo(gigs *fakeGigRepo, sellers *fakeSellerRepo) *fakeReviewRepo {
	return &fakeReviewRepo{gigs: gigs, sellers: sellers, nextID: 1, reviews: make(map[reviewKey]*models.Review)}
}

func (f *fakeReviewRepo) CreateWithAggregates(review *models.Review, sellerUserID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := reviewKey{gigID: review.GigID, userID: review.UserID}
	if _, exists := f.reviews[key]; exists {
		return models.ErrDuplicateReview
	}
	review.ID = f.nextID
	f.nextID++
	cp := *review
	f.reviews[key] = &cp

	// Same increments the SQL applies.
	f.gigs.mu.Lock()
	if g, ok := f.gigs.gigs[review.GigID]; ok {
		g.TotalStars += int64(review.Star)
		g.StarNumber++
		g.ReviewsCount++
	}
	f.gigs.mu.Unlock()

	if f.sellers != nil {
		f.sellers.mu.Lock()
		if p, ok := f.sellers.profiles[sellerUserID]; ok {
			p.RatingAverage = (p.RatingAverage*float64(p.RatingCount) + float64(review.Star)) / float64(p.RatingCount+1)
			p.RatingCount++
		}
		f.sellers.mu.Unlock()
	}
	return nil
}

func (f *fakeReviewRepo) GetByGig(gigID uint) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Review
	for k, r := range f.reviews {
		if k.gigID == gigID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) RecomputeGigAggregates(gigID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var stars, cnt int64
	for k, r := range f.reviews {
		if k.gigID == gigID {
			stars += int64(r.Star)
			cnt++
		}
	}

	f.gigs.mu.Lock()
	if g, ok := f.gigs.gigs[gigID]; ok {
		g.TotalStars = stars
		g.StarNumber = cnt
		g.ReviewsCount = cnt
	}
	f.gigs.mu.Unlock()
	return nil
}
