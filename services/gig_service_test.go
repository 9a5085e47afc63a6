package services

import (
	"testing"

	"gig-marketplace/models"
	"gig-marketplace/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gigReq() models.CreateGigRequest {
	return models.CreateGigRequest{
		Title:        "I will build your REST API",
		Description:  "Production-grade API development with tests and docs.",
		Category:     models.CategoryProgramming,
		Price:        150,
		DeliveryDays: 7,
	}
}

func TestComposeGigQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, empty, err := ComposeGigQuery(models.GigListParams{}, 0)
		require.NoError(t, err)
		assert.False(t, empty)
		assert.Equal(t, "created_at", q.OrderColumn)
		assert.True(t, q.OrderDescending)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, 10, q.Limit)
	})

	t.Run("unknown sort falls back to newest", func(t *testing.T) {
		known, _, err := ComposeGigQuery(models.GigListParams{Sort: "newest"}, 0)
		require.NoError(t, err)
		unknown, _, err := ComposeGigQuery(models.GigListParams{Sort: "cheapest-first"}, 0)
		require.NoError(t, err)
		assert.Equal(t, known, unknown)
	})

	t.Run("sort whitelist", func(t *testing.T) {
		q, _, _ := ComposeGigQuery(models.GigListParams{Sort: "oldest"}, 0)
		assert.Equal(t, "created_at", q.OrderColumn)
		assert.False(t, q.OrderDescending)

		q, _, _ = ComposeGigQuery(models.GigListParams{Sort: "priceAsc"}, 0)
		assert.Equal(t, "price", q.OrderColumn)
		assert.False(t, q.OrderDescending)

		q, _, _ = ComposeGigQuery(models.GigListParams{Sort: "priceDesc"}, 0)
		assert.Equal(t, "price", q.OrderColumn)
		assert.True(t, q.OrderDescending)
	})

	t.Run("unknown category is empty result not error", func(t *testing.T) {
		_, empty, err := ComposeGigQuery(models.GigListParams{Category: "Gardening"}, 0)
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("half-open price intervals", func(t *testing.T) {
		q, _, err := ComposeGigQuery(models.GigListParams{MinPrice: 10}, 0)
		require.NoError(t, err)
		assert.True(t, q.HasMinPrice)
		assert.False(t, q.HasMaxPrice)

		q, _, err = ComposeGigQuery(models.GigListParams{MaxPrice: 50}, 0)
		require.NoError(t, err)
		assert.False(t, q.HasMinPrice)
		assert.True(t, q.HasMaxPrice)
	})

	t.Run("inverted price range rejected", func(t *testing.T) {
		_, _, err := ComposeGigQuery(models.GigListParams{MinPrice: 50, MaxPrice: 10}, 0)
		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("pagination math", func(t *testing.T) {
		q, _, err := ComposeGigQuery(models.GigListParams{Page: 3, Limit: 20}, 0)
		require.NoError(t, err)
		assert.Equal(t, 40, q.Offset)
		assert.Equal(t, 20, q.Limit)

		q, _, _ = ComposeGigQuery(models.GigListParams{Page: -1, Limit: 500}, 0)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, 50, q.Limit, "limit clamped")
	})
}

func TestCreateGigRequiresSeller(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)

	_, err := svc.CreateGig(Actor{ID: 1, Role: models.RoleBuyer}, gigReq())
	assert.ErrorIs(t, err, models.ErrForbidden)

	gig, err := svc.CreateGig(Actor{ID: 1, Role: models.RoleSeller}, gigReq())
	require.NoError(t, err)
	assert.Equal(t, models.GigActive, gig.Status)
	assert.Equal(t, uint(1), gig.UserID)
}

func TestListGigsPriceRange(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	seller := Actor{ID: 1, Role: models.RoleSeller}

	for _, price := range []float64{5, 10, 30, 50, 120} {
		req := gigReq()
		req.Price = price
		_, err := svc.CreateGig(seller, req)
		require.NoError(t, err)
	}

	gigs, total, err := svc.ListGigs(models.GigListParams{MinPrice: 10, MaxPrice: 50}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, g := range gigs {
		assert.GreaterOrEqual(t, g.Price, 10.0)
		assert.LessOrEqual(t, g.Price, 50.0)
	}
}

func TestListGigsUnknownCategory(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	_, err := svc.CreateGig(Actor{ID: 1, Role: models.RoleSeller}, gigReq())
	require.NoError(t, err)

	gigs, total, err := svc.ListGigs(models.GigListParams{Category: "Cooking"}, 0)
	require.NoError(t, err)
	assert.Empty(t, gigs)
	assert.Zero(t, total)
	assert.Zero(t, repo.lastQuery, "store never touched for an impossible filter")
}

func TestInactiveGigVisibility(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	owner := Actor{ID: 1, Role: models.RoleSeller}

	gig, err := svc.CreateGig(owner, gigReq())
	require.NoError(t, err)
	_, err = svc.ToggleStatus(owner, gig.ID)
	require.NoError(t, err)

	// Public search does not surface it.
	_, total, err := svc.ListGigs(models.GigListParams{}, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	// The owner still sees it.
	_, total, err = svc.ListGigs(models.GigListParams{UserID: owner.ID}, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Direct fetch: owner yes, stranger no.
	_, err = svc.GetGig(gig.ID, owner.ID)
	assert.NoError(t, err)
	_, err = svc.GetGig(gig.ID, 99)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateGigOwnership(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	owner := Actor{ID: 1, Role: models.RoleSeller}

	gig, err := svc.CreateGig(owner, gigReq())
	require.NoError(t, err)

	newTitle := "I will build your GraphQL API"
	_, err = svc.UpdateGig(Actor{ID: 2, Role: models.RoleSeller}, gig.ID, models.UpdateGigRequest{Title: &newTitle})
	assert.ErrorIs(t, err, models.ErrForbidden)

	updated, err := svc.UpdateGig(owner, gig.ID, models.UpdateGigRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	admin := Actor{ID: 3, Role: models.RoleAdmin}
	_, err = svc.UpdateGig(admin, gig.ID, models.UpdateGigRequest{Title: &newTitle})
	assert.NoError(t, err)
}

func TestDeleteGigOwnership(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	owner := Actor{ID: 1, Role: models.RoleSeller}

	gig, err := svc.CreateGig(owner, gigReq())
	require.NoError(t, err)

	err = svc.DeleteGig(Actor{ID: 2, Role: models.RoleSeller}, gig.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = svc.DeleteGig(owner, gig.ID)
	require.NoError(t, err)

	err = svc.DeleteGig(owner, gig.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateNeverTouchesRating(t *testing.T) {
	repo := newFakeGigRepo()
	svc := NewGigService(repo)
	owner := Actor{ID: 1, Role: models.RoleSeller}

	gig, err := svc.CreateGig(owner, gigReq())
	require.NoError(t, err)

	// Seed an aggregate as if reviews had arrived.
	repo.mu.Lock()
	repo.gigs[gig.ID].TotalStars = 12
	repo.gigs[gig.ID].StarNumber = 3
	repo.gigs[gig.ID].ReviewsCount = 3
	repo.mu.Unlock()

	price := 999.0
	_, err = svc.UpdateGig(owner, gig.ID, models.UpdateGigRequest{Price: &price})
	require.NoError(t, err)
	_, err = svc.ToggleStatus(owner, gig.ID)
	require.NoError(t, err)

	stored, err := svc.GetGig(gig.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.ReviewsCount)
	assert.InDelta(t, 4.0, stored.Rating, 1e-9)
}

var _ repositories.GigRepository = (*fakeGigRepo)(nil)
