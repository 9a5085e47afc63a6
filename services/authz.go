package services

import (
	"gig-marketplace/models"
)

// Action tags the operation being authorized.
type Action string

const (
	ActionCreateGig           Action = "gig.create"
	ActionUpdateGig           Action = "gig.update"
	ActionDeleteGig           Action = "gig.delete"
	ActionToggleGig           Action = "gig.toggle"
	ActionBecomeSeller        Action = "seller.become"
	ActionUpdateSellerProfile Action = "seller.update"
	ActionWriteReview         Action = "review.create"
)

// Actor is a snapshot of the authenticated identity.
type Actor struct {
	ID     uint
	Role   models.UserRole
	Banned bool
}

// Resource is a snapshot of the target; OwnerID is zero for actions that
// create a resource.
type Resource struct {
	OwnerID uint
}

// Authorize decides whether the actor may perform the action on the
// resource. It is a pure function of its arguments: rules are evaluated
// in order and the first match wins.
func Authorize(actor Actor, action Action, resource Resource) error {
	if actor.Banned {
		return models.ErrForbidden
	}

	switch action {
	case ActionUpdateGig, ActionDeleteGig, ActionToggleGig, ActionUpdateSellerProfile:
		if actor.Role == models.RoleAdmin {
			return nil
		}
		if resource.OwnerID != actor.ID {
			return models.ErrForbidden
		}
		return nil

	case ActionCreateGig:
		if actor.Role != models.RoleSeller {
			return models.ErrForbidden
		}
		return nil

	case ActionBecomeSeller:
		if actor.Role == models.RoleSeller {
			return models.ErrAlreadySeller
		}
		if actor.Role != models.RoleBuyer {
			return models.ErrForbidden
		}
		return nil

	case ActionWriteReview:
		return nil

	default:
		return models.ErrForbidden
	}
}
