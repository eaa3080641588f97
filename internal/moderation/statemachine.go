// Package moderation holds the review moderation state machine: which
// status transitions exist, who may trigger them, and what happens to the
// dispute reason on each one. It is pure; persistence and school-ownership
// checks belong to the service layer.
package moderation

import (
	"strings"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/pkg/apperrors"
)

type Action string

const (
	// ActionSubmit publishes a new review. Reviews are auto-published:
	// there is no pre-publication moderation queue.
	ActionSubmit Action = "submit"
	// ActionReport is a school owner's dispute of a published review.
	ActionReport Action = "report"
	// ActionAcceptReport upholds a dispute: the review is hidden and the
	// dispute reason is retained as the rejection justification.
	ActionAcceptReport Action = "accept_report"
	// ActionDenyReport dismisses a dispute: the review is restored and the
	// reason cleared.
	ActionDenyReport Action = "deny_report"
)

// DecisionAction maps an admin's accept flag to the transition it triggers.
func DecisionAction(accept bool) Action {
	if accept {
		return ActionAcceptReport
	}
	return ActionDenyReport
}

// Outcome is the result of a legal transition: the next status and the
// report field to persist alongside it (nil clears it). Both are written
// atomically by the repository.
type Outcome struct {
	Status models.ReviewStatus
	Report *string
}

type transition struct {
	from  models.ReviewStatus
	to    models.ReviewStatus
	actor models.UserRole
}

var transitions = map[Action]transition{
	ActionSubmit:       {from: "", to: models.ReviewStatusApproved, actor: models.UserRoleParent},
	ActionReport:       {from: models.ReviewStatusApproved, to: models.ReviewStatusPending, actor: models.UserRoleSchoolOwner},
	ActionAcceptReport: {from: models.ReviewStatusPending, to: models.ReviewStatusRejected, actor: models.UserRoleAdmin},
	ActionDenyReport:   {from: models.ReviewStatusPending, to: models.ReviewStatusApproved, actor: models.UserRoleAdmin},
}

// Apply checks that action is legal for the actor's role from the current
// status and returns the outcome. current is the status already persisted
// ("" for a review being created). reason is the dispute text carried by
// ActionReport; prior is the report already stored on the review.
//
// No transition leaves rejected: only a fresh decision cycle starting from
// a new report could, and reports are only accepted on approved reviews.
func Apply(current models.ReviewStatus, actor models.UserRole, action Action, reason string, prior *string) (Outcome, *apperrors.AppError) {
	t, ok := transitions[action]
	if !ok {
		return Outcome{}, apperrors.ErrInvalidOperation("moderation", "Unknown moderation action")
	}

	if actor != t.actor {
		return Outcome{}, apperrors.ErrInsufficientPermissions
	}

	if current != t.from {
		switch action {
		case ActionReport:
			return Outcome{}, apperrors.ErrReviewNotReportable
		case ActionAcceptReport, ActionDenyReport:
			return Outcome{}, apperrors.ErrNothingToDecide
		default:
			return Outcome{}, apperrors.ErrInvalidState("moderation", "Transition not legal from current status")
		}
	}

	switch action {
	case ActionSubmit:
		return Outcome{Status: t.to, Report: nil}, nil

	case ActionReport:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return Outcome{}, apperrors.NewBadRequestError("A report must carry a non-empty reason")
		}
		return Outcome{Status: t.to, Report: &reason}, nil

	case ActionAcceptReport:
		// The dispute reason becomes the rejection justification, so a
		// rejected review is never stored without one.
		if prior == nil || strings.TrimSpace(*prior) == "" {
			return Outcome{}, apperrors.ErrInvalidState("moderation", "Pending review has no dispute reason on record")
		}
		return Outcome{Status: t.to, Report: prior}, nil

	case ActionDenyReport:
		return Outcome{Status: t.to, Report: nil}, nil
	}

	return Outcome{}, apperrors.ErrInvalidOperation("moderation", "Unknown moderation action")
}
