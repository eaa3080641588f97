package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestApply_SubmitCreatesApproved(t *testing.T) {
	out, err := Apply("", models.UserRoleParent, ActionSubmit, "", nil)
	require.Nil(t, err)
	assert.Equal(t, models.ReviewStatusApproved, out.Status)
	assert.Nil(t, out.Report)
}

func TestApply_ReportRequiresReason(t *testing.T) {
	_, err := Apply(models.ReviewStatusApproved, models.UserRoleSchoolOwner, ActionReport, "   ", nil)
	require.NotNil(t, err)
	assert.Equal(t, apperrors.CodeValidationFailed, err.Code)
}

func TestApply_ReportMovesToPendingWithReason(t *testing.T) {
	out, err := Apply(models.ReviewStatusApproved, models.UserRoleSchoolOwner, ActionReport, "inappropriate language", nil)
	require.Nil(t, err)
	assert.Equal(t, models.ReviewStatusPending, out.Status)
	require.NotNil(t, out.Report)
	assert.Equal(t, "inappropriate language", *out.Report)
}

func TestApply_DoubleReportFails(t *testing.T) {
	// Already pending: a second report has nothing approved to dispute.
	_, err := Apply(models.ReviewStatusPending, models.UserRoleSchoolOwner, ActionReport, "spam", strPtr("spam"))
	require.NotNil(t, err)
	assert.Equal(t, apperrors.CodeInvalidStatus, err.Code)
}

func TestApply_AcceptRetainsReason(t *testing.T) {
	out, err := Apply(models.ReviewStatusPending, models.UserRoleAdmin, ActionAcceptReport, "", strPtr("inappropriate language"))
	require.Nil(t, err)
	assert.Equal(t, models.ReviewStatusRejected, out.Status)
	require.NotNil(t, out.Report)
	assert.Equal(t, "inappropriate language", *out.Report)
}

func TestApply_DenyClearsReason(t *testing.T) {
	out, err := Apply(models.ReviewStatusPending, models.UserRoleAdmin, ActionDenyReport, "", strPtr("spam"))
	require.Nil(t, err)
	assert.Equal(t, models.ReviewStatusApproved, out.Status)
	assert.Nil(t, out.Report)
}

func TestApply_DecisionOnNonPendingFails(t *testing.T) {
	for _, status := range []models.ReviewStatus{models.ReviewStatusApproved, models.ReviewStatusRejected} {
		_, err := Apply(status, models.UserRoleAdmin, ActionAcceptReport, "", strPtr("x"))
		require.NotNil(t, err, "status %s", status)
		assert.Equal(t, apperrors.CodeInvalidStatus, err.Code)
	}
}

func TestApply_ActorRoleGuards(t *testing.T) {
	tests := []struct {
		name   string
		status models.ReviewStatus
		actor  models.UserRole
		action Action
	}{
		{"parent cannot report", models.ReviewStatusApproved, models.UserRoleParent, ActionReport},
		{"owner cannot decide", models.ReviewStatusPending, models.UserRoleSchoolOwner, ActionAcceptReport},
		{"parent cannot decide", models.ReviewStatusPending, models.UserRoleParent, ActionDenyReport},
		{"admin cannot submit", "", models.UserRoleAdmin, ActionSubmit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.status, tt.actor, tt.action, "reason", strPtr("reason"))
			require.NotNil(t, err)
			assert.Equal(t, apperrors.CodeForbidden, err.Code)
		})
	}
}

func TestApply_NoWayOutOfRejected(t *testing.T) {
	reason := strPtr("kept")
	for _, action := range []Action{ActionReport, ActionAcceptReport, ActionDenyReport} {
		for _, actor := range []models.UserRole{models.UserRoleParent, models.UserRoleSchoolOwner, models.UserRoleAdmin} {
			_, err := Apply(models.ReviewStatusRejected, actor, action, "again", reason)
			assert.NotNil(t, err, "action %s by %s escaped rejected", action, actor)
		}
	}
}

// Closure: no legal transition yields pending or rejected without a report.
func TestApply_ClosureInvariant(t *testing.T) {
	type step struct {
		status models.ReviewStatus
		actor  models.UserRole
		action Action
		reason string
		prior  *string
	}
	steps := []step{
		{"", models.UserRoleParent, ActionSubmit, "", nil},
		{models.ReviewStatusApproved, models.UserRoleSchoolOwner, ActionReport, "bad faith", nil},
		{models.ReviewStatusPending, models.UserRoleAdmin, ActionAcceptReport, "", strPtr("bad faith")},
		{models.ReviewStatusPending, models.UserRoleAdmin, ActionDenyReport, "", strPtr("bad faith")},
	}

	for _, s := range steps {
		out, err := Apply(s.status, s.actor, s.action, s.reason, s.prior)
		require.Nil(t, err)
		if out.Status == models.ReviewStatusPending || out.Status == models.ReviewStatusRejected {
			assert.NotNil(t, out.Report, "hidden status %s missing report", out.Status)
		}
	}
}
