package apperrors

import (
	"net/http"
)

// Factories and predefined values for review-moderation business errors.
// The four business-rule categories (not-found, forbidden, invalid-state,
// conflict) always carry a specific message the API layer can surface as-is.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a duplicate-submission or lost optimistic-concurrency
// race as a 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidState reports a moderation transition that is not legal from the
// review's current status. Mapped to 409: the resource exists but its state
// forbids the operation.
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports a request that no state could make legal.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Review moderation ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

var ErrReviewAlreadyExists = New(
	CodeConflict,
	"review",
	"A review for this school already exists for this parent",
	http.StatusConflict,
)

var ErrReviewNotReportable = New(
	CodeInvalidStatus,
	"moderation",
	"Only a published (approved) review can be reported",
	http.StatusConflict,
)

var ErrNothingToDecide = New(
	CodeInvalidStatus,
	"moderation",
	"Review has no pending dispute to decide",
	http.StatusConflict,
)

var ErrNotSchoolOwner = New(
	CodeForbidden,
	"moderation",
	"Only the owner of the reviewed school can report its reviews",
	http.StatusForbidden,
)

// --- Users and auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"A user with this email already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"user",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Schools ---

var ErrSchoolNotFound = New(
	CodeNotFound,
	"school",
	"School not found",
	http.StatusNotFound,
)
