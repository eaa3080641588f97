package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"schoolhub_backend/internal/models"
)

// registerCustomRules wires domain-enum rules into the validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration; refuse to run with it.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-review-status", validateReviewStatus)
	mustRegister("is-user-role", validateUserRole)
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	return models.ValidReviewStatus(models.ReviewStatus(fl.Field().String()))
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.ValidUserRole(models.UserRole(fl.Field().String()))
}
