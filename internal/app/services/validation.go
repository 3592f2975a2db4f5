package services

import (
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// validateID rejects ids that can never exist
func validateID(id int64, what string) error {
	if id <= 0 {
		return apperrors.NewBusinessRuleErrorf("El id de %s debe ser un número positivo", what)
	}
	return nil
}

// firstError returns the first non-nil error
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func requireEntity[T any](entity *T, what string) error {
	if entity == nil {
		return apperrors.NewBusinessRuleErrorf("Los datos de %s son requeridos", what)
	}
	return nil
}

func requireDate(d models.Date, message string) error {
	if d.IsZero() {
		return apperrors.NewBusinessRuleError(message)
	}
	return nil
}
