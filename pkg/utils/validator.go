package utils

import (
	"github.com/go-playground/validator/v10"

	apperrors "repair-system/pkg/errors"
)

// Validator адаптирует go-playground/validator под echo.Validator.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return apperrors.NewInvalidInputError("поле '%s' не прошло проверку '%s'", fe.Field(), fe.Tag())
		}
		return apperrors.NewInvalidInputError("ошибка валидации запроса")
	}
	return nil
}
