package utils

import (
	"context"

	"repair-system/pkg/contextkeys"
	apperrors "repair-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(int64)
	if !ok || id == 0 {
		return 0, apperrors.ErrInvalidToken
	}
	return id, nil
}

func GetUserLabelFromCtx(ctx context.Context) string {
	label, _ := ctx.Value(contextkeys.UserLabelKey).(string)
	return label
}

// GetCitiesFromCtx возвращает срез городов пользователя; nil — доступ без ограничений.
func GetCitiesFromCtx(ctx context.Context) []string {
	cities, _ := ctx.Value(contextkeys.CitiesKey).([]string)
	return cities
}
