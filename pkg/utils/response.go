package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "repair-system/pkg/errors"
)

type HttpResponse struct {
	Status     bool        `json:"status"`
	Body       interface{} `json:"body,omitempty"`
	Message    string      `json:"message"`
	TotalCount *uint64     `json:"total_count,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.TotalCount = &total[0]
	}
	return ctx.JSON(code, response)
}

// ErrorList — соответствие известных ошибок HTTP-статусам.
var ErrorList = map[error]int{
	apperrors.ErrOrderNotFound:          http.StatusNotFound,
	apperrors.ErrMasterNotFound:         http.StatusNotFound,
	apperrors.ErrNotFound:               http.StatusNotFound,
	apperrors.ErrTerminalOrderImmutable: http.StatusConflict,
	apperrors.ErrOrderConflict:          http.StatusConflict,
	apperrors.ErrInvalidTransition:      http.StatusUnprocessableEntity,
	apperrors.ErrBadRequest:             http.StatusBadRequest,
	apperrors.ErrEmptyAuthHeader:        http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:      http.StatusUnauthorized,
	apperrors.ErrInvalidToken:           http.StatusUnauthorized,
	apperrors.ErrTokenExpired:           http.StatusUnauthorized,
	apperrors.ErrInvalidSigningMethod:   http.StatusUnauthorized,
}

func ErrorResponse(ctx echo.Context, err error) error {
	message := "внутренняя ошибка сервера"
	code := http.StatusInternalServerError

	var invalidInput *apperrors.InvalidInputError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &invalidInput):
		message = invalidInput.Message
		code = http.StatusBadRequest
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	default:
		for known, statusCode := range ErrorList {
			if errors.Is(err, known) {
				message = known.Error()
				code = statusCode
				break
			}
		}
	}

	response := &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	}
	return ctx.JSON(code, response)
}
