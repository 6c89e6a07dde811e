package errors

import "fmt"

var (
	// Токены и авторизация
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrEmptyAuthHeader      = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader    = fmt.Errorf("неверный формат заголовка авторизации")

	// Жизненный цикл заказа
	ErrOrderNotFound          = fmt.Errorf("заказ не найден")
	ErrTerminalOrderImmutable = fmt.Errorf("заказ закрыт и не подлежит изменению")
	ErrInvalidTransition      = fmt.Errorf("недопустимый переход статуса")
	ErrOrderConflict          = fmt.Errorf("заказ изменён параллельным запросом, повторите попытку")

	// Касса
	ErrLedgerPostFailed = fmt.Errorf("не удалось провести запись по кассе")

	// Общие
	ErrMasterNotFound = fmt.Errorf("мастер не найден")
	ErrNotFound       = fmt.Errorf("запись не найдена")
	ErrBadRequest     = fmt.Errorf("неверный запрос")
)

// InvalidInputError — ошибка валидации входных данных с готовым текстом для клиента.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
