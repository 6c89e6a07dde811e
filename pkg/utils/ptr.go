package utils

// Ptr возвращает указатель на значение; удобно для литералов в DTO и тестах.
func Ptr[T any](v T) *T {
	return &v
}
