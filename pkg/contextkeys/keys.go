package contextkeys

type contextKey string

const (
	// UserIDKey — идентификатор аутентифицированного пользователя.
	UserIDKey contextKey = "userID"
	// UserLabelKey — отображаемое имя пользователя (для журналов и меток).
	UserLabelKey contextKey = "userLabel"
	// CitiesKey — города, доступные пользователю; пустой список — без ограничений.
	CitiesKey contextKey = "cities"
)
