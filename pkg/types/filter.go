package types

import "time"

// OrderFilter — фильтры списка заказов: простые равенства и подстрочный поиск.
// Сортировку фильтр не несёт: порядок очереди задаётся приоритетом статусов.
type OrderFilter struct {
	Status string
	City   string
	Master string // имя мастера (подстрока)
	Search string // телефон / адрес / номер заказа

	// Cities — срез городов из токена пользователя; пустой — без ограничений.
	Cities []string
}

// LedgerFilter — фильтры списка записей кассы.
type LedgerFilter struct {
	City string
	From *time.Time
	To   *time.Time

	Cities []string
}

// ReportFilter — параметры отчётов: город и полузакрытое окно [From, To).
type ReportFilter struct {
	City string
	From *time.Time
	To   *time.Time

	Cities []string
}
