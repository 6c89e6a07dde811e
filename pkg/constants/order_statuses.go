package constants

// --- СТАТУСЫ ЗАКАЗОВ (коды совпадают со значениями в БД) ---
const (
	StatusPending    = "PENDING"
	StatusAccepted   = "ACCEPTED"
	StatusInProgress = "IN_PROGRESS"
	StatusModern     = "MODERN"
	StatusDone       = "DONE"
	StatusRefused    = "REFUSED"
	StatusNotOrdered = "NOT_ORDERED"
)

// Терминальные статусы: заказ, попавший в один из них, больше не меняется.
var TerminalStatuses = []string{
	StatusDone,
	StatusRefused,
	StatusNotOrdered,
}

func IsTerminalStatus(code string) bool {
	for _, s := range TerminalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

func IsKnownStatus(code string) bool {
	_, ok := queueRanks[code]
	return ok
}

// Приоритеты живой очереди: чем меньше ранг, тем выше заказ в списке.
var queueRanks = map[string]int{
	StatusPending:    1,
	StatusAccepted:   2,
	StatusInProgress: 3,
	StatusModern:     4,
	StatusDone:       5,
	StatusRefused:    6,
	StatusNotOrdered: 7,
}

// Нераспознанный статус уходит в самый конец очереди.
const unknownStatusRank = 100

func QueueRank(code string) int {
	if r, ok := queueRanks[code]; ok {
		return r
	}
	return unknownStatusRank
}
