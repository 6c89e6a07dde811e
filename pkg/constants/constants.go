package constants

// Направления движения средств по кассе.
const (
	LedgerIncome  = "income"
	LedgerExpense = "expense"
)

// Метка создателя для записей, которые касса проводит автоматически.
const LedgerSystemCreator = "system"

// Подстановка в назначение платежа, когда мастер не назначен.
const MasterUnassigned = "мастер не назначен"
