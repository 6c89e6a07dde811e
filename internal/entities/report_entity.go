package entities

// MasterReportRow — свод по одному мастеру: только закрытые со статусом DONE заказы.
type MasterReportRow struct {
	MasterID     int64
	MasterName   string
	OrderCount   int
	Revenue      float64 // сумма settlement
	CleanTotal   float64 // сумма net
	Salary       float64 // сумма payout
	AverageCheck float64 // round(Revenue / OrderCount)
}

// CityReportRow — свод по городу: закрытые заказы плюс сальдо кассы за то же окно.
// CompanyIncome — та же сумма payout, что идёт мастерам как зарплата:
// исходная система трактует половину net двумя способами сразу.
type CityReportRow struct {
	City          string
	OrderCount    int
	Revenue       float64
	CompanyIncome float64
	CashIncome    float64
	CashExpense   float64
	CashBalance   float64
}
