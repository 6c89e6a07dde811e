package dto

type MasterReportItemDTO struct {
	MasterID     int64   `json:"master_id"`
	MasterName   string  `json:"master_name"`
	OrderCount   int     `json:"order_count"`
	Revenue      float64 `json:"revenue"`
	CleanTotal   float64 `json:"clean_total"`
	Salary       float64 `json:"salary"`
	AverageCheck float64 `json:"average_check"`
}

type CityReportItemDTO struct {
	City          string  `json:"city"`
	OrderCount    int     `json:"order_count"`
	Revenue       float64 `json:"revenue"`
	CompanyIncome float64 `json:"company_income"`
	CashIncome    float64 `json:"cash_income"`
	CashExpense   float64 `json:"cash_expense"`
	CashBalance   float64 `json:"cash_balance"`
}
