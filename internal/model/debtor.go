package model

import "time"

type Debtor struct {
	BaseModel
	Name string
	// Phone is optional; nil means none was recorded.
	Phone *string
}

// Debt is the unpaid portion of one credit sale.
type Debt struct {
	BaseModel
	SaleID    int
	DebtorID  int
	Amount    int
	CreatedAt time.Time
}

// Payment (an "abono") reduces a debtor's outstanding balance. It is not
// tied to a specific debt.
type Payment struct {
	BaseModel
	DebtorID int
	Amount   int
	Date     time.Time
}
