package model

import "time"

type Sale struct {
	BaseModel
	Date   time.Time
	Total  int
	Profit int // min(amount paid, total) at commit time
}

// SaleItem is one product+quantity line of a committed sale. A sale keeps
// one item per cart line; duplicate product lines are not merged.
type SaleItem struct {
	BaseModel
	SaleID    int
	ProductID int
	Quantity  int
	Date      time.Time
}
