package dto

import (
	"time"

	"github.com/lmoreno/tiendapos/internal/model"
)

// DebtorInfo identifies who carries the unpaid portion of a credit sale:
// either an existing debtor by id, or a new one by name and optional phone.
type DebtorInfo struct {
	DebtorID int
	Name     string `validate:"required_without=DebtorID"`
	Phone    string `validate:"omitempty,numeric"`
}

// Existing reports whether the info references an already registered debtor.
func (d *DebtorInfo) Existing() bool { return d.DebtorID > 0 }

// CommitSaleInput carries every write of one committed sale, so the
// repository can run them as one unit of work. Writes stay sequential and
// non-atomic; grouping them keeps the workflow contract stable if the
// storage engine ever learns transactions.
type CommitSaleInput struct {
	Date       time.Time
	Total      int
	AmountPaid int

	// Items are the cart lines; SaleID is filled in once the sale row exists.
	Items []model.SaleItem

	// StockByProduct maps product id to its new stock value.
	StockByProduct map[int]int

	// Debtor is non-nil for a credit sale; DebtAmount is total minus paid.
	Debtor     *DebtorInfo
	DebtAmount int
}
