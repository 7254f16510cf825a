package sales

import "github.com/google/uuid"

// State of one sale attempt. The attempt lives in memory only; nothing is
// persisted until a checkout commits.
type State string

const (
	StateBuilding       State = "building"
	StateValidating     State = "validating"
	StateAwaitingCredit State = "awaiting_credit"
	StateCommitted      State = "committed"
	StateRejected       State = "rejected"
)

// Line is one product+quantity entry of the cart. Duplicate product ids are
// allowed as separate lines and are never merged; all stock and total math
// sums across lines per product.
type Line struct {
	ProductID int
	Quantity  int
}

// Cart accumulates lines for one sale attempt. Committed and Rejected are
// terminal; a new cart is needed afterwards.
type Cart struct {
	id    string
	state State
	lines []Line
}

func NewCart() *Cart {
	return &Cart{
		id:    uuid.New().String(),
		state: StateBuilding,
	}
}

// ID is the attempt's correlation id, used to tie the commit's log lines
// together.
func (c *Cart) ID() string { return c.id }

func (c *Cart) State() State { return c.state }

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Append adds a line without any stock check; the usecase validates first.
func (c *Cart) Append(line Line) {
	c.lines = append(c.lines, line)
}

// SetState moves the attempt along the workflow. Transitions are driven by
// the sales usecase only.
func (c *Cart) SetState(s State) {
	c.state = s
}

// SumQuantity totals the quantity of one product across all lines.
func (c *Cart) SumQuantity(productID int) int {
	sum := 0
	for _, l := range c.lines {
		if l.ProductID == productID {
			sum += l.Quantity
		}
	}
	return sum
}

// QuantityByProduct sums each product's quantity across all lines.
func (c *Cart) QuantityByProduct() map[int]int {
	totals := make(map[int]int, len(c.lines))
	for _, l := range c.lines {
		totals[l.ProductID] += l.Quantity
	}
	return totals
}
