package model

type Product struct {
	BaseModel
	Name  string
	Price int // unit price in integer currency units
	Stock int
	Cost  int // purchase cost, 0 <= Cost < Price
	// ImagePath is optional; nil means no image was attached.
	ImagePath *string
}

// Available reports whether the product can currently be sold.
func (p *Product) Available() bool {
	return p.Stock > 0
}
