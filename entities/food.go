package entities

const (
	StockStatusOut = "Out of Stock"
	StockStatusLow = "Low Stock"
	StockStatusIn  = "In Stock"
)

// Food is a catalog dish. The catalog is compiled in, so this is a plain value
// type with no GORM mapping.
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (f Food) StockStatus() string {
	switch {
	case f.Stock == 0:
		return StockStatusOut
	case f.Stock < 10:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
