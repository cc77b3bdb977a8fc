package models

// Product describes one purchasable data package. The catalog is fixed at
// startup and never mutated, so products carry no persistence metadata.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Data         string   `json:"data"`     // display string, e.g. "8 GB"
	Validity     string   `json:"validity"` // display string, e.g. "30 Hari"
	Price        int      `json:"price"`    // rupiah
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Instructions []string `json:"instructions"`
	Terms        []string `json:"terms"`
	Popular      bool     `json:"popular,omitempty"`
}

// PromoCode is a read-only promotional code shown on the home page. Applying
// one is cosmetic; the discount engine is out of scope and stays at zero.
type PromoCode struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
}
