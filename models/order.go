package models

import "time"

type PaymentType string
type PaymentProvider string

const (
	// Payment types offered at checkout
	PaymentTypeEwallet PaymentType = "ewallet"
	PaymentTypeBank    PaymentType = "bank"
	PaymentTypeCard    PaymentType = "card"

	// E-wallet providers
	ProviderDana    PaymentProvider = "dana"
	ProviderOvo     PaymentProvider = "ovo"
	ProviderGopay   PaymentProvider = "gopay"
	ProviderLinkAja PaymentProvider = "linkaja"

	// Bank transfer providers
	ProviderBCA     PaymentProvider = "bca"
	ProviderMandiri PaymentProvider = "mandiri"
	ProviderBNI     PaymentProvider = "bni"
	ProviderBRI     PaymentProvider = "bri"
)

// DefaultProvider returns the provider preselected for a payment type.
func DefaultProvider(t PaymentType) PaymentProvider {
	switch t {
	case PaymentTypeBank:
		return ProviderBCA
	case PaymentTypeEwallet:
		return ProviderDana
	default:
		return ""
	}
}

// CustomerInfo holds the contact fields collected at checkout. All three are
// required non-empty; no further format validation is performed.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"` // the XL number the package activates on
}

// PaymentSelection is the chosen payment method. It is never validated and
// never submitted anywhere; checkout is simulated.
type PaymentSelection struct {
	Type     PaymentType     `json:"type"`
	Provider PaymentProvider `json:"provider"`
}

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Reference     string      `gorm:"uniqueIndex" json:"reference"`
	SessionID     string      `gorm:"index" json:"session_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	PaymentType   string      `json:"payment_type"`
	PaymentProv   string      `json:"payment_provider"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      int         `json:"subtotal"`
	Discount      int         `json:"discount"`
	Total         int         `json:"total"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderID   uint   `gorm:"index" json:"-"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Data      string `json:"data"`
	Validity  string `json:"validity"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}
