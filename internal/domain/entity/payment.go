package entity

// PaymentIntent is the provider's record of one payment attempt.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"` // Minor currency units.
	Currency     string `json:"currency"`
}

// PaymentClientConfig is what the mobile payment sheet needs to start.
type PaymentClientConfig struct {
	PublishableKey string `json:"publishableKey"`
	URLScheme      string `json:"urlScheme"`
}
