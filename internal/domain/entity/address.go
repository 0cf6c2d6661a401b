package entity

// Address is a shipping address stored inside a user's profile document.
type Address struct {
	Label       string `json:"label"`       // A user-defined label, e.g., "Home", "Office".
	FullAddress string `json:"fullAddress"` // The full, human-readable street address.
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	IsDefault   bool   `json:"isDefault"` // Indicates if this is the default shipping address.
}
