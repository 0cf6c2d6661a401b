package entity

// ListingState distinguishes a loaded collection from an empty or failed one.
type ListingState string

const (
	ListingReady  ListingState = "ready"
	ListingEmpty  ListingState = "empty"
	ListingFailed ListingState = "failed"
)

// Listing is a full collection fetched for an admin screen.
type Listing[T any] struct {
	State ListingState `json:"state"`
	Items []T          `json:"items"`
	Error string       `json:"error,omitempty"`
}

// NewListing classifies items as ready or empty.
func NewListing[T any](items []T) Listing[T] {
	if len(items) == 0 {
		return Listing[T]{State: ListingEmpty, Items: []T{}}
	}

	return Listing[T]{State: ListingReady, Items: items}
}

// FailedListing reports a fetch failure distinct from an empty collection.
func FailedListing[T any](message string) Listing[T] {
	return Listing[T]{State: ListingFailed, Items: []T{}, Error: message}
}
