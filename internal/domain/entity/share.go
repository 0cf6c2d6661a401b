package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const productLinkPath = "product/"

// ShareLink is what a shopper sends to share a product.
type ShareLink struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// NewShareLink builds the deep link and share message of a product.
func NewShareLink(scheme string, product *Product) ShareLink {
	url := ProductLink(scheme, product.ID)

	return ShareLink{
		URL:     url,
		Message: fmt.Sprintf("Check out this product: %s - %s", product.Name, url),
	}
}

// ProductLink returns the deep link of a product, <scheme>://product/<id>.
func ProductLink(scheme string, id uuid.UUID) string {
	return scheme + "://" + productLinkPath + id.String()
}

// ParseProductLink extracts the product ID from a deep link built by ProductLink.
func ParseProductLink(scheme, link string) (uuid.UUID, error) {
	prefix := scheme + "://" + productLinkPath
	if !strings.HasPrefix(link, prefix) {
		return uuid.Nil, fmt.Errorf("link %q is not a product link", link)
	}

	id, err := uuid.Parse(strings.TrimPrefix(link, prefix))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid product id in link: %w", err)
	}

	return id, nil
}
