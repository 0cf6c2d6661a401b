package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareLink(t *testing.T) {
	id := uuid.MustParse("3f1c2a7e-8d4b-4c1e-9a7f-2b6d5e4c3a21")
	product := &Product{ID: id, Name: "Trail Shoe"}

	link := NewShareLink("shopapp", product)

	assert.Equal(t, "shopapp://product/3f1c2a7e-8d4b-4c1e-9a7f-2b6d5e4c3a21", link.URL)
	assert.Equal(t, "Check out this product: Trail Shoe - shopapp://product/3f1c2a7e-8d4b-4c1e-9a7f-2b6d5e4c3a21", link.Message)
}

func TestParseProductLink(t *testing.T) {
	id := uuid.New()

	got, err := ParseProductLink("shopapp", ProductLink("shopapp", id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseProductLink("shopapp", "otherapp://product/"+id.String())
	assert.Error(t, err)

	_, err = ParseProductLink("shopapp", "shopapp://product/not-a-uuid")
	assert.Error(t, err)
}
