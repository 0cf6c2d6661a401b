package handler

import (
	"net/http"
	"testing"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_ListReviews(t *testing.T) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC})
	id := uuid.New()
	reviewUC.EXPECT().ListReviews(mock.Anything, id).Return([]*entity.Review{{ProductID: id, Rating: 5}}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/"+id.String()+"/reviews", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.ListReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":5`)
}

func TestReviewHandler_SubmitReview(t *testing.T) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC})
	id := uuid.New()

	c, rec := newTestContext(http.MethodPost, "/api/v1/products/"+id.String()+"/reviews", `{"rating":4,"comment":"Solid"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	claims := withClaims(c, "uid-1")

	reviewUC.EXPECT().SubmitReview(mock.Anything, claims, &usecase.SubmitReviewInput{
		ProductID: id,
		Rating:    4,
		Comment:   "Solid",
	}).Return(&entity.Review{ID: uuid.New(), ProductID: id, UserID: "uid-1", Rating: 4}, nil).Once()

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReviewHandler_SubmitReview_RatingOutOfRange(t *testing.T) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC})
	id := uuid.New()

	c, _ := newTestContext(http.MethodPost, "/api/v1/products/"+id.String()+"/reviews", `{"rating":6}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	withClaims(c, "uid-1")

	err := h.SubmitReview(c)
	require.Error(t, err)
	assert.Equal(t, "rating", validator.Details(err)[0].Field)
}
