package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cheonTH/singlelife/internal/models"
)

// ListReviews fetches every review for a place in one request; paging is
// done client-side.
func (c *Client) ListReviews(ctx context.Context, placeID string) ([]models.Review, error) {
	var reviews []models.Review
	path := "/api/reviews/" + url.PathEscape(placeID)
	if err := c.do(ctx, http.MethodGet, path, false, nil, &reviews); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// CreateReviewRequest is the payload for posting a review
type CreateReviewRequest struct {
	PlaceID   string `json:"placeId"`
	PlaceName string `json:"placeName"`
	Review    string `json:"review"`
	UserID    string `json:"userId"`
	NickName  string `json:"nickName"`
}

// CreateReview posts a review; the backend rejects a second review by the
// same user for the same place with a conflict.
func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews", true, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review by id
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), true, nil, nil)
}
