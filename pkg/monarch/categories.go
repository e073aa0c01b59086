package monarch

import (
	"context"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves all categories
func (s *categoryService) List(ctx context.Context) ([]*Category, error) {
	query := s.client.loadQuery("categories/list.graphql")

	var result struct {
		Categories []*Category `json:"categories"`
	}

	if err := s.client.executeGraphQL(ctx, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	return orEmpty(result.Categories), nil
}
