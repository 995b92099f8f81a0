package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/pagination"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/querycache"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/types"
	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/upstream"
)

// ResourceReviews is the cache resource for per-product review listings.
const ResourceReviews = "reviews"

const (
	// MinRating and MaxRating bound the accepted star rating.
	MinRating = 1
	MaxRating = 5
)

// Review mirrors the review payload served by the storefront API.
type Review struct {
	ID        int     `json:"id"`
	User      string  `json:"user"`
	UserImage string  `json:"userImage,omitempty"`
	Rating    float64 `json:"rating"`
	Date      string  `json:"date"`
	Comment   string  `json:"comment"`
	Helpful   int     `json:"helpful"`
	UserLiked bool    `json:"userLiked"`
	Verified  bool    `json:"verified"`
}

// Submission is a new review as entered by the customer.
type Submission struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type fetcher interface {
	Do(ctx context.Context, req upstream.Request) (json.RawMessage, error)
}

type queryCache interface {
	Do(ctx context.Context, resource string, params []string, fetch querycache.FetchFunc) (json.RawMessage, error)
	Invalidate(ctx context.Context, resource string) error
}

// ServiceParams groups dependencies for the reviews service.
type ServiceParams struct {
	Upstream fetcher
	Cache    queryCache
}

// Service lists and submits menu item reviews.
type Service interface {
	ByProduct(ctx context.Context, token, productID string, page pagination.Params) ([]Review, error)
	Submit(ctx context.Context, token, productID string, submission Submission) error
}

type service struct {
	upstream fetcher
	cache    queryCache
}

// NewService builds a reviews service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Upstream == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upstream client is required")
	}
	if params.Cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query cache is required")
	}
	return &service{upstream: params.Upstream, cache: params.Cache}, nil
}

// ByProduct lists one page of the reviews of one menu item.
func (s *service) ByProduct(ctx context.Context, token, productID string, page pagination.Params) ([]Review, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	values := page.QueryValues()
	query := url.Values{}
	for key, value := range values {
		query.Set(key, value)
	}

	data, err := s.cache.Do(ctx, ResourceReviews, []string{trimmed, values["limit"], values["page"]}, func(ctx context.Context) (json.RawMessage, error) {
		return s.upstream.Do(ctx, upstream.Request{
			Method:   http.MethodGet,
			Path:     "/reviews/menu/" + url.PathEscape(trimmed),
			Query:    query,
			Token:    token,
			Resource: ResourceReviews,
		})
	})
	if err != nil {
		return nil, err
	}

	var reviews []Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode reviews payload")
	}
	for i := range reviews {
		reviews[i].Date = types.FormatDisplayDate(reviews[i].Date)
	}
	return reviews, nil
}

// Submit validates the entry locally, posts it upstream, and invalidates
// the review listing so the next read includes it. Invalid submissions
// never reach the storefront API.
func (s *service) Submit(ctx context.Context, token, productID string, submission Submission) error {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if submission.Rating < MinRating || submission.Rating > MaxRating {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if strings.TrimSpace(submission.Comment) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "comment is required")
	}

	_, err := s.upstream.Do(ctx, upstream.Request{
		Method:   http.MethodPost,
		Path:     "/reviews/menus/" + url.PathEscape(trimmed),
		Body:     submission,
		Token:    token,
		Resource: ResourceReviews,
	})
	if err != nil {
		return err
	}

	return s.cache.Invalidate(ctx, ResourceReviews)
}
