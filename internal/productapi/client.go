// Package productapi is the REST client for the external product API.
//
// The client performs no retries: a failed call is reported once and the
// caller decides whether to try again.
package productapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout is used when Options.Timeout is zero.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is kept for logging.
const maxErrorBody = 512

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the product API. It implements catalog.ProductAPI.
type Client struct {
	http *resty.Client
}

var _ catalog.ProductAPI = (*Client)(nil)

// New creates a client for the API rooted at opts.BaseURL.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{http: rc}
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

type updateRequest struct {
	Title       string      `json:"title"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
}

type createRequest struct {
	Title       string      `json:"title"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	CategoryID  int         `json:"categoryId"`
	Images      []string    `json:"images"`
}

// ListProducts fetches every product with GET /products.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/products")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	var products []catalog.Product
	if err := json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// UpdateProduct saves title, price and description with PUT /products/{id}.
// The response is decoded as a patch so only the fields it carries are merged.
func (c *Client) UpdateProduct(ctx context.Context, id int, in catalog.UpdateInput) (catalog.ProductPatch, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		SetHeader("Content-Type", "application/json").
		SetBody(updateRequest{
			Title:       in.Title,
			Price:       json.Number(in.Price.String()),
			Description: in.Description,
		}).
		Put("/products/{id}")
	if err := checkResponse(resp, err); err != nil {
		return catalog.ProductPatch{}, err
	}

	var patch catalog.ProductPatch
	if err := json.Unmarshal(resp.Body(), &patch); err != nil {
		return catalog.ProductPatch{}, fmt.Errorf("decode updated product: %w", err)
	}
	return patch, nil
}

// CreateProduct creates a product with POST /products/.
func (c *Client) CreateProduct(ctx context.Context, in catalog.CreateInput) (catalog.Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createRequest{
			Title:       in.Title,
			Price:       json.Number(in.Price.String()),
			Description: in.Description,
			CategoryID:  in.CategoryID,
			Images:      in.Images,
		}).
		Post("/products/")
	if err := checkResponse(resp, err); err != nil {
		return catalog.Product{}, err
	}

	var created catalog.Product
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return catalog.Product{}, fmt.Errorf("decode created product: %w", err)
	}
	return created, nil
}

// checkResponse converts transport failures and non-2xx answers to errors.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("product api request: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}

	body := resp.String()
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &StatusError{
		Method:     resp.Request.Method,
		Path:       resp.Request.RawRequest.URL.Path,
		StatusCode: resp.StatusCode(),
		Body:       body,
	}
}
