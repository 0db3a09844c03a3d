package catalog

// mutation.go implements the Mutation Coordinator.
//
// A submission goes through four steps:
//  1. Validate the form; on failure return *ValidationError, no network call
//  2. Acquire the single mutation slot (ErrMutationBusy on timeout)
//  3. Call the product API without holding the dashboard mutex
//  4. On success only, apply the API result to the store under the mutex
//
// There is no optimistic pre-update: a failed call leaves local state as it was.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// errMissingID is reported when a create response carries no product id.
var errMissingID = errors.New("response has no product id")

// SubmitUpdate validates form and saves it for product id. On success the
// returned fields are merged into the collection and edit mode is cleared.
// The merged product is returned.
func (d *Dashboard) SubmitUpdate(ctx context.Context, id int, form UpdateForm) (Product, error) {
	in, err := form.Validate()
	if err != nil {
		return Product{}, err
	}

	logger := loggerFor(ctx).With(
		"mutation_id", uuid.NewString(),
		"op", "update",
		"product_id", id,
	)

	if err := d.limiter.Acquire(ctx); err != nil {
		logger.Warn("update not started", "error", err)
		return Product{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	defer d.limiter.Release()

	start := time.Now()
	patch, err := d.api.UpdateProduct(ctx, id, in)
	if err != nil {
		logger.Error("update failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return Product{}, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	inAll, inFiltered := d.store.ApplyUpdate(id, patch)
	d.view.EditMode = false

	logger.Info("product updated",
		"in_all", inAll,
		"in_filtered", inFiltered,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if p, ok := d.store.Lookup(id); ok {
		return p, nil
	}
	return patch.apply(Product{ID: id}), nil
}

// SubmitCreate validates form and creates the product. On success the
// product returned by the API is prepended to the collection, shown even if
// it does not match the search term, and the view returns to page 1.
func (d *Dashboard) SubmitCreate(ctx context.Context, form CreateForm) (Product, error) {
	in, err := form.Validate()
	if err != nil {
		return Product{}, err
	}

	logger := loggerFor(ctx).With(
		"mutation_id", uuid.NewString(),
		"op", "create",
	)

	if err := d.limiter.Acquire(ctx); err != nil {
		logger.Warn("create not started", "error", err)
		return Product{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	defer d.limiter.Release()

	start := time.Now()
	created, err := d.api.CreateProduct(ctx, in)
	if err == nil && created.ID == 0 {
		err = errMissingID
	}
	if err != nil {
		logger.Error("create failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return Product{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.Prepend(created)
	d.view.CurrentPage = 1

	logger.Info("product created",
		"product_id", created.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return created.clone(), nil
}
