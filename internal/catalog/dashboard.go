package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultPageSizes are the page sizes offered when none are configured.
var DefaultPageSizes = []int{5, 10, 20, 50}

// DefaultPageSize is the initial page size when none is configured.
const DefaultPageSize = 10

// Options configures a Dashboard. Zero values select the defaults.
type Options struct {
	PageSizes       []int
	DefaultPageSize int
	MutationWait    time.Duration
}

// ViewState is the per-dashboard UI state around the collection.
type ViewState struct {
	CurrentPage int
	PageSize    int
	SelectedID  int
	HasSelected bool
	EditMode    bool
	Loading     bool
	Loaded      bool
	LoadError   error
}

// Dashboard owns the Collection Store and the view state.
//
// All store and view operations run under one mutex and complete before the
// next one starts. Calls to the ProductAPI are made without holding it, so
// view operations keep working while a load or submission is in flight.
type Dashboard struct {
	api       ProductAPI
	limiter   *MutationLimiter
	loads     singleflight.Group
	pageSizes []int

	mu    sync.Mutex
	store *Store
	view  ViewState
}

// NewDashboard creates a dashboard over api. The collection starts empty
// until Load is called.
func NewDashboard(api ProductAPI, opts Options) *Dashboard {
	sizes := slices.Clone(opts.PageSizes)
	if len(sizes) == 0 {
		sizes = slices.Clone(DefaultPageSizes)
	}
	pageSize := opts.DefaultPageSize
	if !slices.Contains(sizes, pageSize) {
		pageSize = DefaultPageSize
		if !slices.Contains(sizes, pageSize) {
			pageSize = sizes[0]
		}
	}

	return &Dashboard{
		api:       api,
		limiter:   NewMutationLimiter(DefaultMaxConcurrentMutations, opts.MutationWait),
		pageSizes: sizes,
		store:     NewStore(),
		view: ViewState{
			CurrentPage: 1,
			PageSize:    pageSize,
		},
	}
}

// Load fetches all products and ingests them. Concurrent calls share one
// API request. On failure the collection keeps its previous contents
// (empty on first load) and the error is recorded for display.
// An active search term is re-applied to the fresh data.
func (d *Dashboard) Load(ctx context.Context) error {
	_, err, _ := d.loads.Do("load", func() (any, error) {
		return nil, d.load(ctx)
	})
	return err
}

func (d *Dashboard) load(ctx context.Context) error {
	d.mu.Lock()
	d.view.Loading = true
	d.mu.Unlock()

	start := time.Now()
	products, err := d.api.ListProducts(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Loading = false

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetch, err)
		d.view.LoadError = err
		return err
	}

	d.store.Ingest(products)
	if d.store.SearchTerm() != "" {
		d.store.SetSearchTerm(d.store.SearchTerm())
	}
	d.view.Loaded = true
	d.view.LoadError = nil
	d.clampPageLocked()
	if d.view.HasSelected {
		if _, ok := d.store.Lookup(d.view.SelectedID); !ok {
			d.clearSelectionLocked()
		}
	}

	loggerFor(ctx).Info("products loaded",
		"count", len(products),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// SetSearchTerm filters the collection by title and returns to page 1.
func (d *Dashboard) SetSearchTerm(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.SetSearchTerm(term)
	d.view.CurrentPage = 1
}

// SetSort sorts by the named column, flipping direction on repeat.
func (d *Dashboard) SetSort(field string) error {
	f, err := ParseSortField(field)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.store.SetSort(f)
	return nil
}

// ChangePage moves to page requested. It reports false and leaves the page
// unchanged when requested is outside [1, totalPages].
func (d *Dashboard) ChangePage(requested int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	total := TotalPages(d.store.FilteredLen(), d.view.PageSize)
	d.view.CurrentPage = ChangePage(d.view.CurrentPage, requested, total)
	return d.view.CurrentPage == requested
}

// SetPageSize switches to one of the offered page sizes and returns to page 1.
func (d *Dashboard) SetPageSize(size int) error {
	if !slices.Contains(d.pageSizes, size) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.view.PageSize = size
	d.view.CurrentPage = 1
	return nil
}

// PageSizes returns the offered page sizes.
func (d *Dashboard) PageSizes() []int {
	return slices.Clone(d.pageSizes)
}

// SelectProduct opens the detail view for product id in view mode.
func (d *Dashboard) SelectProduct(id int) (Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.store.Lookup(id)
	if !ok {
		return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	d.view.SelectedID = id
	d.view.HasSelected = true
	d.view.EditMode = false
	return p, nil
}

// EnterEditMode switches the detail view of the selected product to edit mode.
func (d *Dashboard) EnterEditMode() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.view.HasSelected {
		return ErrNoSelection
	}
	d.view.EditMode = true
	return nil
}

// CancelEdit returns the detail view to view mode.
func (d *Dashboard) CancelEdit() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.view.EditMode = false
}

// DismissDetail closes the detail view.
func (d *Dashboard) DismissDetail() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearSelectionLocked()
}

// VisiblePage returns the current page number and its products.
// Export uses this so the file matches what is on screen.
func (d *Dashboard) VisiblePage() (int, []Product) {
	d.mu.Lock()
	defer d.mu.Unlock()

	proj := Project(d.store.filtered, d.view.CurrentPage, d.view.PageSize)
	return proj.Page, proj.Items
}

// Snapshot is an immutable copy of everything needed to render the dashboard.
type Snapshot struct {
	Projection Projection
	Pagination Pagination
	Sort       SortState
	SearchTerm string
	PageSizes  []int
	Selected   *Product
	EditMode   bool
	Loading    bool
	Loaded     bool
	LoadError  error
}

// Snapshot returns the current render state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	proj := Project(d.store.filtered, d.view.CurrentPage, d.view.PageSize)
	snap := Snapshot{
		Projection: proj,
		Pagination: PageWindow(proj.Page, proj.TotalPages),
		Sort:       d.store.Sort(),
		SearchTerm: d.store.SearchTerm(),
		PageSizes:  slices.Clone(d.pageSizes),
		Loading:    d.view.Loading,
		Loaded:     d.view.Loaded,
		LoadError:  d.view.LoadError,
	}
	if d.view.HasSelected {
		if p, ok := d.store.Lookup(d.view.SelectedID); ok {
			snap.Selected = &p
			snap.EditMode = d.view.EditMode
		}
	}
	return snap
}

// View returns a copy of the view state.
func (d *Dashboard) View() ViewState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

// WaitForMutations blocks until the in-flight submission, if any, completes.
func (d *Dashboard) WaitForMutations(ctx context.Context) error {
	return d.limiter.WaitForDrain(ctx)
}

// MutationsInFlight returns the number of submissions talking to the API.
func (d *Dashboard) MutationsInFlight() int {
	return d.limiter.ActiveCount()
}

func (d *Dashboard) clampPageLocked() {
	total := TotalPages(d.store.FilteredLen(), d.view.PageSize)
	if d.view.CurrentPage > total {
		d.view.CurrentPage = total
	}
	if d.view.CurrentPage < 1 {
		d.view.CurrentPage = 1
	}
}

func (d *Dashboard) clearSelectionLocked() {
	d.view.SelectedID = 0
	d.view.HasSelected = false
	d.view.EditMode = false
}
