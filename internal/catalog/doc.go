// Package catalog provides the data-view layer of the product admin dashboard.
//
// This package holds all view logic independent of any UI or transport layer.
// It can be driven by web handlers, scripts, or tests without modification.
//
// # Architecture
//
// The package is organized around four components:
//
//   - Collection Store: the full product set ("all") and the derived,
//     searched and sorted view ("filtered"). See [Store].
//   - View Projector: page slicing and pagination controls. See [Project]
//     and [PageWindow].
//   - Mutation Coordinator: validated create/update submissions against the
//     external API, applied locally only after the API confirms them. See
//     [Dashboard.SubmitUpdate] and [Dashboard.SubmitCreate].
//   - Export Encoder: CSV of the currently visible page. See [Encode].
//
// [Dashboard] owns the store and the view state behind a single mutex.
// Network calls to the [ProductAPI] are made without holding that mutex.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - API001-API004: product API errors (load, update, create, busy)
//   - VAL001-VAL004: validation errors (required fields, price, page size, sort)
//   - VIEW001: selection errors
//   - REQ001-REQ002: request cancelled or timed out
package catalog
