// Package tags integrates catalogid with go-playground/validator.
//
// Register adds one custom tag per identifier kind (catalog_idx,
// catalog_sku, catalog_ean, catalog_url_key), each delegating to the
// corresponding catalogid validator. This lets services keep a single
// validator instance for request structs while enforcing the catalog
// identifier contracts on the relevant fields.
package tags
