// Package warehouse provides the transactional domain model for a
// single-tenant warehouse bookkeeping tool. It is designed to be local-first
// and auditable: a single process owns the whole model of record and every
// mutation leaves the model in a consistent, fully recomputed state.
//
// The core functionalities include:
//   - Supplier Management: Recording farmers and the raw purchases made from
//     them, with mass stored canonically in grams.
//   - Inventory Ledger: A two-stage stock model of unprocessed raw mass by
//     product type and processed packaged stock by category, with a single
//     conversion chokepoint from mass to packages.
//   - Order Management: Customer orders reserving processed stock, with
//     prices and tax bound at order-creation time.
//   - Financial Aggregation: Revenue, expenses, tax liability, net profit and
//     monthly/yearly rollups, derived entirely from the purchase and order
//     logs on every mutation.
//   - Data Persistence: Encoding and decoding the whole state as a single
//     human-readable JSON snapshot.
//
// This package serves as the foundational logic for the `whs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package warehouse
