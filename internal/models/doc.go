// Package models defines the core domain models for the ERP system.
//
// # Models
//
//   - Organization: a tenant, addressed everywhere by its URL slug
//   - User: an account belonging to one organization, with a Role
//   - Customer, Product: master data owned by an organization
//   - Invoice, InvoiceItem: sale or purchase documents with derived totals
//   - Expense, Transaction: the money ledger
//
// # Design Principles
//
//  1. Every business record carries the owning organization's ID; the
//     organization is the isolation boundary for all data and sessions.
//  2. Monetary fields are shopspring decimals, never floats. Storage
//     converts them to integer base units (cents/piasters) at the
//     persistence boundary.
//  3. Derived invoice figures (subtotal, total, remaining) are computed
//     by the invoice calculator package, never mutated in place.
//  4. Relationships use ID strings instead of pointers to avoid
//     circular references.
package models
