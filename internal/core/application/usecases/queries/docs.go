// Package queries holds the read side. Handlers read straight from the database with
// SQL shaped for the screen that asks, and never load aggregates. The exceptions are
// QuoteCart, which prices a cart with the same domain service that places orders, and
// Login, which only checks credentials.
package queries
