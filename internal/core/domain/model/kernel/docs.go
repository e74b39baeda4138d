// Package kernel holds the value objects every aggregate shares: identifiers (UUID),
// amounts of money (Money) and the authenticated principal behind a request (Actor).
//
// All of them reject their zero value through Validate, so an aggregate constructor
// can accept them without re-checking where they came from.
package kernel
