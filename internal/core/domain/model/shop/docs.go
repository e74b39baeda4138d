// Package shop models a campus shop run by a shopkeeper: its public profile, its
// open/active flags and the delivery policy that pricing reads at order time.
package shop
