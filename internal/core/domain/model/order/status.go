package order

import (
	"fmt"
	"slices"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
)

// Status is the position of an order in its workflow.
//
//	pending ──> accepted ──> preparing ──> ready ──> delivered
//	   │  │        │
//	   │  │        └──> cancelled (student)
//	   │  └──> cancelled (student)
//	   └──> rejected (shop)
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Preparing
	Ready
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Accepted:  "accepted",
	Rejected:  "rejected",
	Preparing: "preparing",
	Ready:     "ready",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

type edge struct {
	from Status
	to   Status
}

// transitions is the single place that decides who may move an order where.
var transitions = map[edge]kernel.Role{
	{Pending, Accepted}:   kernel.RoleShop,
	{Pending, Rejected}:   kernel.RoleShop,
	{Pending, Cancelled}:  kernel.RoleStudent,
	{Accepted, Preparing}: kernel.RoleShop,
	{Accepted, Cancelled}: kernel.RoleStudent,
	{Preparing, Ready}:    kernel.RoleShop,
	{Ready, Delivered}:    kernel.RoleShop,
}

// StatusFromString parses the lower-case names used in storage and on the wire.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(s.Next()) == 0
}

// IsCancellable reports whether a student may still cancel.
func (s Status) IsCancellable() bool {
	_, ok := transitions[edge{s, Cancelled}]
	return ok
}

// RequiredRole returns the role allowed to move an order from s to target. ok is false
// when the table has no such edge.
func (s Status) RequiredRole(target Status) (role kernel.Role, ok bool) {
	role, ok = transitions[edge{s, target}]
	return role, ok
}

// Next lists the statuses reachable from s in one step, in workflow order.
func (s Status) Next() []Status {
	var next []Status
	for e := range transitions {
		if e.from == s {
			next = append(next, e.to)
		}
	}
	slices.Sort(next)
	return next
}
