// Package order provides the Order aggregate: a student's purchase from one shop, the
// status workflow shared by the student and the shopkeeper, and the price snapshot taken
// when the order was placed.
//
// The package includes:
//   - Order: the aggregate root holding lines, bill, status and history timestamps
//   - Line: a menu item reference with the name and unit price captured at placement
//   - Bill: subtotal and delivery fee; the total is always their sum
//   - Status: the workflow states and the table of who may move an order between them
//
// Key business rules:
//   - An order has at least one line and every line has quantity of at least one
//   - Lines, prices and the bill never change after placement
//   - Status only moves along the transition table, by the role the table names
//   - Students may cancel while the order is pending or accepted, never later
//   - rejected, delivered and cancelled are terminal
package order
