// Package menu models the items a shop sells. A MenuItem belongs to exactly one shop
// and only that shop may change or delete it. Orders copy an item's name and price at
// placement time, so edits here never reach orders already placed.
package menu
