package domain

import "time"

// LineItem is one product+size entry in a session's cart. A session
// holds at most one line per (ProductID, Size) pair.
type LineItem struct {
	ID        string
	ProductID int
	Quantity  int
	Size      string
	AddedAt   time.Time
}
