package domain

import "time"

type Review struct {
	ID           string
	ProductID    int
	Rating       int
	Comment      string
	CustomerName string
	CreatedAt    time.Time
}
