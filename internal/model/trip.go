// File: internal/model/trip.go
package model

type Trip struct {
	ID          int     `db:"id" json:"id"`
	Destination string  `db:"destination" json:"destination"`
	Price       float64 `db:"price" json:"price"`
	Date        string  `db:"date" json:"date"`
	Available   bool    `db:"available" json:"available"`
}
