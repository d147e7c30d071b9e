package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Size        string    `json:"size"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}
