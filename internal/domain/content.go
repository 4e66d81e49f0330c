package domain

import "time"

// Thread is the thread/color metadata managed in the admin console.
type Thread struct {
	ID        int64
	Name      string
	ColorCode string
	Image     string

	CreatedAt time.Time
}

// HeroSlide is one entry of the homepage hero carousel.
type HeroSlide struct {
	ID         int64
	Title      string
	ImageURL   string
	OrderIndex int
	IsActive   bool

	CreatedAt time.Time
}
