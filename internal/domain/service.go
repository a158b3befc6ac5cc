package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service услуга салона
type Service struct {
	ID              string
	BusinessID      string
	Name            string
	DurationMinutes int
	Price           decimal.Decimal
	Color           string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Client клиент салона; телефон нормализован в E.164 и уникален в рамках салона
type Client struct {
	ID         string
	BusinessID string
	Name       string
	Phone      string
	Email      *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
