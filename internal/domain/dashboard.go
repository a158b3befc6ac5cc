package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats сводка салона за период
type DashboardStats struct {
	Date           time.Time
	TotalToday     int64
	PendingToday   int64
	ConfirmedToday int64
	CancelledToday int64
	CompletedToday int64
	RevenueToday   decimal.Decimal
	RevenueRange   decimal.Decimal
	RangeFrom      time.Time
	RangeTo        time.Time
}

// ManicuristProductivity выработка мастера за период
type ManicuristProductivity struct {
	ManicuristID   string
	Name           string
	CompletedCount int64
	Revenue        decimal.Decimal
}
