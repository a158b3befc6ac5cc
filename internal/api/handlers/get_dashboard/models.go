package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// StatsResponse сводка дня и выручка за период
type StatsResponse struct {
	Date           string `json:"date"`
	TotalToday     int64  `json:"totalToday"`
	PendingToday   int64  `json:"pendingToday"`
	ConfirmedToday int64  `json:"confirmedToday"`
	CancelledToday int64  `json:"cancelledToday"`
	CompletedToday int64  `json:"completedToday"`
	RevenueToday   string `json:"revenueToday"`
	RevenueRange   string `json:"revenueRange"`
	RangeFrom      string `json:"rangeFrom"`
	RangeTo        string `json:"rangeTo"`
}

// ProductivityRow выработка одного мастера за период
type ProductivityRow struct {
	ManicuristID   string `json:"manicuristId"`
	Name           string `json:"name"`
	CompletedCount int64  `json:"completedCount"`
	Revenue        string `json:"revenue"`
}

// ProductivityResponse выработка всех мастеров
type ProductivityResponse struct {
	Manicurists []ProductivityRow `json:"manicurists"`
}

func statsFromDomain(stats *domain.DashboardStats) StatsResponse {
	return StatsResponse{
		Date:           stats.Date.Format(domain.DateFormat),
		TotalToday:     stats.TotalToday,
		PendingToday:   stats.PendingToday,
		ConfirmedToday: stats.ConfirmedToday,
		CancelledToday: stats.CancelledToday,
		CompletedToday: stats.CompletedToday,
		RevenueToday:   stats.RevenueToday.StringFixed(2),
		RevenueRange:   stats.RevenueRange.StringFixed(2),
		RangeFrom:      stats.RangeFrom.Format(time.RFC3339),
		RangeTo:        stats.RangeTo.Format(time.RFC3339),
	}
}

func productivityFromDomain(rows []*domain.ManicuristProductivity) ProductivityResponse {
	resp := ProductivityResponse{Manicurists: make([]ProductivityRow, 0, len(rows))}
	for _, row := range rows {
		resp.Manicurists = append(resp.Manicurists, ProductivityRow{
			ManicuristID:   row.ManicuristID,
			Name:           row.Name,
			CompletedCount: row.CompletedCount,
			Revenue:        row.Revenue.StringFixed(2),
		})
	}
	return resp
}
