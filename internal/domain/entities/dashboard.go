package entities

// DashboardSummary aggregates simple counts and sums across all collections.
// AvgRating is nil when no feedback exists.

type DashboardSummary struct {
	TotalClients   int64    `json:"total_clients"`
	TotalInvoices  int64    `json:"total_invoices"`
	TotalPayments  int64    `json:"total_payments"`
	TotalFeedbacks int64    `json:"total_feedbacks"`
	TotalSales     float64  `json:"total_sales"`
	AvgRating      *float64 `json:"avg_rating"`
}
