package entity

import "github.com/shopspring/decimal"

// DashboardStats are the headline figures of the back-office dashboard.
type DashboardStats struct {
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalOrders    int             `json:"totalOrders"`
	TotalProducts  int             `json:"totalProducts"`
	TotalCustomers int             `json:"totalCustomers"`
	PendingOrders  int             `json:"pendingOrders"`
	LowStockAlerts int             `json:"lowStockAlerts"`
}

// SalesPoint is one point of the sales-over-period chart.
type SalesPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Sold      int             `json:"totalSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
