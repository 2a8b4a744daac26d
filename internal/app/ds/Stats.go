package ds

// DashboardStats backs GET /api/stats
type DashboardStats struct {
	TotalUsers           int64 `json:"totalUsers"`
	TotalShips           int64 `json:"totalShips"`
	TotalCertificates    int64 `json:"totalCertificates"`
	TotalInspections     int64 `json:"totalInspections"`
	TotalOwners          int64 `json:"totalOwners"`
	ScheduledInspections int64 `json:"scheduledInspections"`
}
