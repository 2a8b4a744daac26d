package repository

import (
	"context"

	"maritime_registry/internal/app/ds"

	"golang.org/x/sync/errgroup"
)

// GetDashboardStats runs the dashboard counts concurrently.
func (r *Repository) GetDashboardStats(ctx context.Context) (ds.DashboardStats, error) {
	stats := ds.DashboardStats{}
	g, ctx := errgroup.WithContext(ctx)

	count := func(model interface{}, dst *int64, where ...interface{}) {
		g.Go(func() error {
			query := r.db.WithContext(ctx).Model(model)
			if len(where) > 0 {
				query = query.Where(where[0], where[1:]...)
			}
			return query.Count(dst).Error
		})
	}

	count(&ds.User{}, &stats.TotalUsers)
	count(&ds.Ship{}, &stats.TotalShips)
	count(&ds.Certificate{}, &stats.TotalCertificates)
	count(&ds.Inspection{}, &stats.TotalInspections)
	count(&ds.Owner{}, &stats.TotalOwners)
	count(&ds.Inspection{}, &stats.ScheduledInspections, "resultat = ?", ds.ResultScheduled)

	if err := g.Wait(); err != nil {
		return ds.DashboardStats{}, err
	}
	return stats, nil
}
