// Package report computes dashboard statistics and bulk exports.
package report

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/catalog"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/database"
)

// RecentEngagementWindow is the look-back period for recentEngagements, in days.
const RecentEngagementWindow = 30

// StatusCount is one row of a GROUP BY status breakdown.
type StatusCount struct {
	Status *string `json:"status"`
	Count  int     `json:"count"`
}

// Stats is the dashboard summary.
type Stats struct {
	TotalCustomers    int           `json:"totalCustomers"`
	TotalCases        int           `json:"totalCases"`
	ActiveCases       int           `json:"activeCases"`
	ClosedCases       int           `json:"closedCases"`
	RecentEngagements int           `json:"recentEngagements"`
	CompletionRate    int           `json:"completionRate"`
	CasesByStatus     []StatusCount `json:"casesByStatus"`
	CustomersByStatus []StatusCount `json:"customersByStatus"`
}

// StatsService runs the dashboard queries.
type StatsService struct {
	db database.DBTX
}

// NewStatsService creates a new StatsService.
func NewStatsService(db database.DBTX) *StatsService {
	return &StatsService{db: db}
}

// Stats runs every dashboard query concurrently. Any failure fails the whole call.
func (s *StatsService) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int, query string, args ...any) {
		g.Go(func() error {
			if err := s.db.QueryRow(gctx, query, args...).Scan(dst); err != nil {
				return fmt.Errorf("running %q: %w", query, err)
			}
			return nil
		})
	}
	group := func(dst *[]StatusCount, query string) {
		g.Go(func() error {
			rows, err := s.db.Query(gctx, query)
			if err != nil {
				return fmt.Errorf("running %q: %w", query, err)
			}
			out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (StatusCount, error) {
				var sc StatusCount
				err := row.Scan(&sc.Status, &sc.Count)
				return sc, err
			})
			if err != nil {
				return fmt.Errorf("collecting %q: %w", query, err)
			}
			*dst = out
			return nil
		})
	}

	count(&st.TotalCustomers, "SELECT COUNT(*) FROM customers")
	count(&st.TotalCases, "SELECT COUNT(*) FROM cases")
	count(&st.ActiveCases, "SELECT COUNT(*) FROM cases WHERE case_status = ANY($1)",
		[]string{catalog.CaseOpen, catalog.CaseInProgress})
	count(&st.ClosedCases, "SELECT COUNT(*) FROM cases WHERE case_status = ANY($1)",
		[]string{catalog.CaseClosed, catalog.CaseSettled})
	count(&st.RecentEngagements, "SELECT COUNT(*) FROM engagements WHERE engagement_date >= CURRENT_DATE - $1::int",
		RecentEngagementWindow)
	group(&st.CasesByStatus, "SELECT case_status, COUNT(*) FROM cases GROUP BY case_status ORDER BY case_status")
	group(&st.CustomersByStatus, "SELECT customer_status, COUNT(*) FROM customers GROUP BY customer_status ORDER BY customer_status")

	if err := g.Wait(); err != nil {
		return nil, err
	}

	st.CompletionRate = CompletionRate(st.ClosedCases, st.TotalCases)
	return &st, nil
}

// CompletionRate returns closed/total as a rounded percentage, or 0 when there are
// no cases.
func CompletionRate(closed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(closed) / float64(total) * 100))
}
