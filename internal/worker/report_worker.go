package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/agenciaflow/backoffice/internal/service"
)

// StartReportWorker scans for due report schedules on a fixed interval
// and dispatches them to n8n. It runs until ctx is cancelled.
func StartReportWorker(ctx context.Context, reports *service.ReportService, interval time.Duration, logger *zap.Logger) {
	if reports == nil {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("report worker stopped")
				return
			case <-ticker.C:
				dispatched, err := reports.DispatchDue(ctx)
				if err != nil {
					logger.Error("report scan failed", zap.Error(err))
					continue
				}
				if dispatched > 0 {
					logger.Info("reports dispatched", zap.Int("count", dispatched))
				}
			}
		}
	}()
}
