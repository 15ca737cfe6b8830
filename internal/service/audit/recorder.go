package audit

import (
	"context"

	"github.com/careloop/caregiver-api/pkg/logger"
	"github.com/careloop/caregiver-api/pkg/metrics"
)

// Recorder is the log-and-continue front of the audit service. Its failures
// are logged and counted, never returned: audit logging is best-effort
// observability and must not fail the caller's request.
type Recorder struct {
	service *Service
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewRecorder(service *Service, log *logger.Logger, m *metrics.Metrics) *Recorder {
	return &Recorder{
		service: service,
		logger:  log.WithComponent("audit"),
		metrics: m,
	}
}

func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if err := r.service.Record(ctx, entry); err != nil {
		r.logger.Error(err, "audit log write failed",
			"action", entry.Action,
			"entity_id", entry.EntityID,
		)
		if r.metrics != nil {
			r.metrics.AuditWriteFailures.Inc()
		}
		return
	}
	if r.metrics != nil {
		r.metrics.AuditEntriesWritten.Inc()
	}
}
