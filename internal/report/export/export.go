// Package export persists generated reports as JSON objects. The exporter
// delegates storage to an ObjectStore; filesystem and S3-compatible
// backends ship with it.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fundus/internal/audit"
	"fundus/internal/report"
	domain "fundus/pkg/domain"
)

// ObjectStore writes one immutable object under a key.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// AuditPublisher records export events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

type Exporter struct {
	store  ObjectStore
	logger *slog.Logger
	audit  AuditPublisher
}

type Option func(e *Exporter)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(e *Exporter) {
		e.audit = publisher
	}
}

func New(store ObjectStore, opts ...Option) *Exporter {
	e := &Exporter{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export serializes the report and stores it under a per-unit key derived
// from the generation timestamp. It returns the key the object landed at.
func (e *Exporter) Export(ctx context.Context, unitID domain.UnitID, rpt *report.Report) (string, error) {
	body, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize report: %w", err)
	}
	body = append(body, '\n')

	key := Key(unitID, rpt)
	if err := e.store.Put(ctx, key, body, "application/json"); err != nil {
		return "", fmt.Errorf("store report %s: %w", key, err)
	}

	if e.audit != nil {
		e.audit.Emit(ctx, audit.Event{
			Action:  audit.ActionReportExported,
			UnitID:  unitID.String(),
			Outcome: "ok",
			Detail:  key,
		})
	}
	e.logger.InfoContext(ctx, "report exported", "unit_id", unitID, "key", key)
	return key, nil
}

// Key is the object key a report lands at. Timestamps keep second
// granularity; two builds inside the same second overwrite.
func Key(unitID domain.UnitID, rpt *report.Report) string {
	return fmt.Sprintf("reports/%s/%s.json",
		unitID, rpt.Meta.GeneratedOn.UTC().Format("20060102T150405Z"))
}
