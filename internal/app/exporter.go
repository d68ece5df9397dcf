package app

import (
	"context"
	"encoding/json"
	"errors"

	"habitlog/internal/domain"
)

// ExportFileName is the artifact name handed to delivery targets. Kept from
// the storage contract this data set has always shipped under.
const ExportFileName = "dados.json"

var (
	// ErrNothingToExport signals an empty collection. Informational for the
	// user, not a system failure.
	ErrNothingToExport = errors.New("no records to export")
	// ErrShareUnavailable indicates the delivery target cannot accept the
	// artifact on this platform.
	ErrShareUnavailable = errors.New("sharing is not available")
)

// Exporter serializes the collection for hand-off to a delivery target. Its
// contract ends at the serialized bytes plus the empty-check; delivery is an
// external collaborator behind domain.Delivery.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders records as two-space-indented JSON with the struct field
// order. An empty collection yields ErrNothingToExport instead of an
// empty-array artifact.
func (e *Exporter) Export(records []domain.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportTo serializes records and hands the artifact to delivery under
// ExportFileName. An unavailable delivery aborts the attempt with
// ErrShareUnavailable; there is no retry.
func (e *Exporter) ExportTo(ctx context.Context, records []domain.Record, delivery domain.Delivery) error {
	data, err := e.Export(records)
	if err != nil {
		return err
	}
	if !delivery.Available() {
		return ErrShareUnavailable
	}
	return delivery.Deliver(ctx, ExportFileName, data)
}
