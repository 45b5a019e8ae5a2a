package telemetry

import "context"

// UseCase ingests the desktop widget's ~5 second samples. Each sample is
// persisted as an ambient-telemetry emission record and checked against a
// fixed spike threshold with no idempotence tracking; every sample at or
// above the threshold re-sends the alert.
type UseCase interface {
	Ingest(ctx context.Context, ip IngestInput) (IngestOutput, error)
}
