package metrics

import "time"

// DocumentResult enumerates per-document outcomes for counters.
type DocumentResult string

const (
	DocumentPublished DocumentResult = "published"
	DocumentDraft     DocumentResult = "draft"
	DocumentFailed    DocumentResult = "failed"
)

// Recorder defines observability hooks for vault scans and site builds.
// Implementations may forward to Prometheus or stay no-ops; a nil-safe
// NoopRecorder is the default so instrumentation is always optional.
type Recorder interface {
	ObserveScanDuration(d time.Duration)
	ObserveBuildDuration(d time.Duration)
	SetIndexSize(articles, assets int)
	IncDocument(result DocumentResult)
	IncAssetCopied()
	IncRebuild(trigger string) // trigger: cli|watch
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveScanDuration(time.Duration)  {}
func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) SetIndexSize(int, int)              {}
func (NoopRecorder) IncDocument(DocumentResult)         {}
func (NoopRecorder) IncAssetCopied()                    {}
func (NoopRecorder) IncRebuild(string)                  {}
