package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_AllMethodsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveScanDuration(time.Second)
	r.ObserveBuildDuration(time.Second)
	r.SetIndexSize(1, 2)
	r.IncDocument(DocumentPublished)
	r.IncAssetCopied()
	r.IncRebuild("cli")
}

func TestPrometheusRecorder_RegistersAndCounts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveScanDuration(10 * time.Millisecond)
	pr.ObserveBuildDuration(20 * time.Millisecond)
	pr.SetIndexSize(3, 4)
	pr.IncDocument(DocumentPublished)
	pr.IncDocument(DocumentDraft)
	pr.IncAssetCopied()
	pr.IncRebuild("watch")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["obsidian2md_scan_duration_seconds"])
	require.True(t, names["obsidian2md_build_duration_seconds"])
	require.True(t, names["obsidian2md_index_articles"])
	require.True(t, names["obsidian2md_documents_total"])
	require.True(t, names["obsidian2md_rebuilds_total"])
}

func TestPrometheusRecorder_HandlerServesMetrics(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncDocument(DocumentPublished)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	pr.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "obsidian2md_documents_total")
}
