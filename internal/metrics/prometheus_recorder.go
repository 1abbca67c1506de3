package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	scanDuration  prom.Histogram
	buildDuration prom.Histogram
	indexArticles prom.Gauge
	indexAssets   prom.Gauge
	documents     *prom.CounterVec
	assetsCopied  prom.Counter
	rebuilds      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		scanDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "obsidian2md",
			Name:      "scan_duration_seconds",
			Help:      "Duration of vault index scans",
			Buckets:   prom.DefBuckets,
		}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "obsidian2md",
			Name:      "build_duration_seconds",
			Help:      "Duration of full site builds",
			Buckets:   prom.DefBuckets,
		}),
		indexArticles: prom.NewGauge(prom.GaugeOpts{
			Namespace: "obsidian2md",
			Name:      "index_articles",
			Help:      "Articles in the current vault index",
		}),
		indexAssets: prom.NewGauge(prom.GaugeOpts{
			Namespace: "obsidian2md",
			Name:      "index_assets",
			Help:      "Assets in the current vault index",
		}),
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "obsidian2md",
			Name:      "documents_total",
			Help:      "Documents processed by outcome",
		}, []string{"result"}),
		assetsCopied: prom.NewCounter(prom.CounterOpts{
			Namespace: "obsidian2md",
			Name:      "assets_copied_total",
			Help:      "Static assets copied into the output tree",
		}),
		rebuilds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "obsidian2md",
			Name:      "rebuilds_total",
			Help:      "Site rebuilds by trigger",
		}, []string{"trigger"}),
	}
	reg.MustRegister(pr.scanDuration, pr.buildDuration, pr.indexArticles, pr.indexAssets,
		pr.documents, pr.assetsCopied, pr.rebuilds)
	return pr
}

func (pr *PrometheusRecorder) ObserveScanDuration(d time.Duration) {
	pr.scanDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) SetIndexSize(articles, assets int) {
	pr.indexArticles.Set(float64(articles))
	pr.indexAssets.Set(float64(assets))
}

func (pr *PrometheusRecorder) IncDocument(result DocumentResult) {
	pr.documents.WithLabelValues(string(result)).Inc()
}

func (pr *PrometheusRecorder) IncAssetCopied() {
	pr.assetsCopied.Inc()
}

func (pr *PrometheusRecorder) IncRebuild(trigger string) {
	pr.rebuilds.WithLabelValues(trigger).Inc()
}

// Handler exposes the recorder's registry for the preview server's /metrics
// endpoint.
func (pr *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{})
}
