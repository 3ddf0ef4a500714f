package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesFetched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawler_pages_fetched_total",
			Help: "Total de páginas descargadas por fase.",
		},
		[]string{"phase"},
	)
	FetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crawler_fetch_errors_total",
			Help: "Total de fallos de descarga por fase.",
		},
		[]string{"phase"},
	)
	ProductsParsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crawler_products_parsed_total",
			Help: "Total de productos extraídos con éxito.",
		},
	)
	CrawlsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crawler_runs_completed_total",
			Help: "Total de escaneos completos con al menos un producto.",
		},
	)
	ChatTurns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total de turnos de chat por resultado.",
		},
		[]string{"result"},
	)
)

func Start(port string) {
	prometheus.MustRegister(PagesFetched, FetchErrors, ProductsParsed, CrawlsCompleted, ChatTurns)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
