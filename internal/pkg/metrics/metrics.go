package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder agrupa as métricas do estoque de ondulados.
type Recorder struct {
	mutations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	records         prometheus.Gauge
}

// NewRecorder cria e registra as métricas em reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ondulado",
			Name:      "mutations_total",
			Help:      "Mutações aplicadas à coleção, por operação.",
		}, []string{"op"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ondulado",
			Name:      "persist_failures_total",
			Help:      "Falhas ao gravar a coleção no armazenamento.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ondulado",
			Name:      "records",
			Help:      "Quantidade de ondulados na coleção em memória.",
		}),
	}
	reg.MustRegister(r.mutations, r.persistFailures, r.records)
	return r
}

func (r *Recorder) Mutation(op string) { r.mutations.WithLabelValues(op).Inc() }
func (r *Recorder) PersistFailure()    { r.persistFailures.Inc() }
func (r *Recorder) SetRecords(n int)   { r.records.Set(float64(n)) }

// Nop descarta tudo; usado quando nenhuma métrica é configurada.
type Nop struct{}

func (Nop) Mutation(string) {}
func (Nop) PersistFailure() {}
func (Nop) SetRecords(int)  {}
