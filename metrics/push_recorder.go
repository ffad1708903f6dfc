package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const JobName = "contract_deploy"

// PushRecorder reports the outcome of a single deployment run to a
// Prometheus Pushgateway, grouped by contract and network.
type PushRecorder struct {
	gatewayURL string
	network    string
	nowFunc    func() time.Time
}

func NewPushRecorder(gatewayURL, network string, nowFunc func() time.Time) *PushRecorder {
	return &PushRecorder{gatewayURL: gatewayURL, network: network, nowFunc: nowFunc}
}

// Record replaces the metrics of the previous run for the same contract and
// network. The run id is exposed as a label on contract_deploy_run_info.
func (r *PushRecorder) Record(unitName, runID string, succeeded bool, duration time.Duration) error {
	durationGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "contract_deploy_duration_seconds",
		Help: "Time taken by the last deployment run",
	})
	successGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "contract_deploy_success",
		Help: "1 if the last deployment run succeeded, 0 otherwise",
	})
	completionGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "contract_deploy_last_completion_timestamp_seconds",
		Help: "Unix time the last deployment run finished",
	})

	runInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "contract_deploy_run_info",
		Help: "Identifies the last deployment run",
	}, []string{"run_id"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(durationGauge, successGauge, completionGauge, runInfo)

	runInfo.WithLabelValues(runID).Set(1)

	durationGauge.Set(duration.Seconds())
	if succeeded {
		successGauge.Set(1)
	}
	completionGauge.Set(float64(r.nowFunc().Unix()))

	err := push.New(r.gatewayURL, JobName).
		Gatherer(registry).
		Grouping("contract", unitName).
		Grouping("network", r.network).
		Push()
	if err != nil {
		return errors.Wrapf(err, "failed to push metrics to %s", r.gatewayURL)
	}
	return nil
}
