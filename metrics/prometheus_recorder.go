/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package metrics

import (
	"strconv"

	"dirpx.dev/apierr/code"
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder with a Prometheus counter.
type PrometheusRecorder struct {
	classified *prom.CounterVec
}

// NewPrometheusRecorder creates the counters and registers them on reg. A nil
// reg gets a private registry, which keeps the recorder usable in tests.
func NewPrometheusRecorder(reg prom.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		classified: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apierr",
			Name:      "classified_total",
			Help:      "Classified API client errors by code",
		}, []string{"code", "category", "recoverable"}),
	}
	if err := reg.Register(pr.classified); err != nil {
		return nil, err
	}
	return pr, nil
}

// IncClassified counts one failure classified as c.
func (p *PrometheusRecorder) IncClassified(c code.Code) {
	if p == nil || p.classified == nil {
		return
	}
	p.classified.WithLabelValues(
		strconv.Itoa(int(c)),
		string(c.Category()),
		strconv.FormatBool(c.Recoverable()),
	).Inc()
}
