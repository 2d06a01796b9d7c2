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

package grpcx

import (
	"time"

	"dirpx.dev/apierr/metrics"
)

// DefaultRetryDelay is the RetryInfo hint attached to recoverable errors
// when WithRetryDelay is not given.
const DefaultRetryDelay = time.Second

type config struct {
	domain     string
	retryDelay time.Duration
	recorder   metrics.Recorder
}

// Option configures the interceptors.
type Option func(*config)

func newConfig(opts []Option) config {
	c := config{retryDelay: DefaultRetryDelay}
	for _, opt := range opts {
		opt(&c)
	}
	c.recorder = metrics.OrNoop(c.recorder)
	return c
}

// WithDomain sets the ErrorInfo domain, typically the service name.
func WithDomain(domain string) Option {
	return func(c *config) { c.domain = domain }
}

// WithRetryDelay sets the RetryInfo hint. Zero or negative disables RetryInfo.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) { c.retryDelay = d }
}

// WithRecorder reports every classified error to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *config) { c.recorder = r }
}
