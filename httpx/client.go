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

package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/metrics"
)

// Client executes requests and classifies their failures.
type Client struct {
	// HTTP is the underlying client; nil means http.DefaultClient.
	HTTP *http.Client
	// Recorder observes every classified failure; nil disables it.
	Recorder metrics.Recorder
	// MaxBody bounds the response bytes read; zero or negative means 4 MiB.
	MaxBody int64
}

const defaultMaxBody = 4 << 20

// Do sends req and returns the response body of a successful exchange.
//
// A non-nil error is always an *apierr.Error whose call site is the caller
// of Do and whose attempt count comes from apierr.TriesFromContext on the
// request context. Failures are classified as follows:
//   - transport errors by their text and cause; timeouts are reported as
//     failures to fetch the HTTP headers;
//   - a SOAP Fault by its fault string, whatever the HTTP status;
//   - any other non-2xx status as an unclassified error;
//   - a 2xx body that is not a SOAP envelope as a missing XML document.
func (c *Client) Do(req *http.Request) ([]byte, error) {
	reqBody := requestBody(req)
	tries := apierr.TriesFromContext(req.Context())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		msg := err.Error()
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			msg = "Error Fetching http headers: " + msg
		}
		return nil, c.fail(apierr.New(msg,
			apierr.WithCause(err), apierr.WithTries(tries), apierr.WithCallerSkip(1)), reqBody, "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody()))
	if err != nil {
		return nil, c.fail(apierr.New(err.Error(),
			apierr.WithCause(err), apierr.WithTries(tries), apierr.WithCallerSkip(1)), reqBody, "")
	}

	f, isEnvelope := parseEnvelope(body)
	switch {
	case f != nil:
		return nil, c.fail(apierr.New(f.text(),
			apierr.WithTries(tries), apierr.WithCallerSkip(1)), reqBody, string(body))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, c.fail(apierr.New(fmt.Sprintf("unexpected HTTP status %s", resp.Status),
			apierr.WithTries(tries), apierr.WithCallerSkip(1)), reqBody, string(body))
	case !isEnvelope:
		return nil, c.fail(apierr.New("looks like we got no XML document",
			apierr.WithTries(tries), apierr.WithCallerSkip(1)), reqBody, string(body))
	}
	return body, nil
}

func (c *Client) fail(e *apierr.Error, request, response string) *apierr.Error {
	e.SetRequest(request).SetResponse(response)
	metrics.OrNoop(c.Recorder).IncClassified(e.Code())
	return e
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) maxBody() int64 {
	if c.MaxBody > 0 {
		return c.MaxBody
	}
	return defaultMaxBody
}

// requestBody returns a copy of the outgoing body when it can be replayed.
func requestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	rc, err := req.GetBody()
	if err != nil {
		return ""
	}
	defer rc.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return ""
	}
	return buf.String()
}
