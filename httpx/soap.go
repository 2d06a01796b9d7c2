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
	"encoding/xml"
	"strings"
)

// envelope matches SOAP 1.1 and 1.2 envelopes in any namespace.
type envelope struct {
	XMLName xml.Name
	Body    struct {
		Fault *fault `xml:"Fault"`
	} `xml:"Body"`
}

type fault struct {
	// SOAP 1.1
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	// SOAP 1.2
	Reason struct {
		Text []string `xml:"Text"`
	} `xml:"Reason"`
}

func (f *fault) text() string {
	if s := strings.TrimSpace(f.String); s != "" {
		return s
	}
	for _, t := range f.Reason.Text {
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
	}
	return strings.TrimSpace(f.Code)
}

// parseEnvelope reports whether body is a SOAP envelope and returns its
// fault, if any.
func parseEnvelope(body []byte) (*fault, bool) {
	var env envelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.XMLName.Local != "Envelope" {
		return nil, false
	}
	return env.Body.Fault, true
}
