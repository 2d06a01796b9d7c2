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

package code

import (
	"errors"
	"net/url"
	"strings"
	"syscall"
)

// fault pairs a lower-level transport message fragment with its code.
type fault struct {
	fragment string
	code     Code
}

// faults is checked in order; the first fragment found wins.
var faults = []fault{
	{"error fetching http headers", HTTPHeaderError},
	{"looks like we got no xml document", NoXMLDocument},
	{"could not connect to host", ConnectError},
	{"parsing wsdl", WSDLParseError},
	{"there was an error in your soap request", RequestError},
	{"connection reset by peer", ConnectionReset},
	{"unable to parse url", InvalidURL},
}

// FromFault infers a transport code from the raw text of a lower-level
// fault. Matching is a case-insensitive substring search.
func FromFault(msg string) (Code, bool) {
	if msg == "" {
		return Unclassified, false
	}
	lower := strings.ToLower(msg)
	for _, f := range faults {
		if strings.Contains(lower, f.fragment) {
			return f.code, true
		}
	}
	return Unclassified, false
}

// FromCause infers a transport code from a Go network error when its text
// did not match any fragment, e.g. a wrapped syscall.ECONNRESET.
func FromCause(err error) (Code, bool) {
	if err == nil {
		return Unclassified, false
	}
	switch {
	case errors.Is(err, syscall.ECONNRESET):
		return ConnectionReset, true
	case errors.Is(err, syscall.ECONNREFUSED):
		return ConnectError, true
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Op == "parse" {
		return InvalidURL, true
	}
	return Unclassified, false
}
