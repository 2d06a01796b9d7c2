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

import "sort"

// Remote API codes.
//
// These are reported by the API in the "<code> : <text>" form of a fault
// string.
const (
	// UnknownError: there was an unknown API error. Please try your request
	// again shortly.
	UnknownError Code = 101

	// InvalidToken: authentication failed for the API token.
	InvalidToken Code = 102

	// InvalidSessionToken: the session is invalid or expired and the client
	// has to log in again. Recoverable: a retry normally starts a new session.
	InvalidSessionToken Code = 103

	// InvalidAccess: the token does not have access to the method.
	InvalidAccess Code = 104

	// InvalidInputArray: at least one item must be supplied in the input array.
	InvalidInputArray Code = 105

	// InvalidParameter: a parameter could not be verified.
	InvalidParameter Code = 106

	// InvalidRequest: there was an error in the soap request.
	InvalidRequest Code = 107

	// ShardOffline: the API is undergoing maintenance.
	ShardOffline Code = 108

	// SiteInactive: the site is marked as inactive.
	SiteInactive Code = 109

	// RequiredFields: required fields are missing.
	RequiredFields Code = 110

	// UnauthorizedIP: the caller's IP address has no access for the token.
	UnauthorizedIP Code = 111

	// InvalidFilter: invalid filter type (must be AND or OR).
	InvalidFilter Code = 112

	// ReadError: the query results could not be read.
	ReadError Code = 113
)

// Transport codes, inferred from lower-level SOAP/HTTP faults.
const (
	HTTPHeaderError Code = 98001 // Error Fetching http headers
	NoXMLDocument   Code = 98002 // empty or non-XML response body
	InvalidURL      Code = 98003 // endpoint URL could not be parsed
	ConnectError    Code = 98004 // could not connect to host
	WSDLParseError  Code = 98005 // WSDL could not be parsed
	RequestError    Code = 98006 // malformed soap request, rejected by the transport
	ConnectionReset Code = 98007 // connection reset by peer
)

// Client codes, raised by the library itself.
const (
	EmptyResult Code = 99001
	NoToken     Code = 99002
)

type descriptor struct {
	name     string
	category Category
	text     string
}

var table = map[Code]descriptor{
	UnknownError:        {"unknown_error", CategoryUnknown, "There was an unknown API error. Please try your request again shortly."},
	InvalidToken:        {"invalid_token", CategoryAuth, "Authentication failed for token."},
	InvalidSessionToken: {"invalid_session_token", CategoryAuth, "Your session is invalid. Please log in again."},
	InvalidAccess:       {"invalid_access", CategoryAuth, "You do not have valid access for this method."},
	InvalidInputArray:   {"invalid_input_array", CategoryValidation, "You must specify at least one item in the input array."},
	InvalidParameter:    {"invalid_parameter", CategoryValidation, "Unable to verify parameter."},
	InvalidRequest:      {"invalid_request", CategoryProtocol, "There was an error in your soap request. Please examine the request and try again."},
	ShardOffline:        {"shard_offline", CategoryAvailability, "The API is currently undergoing maintenance. Please try your request again later."},
	SiteInactive:        {"site_inactive", CategoryAuth, "This site is currently marked as 'inactive'."},
	RequiredFields:      {"required_fields", CategoryValidation, "Required fields are missing."},
	UnauthorizedIP:      {"unauthorized_ip", CategoryAuth, "Your IP address does not have access for token."},
	InvalidFilter:       {"invalid_filter", CategoryValidation, "Invalid filter type (must be AND or OR)."},
	ReadError:           {"read_error", CategoryAvailability, "There was an error reading your query results. Please try your request again shortly."},

	HTTPHeaderError: {"http_header_error", CategoryAvailability, ""},
	NoXMLDocument:   {"no_xml_document", CategoryProtocol, ""},
	InvalidURL:      {"invalid_url", CategoryProtocol, ""},
	ConnectError:    {"connect_error", CategoryAvailability, ""},
	WSDLParseError:  {"wsdl_parse_error", CategoryProtocol, ""},
	RequestError:    {"request_error", CategoryProtocol, ""},
	ConnectionReset: {"connection_reset", CategoryAvailability, ""},

	EmptyResult: {"empty_result", CategoryUnknown, ""},
	NoToken:     {"no_token", CategoryAuth, ""},
}

var byName = func() map[string]Code {
	m := make(map[string]Code, len(table))
	for c, d := range table {
		m[d.name] = c
	}
	return m
}()

// All returns every defined code in ascending order.
func All() []Code {
	out := make([]Code, 0, len(table))
	for c := range table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
