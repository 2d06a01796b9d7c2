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

package apis

// ErrorView is the serializable snapshot of a classified error used for
// structured logs and JSON bodies.
type ErrorView struct {
	// Code is the numeric code; 0 when unclassified.
	Code int `json:"code"`
	// Name is the canonical code name, e.g. "invalid_session_token".
	Name string `json:"name,omitempty"`
	// Category is the taxonomy bucket, e.g. "authentication".
	Category string `json:"category,omitempty"`
	// Message is the final, human-readable message.
	Message string `json:"message"`
	// Recoverable mirrors IsRecoverable.
	Recoverable bool `json:"recoverable"`
	// Reason is the dotted call-site reason.
	Reason string `json:"reason,omitempty"`
	// Component and Operation identify the call site.
	Component string `json:"component,omitempty"`
	Operation string `json:"operation,omitempty"`
	// Tries is the attempt count, if known.
	Tries int `json:"tries,omitempty"`
	// Cause is the text of the wrapped error.
	Cause string `json:"cause,omitempty"`
	// Request and Response are the raw wire bodies, exposed as-is.
	Request  string `json:"request,omitempty"`
	Response string `json:"response,omitempty"`
}

// ErrorDescriptor is the flat, transport-level description of an error
// together with its resolved statuses. It carries no payloads and is meant
// for metrics labels, message bus propagation and client-facing bodies.
type ErrorDescriptor struct {
	Code        int    `json:"code"`
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Recoverable bool   `json:"recoverable"`
	HTTPStatus  int    `json:"http_status,omitempty"`
	GRPCCode    int    `json:"grpc_code,omitempty"`
	Message     string `json:"message,omitempty"`
}
