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

// Package apierr classifies failures of a remote SOAP/HTTP API client.
//
// A raw failure (a fault string that may embed a numeric code, a lower-level
// transport error, or both) is normalized into an *Error carrying a stable
// code.Code, a human-readable message and the original cause. Callers use
// IsRecoverable to decide whether a retry may succeed; this package never
// retries on its own.
//
//	err := apierr.New("103 : session expired", apierr.WithTries(2))
//	err.Code()          // code.InvalidSessionToken
//	err.Error()         // "103 : session expired [Tried: 2]"
//	err.IsRecoverable() // true
//
// Transport layers attach the raw request and response bodies with
// SetRequest and SetResponse so that the failure can be logged post mortem.
package apierr
