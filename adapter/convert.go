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

package adapter

import (
	"strconv"
	"strings"
	"time"

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/apis"
	"dirpx.dev/apierr/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Metadata keys used in google.rpc.ErrorInfo.
const (
	MetaCode        = "code"
	MetaCategory    = "category"
	MetaRecoverable = "recoverable"
	MetaReason      = "reason"
	MetaComponent   = "component"
	MetaOperation   = "operation"
	MetaTries       = "tries"
)

// ToView converts a classified error into a serializable view. Payloads are
// copied as-is; callers that expose the view to third parties decide what
// to redact.
func ToView(e *apierr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	fr := e.CallSite()
	v := apis.ErrorView{
		Code:        int(e.Code()),
		Category:    string(e.Category()),
		Message:     e.Message(),
		Recoverable: e.IsRecoverable(),
		Reason:      string(e.Reason()),
		Component:   fr.Component,
		Operation:   fr.Operation,
		Tries:       e.Tries(),
		Request:     e.Request(),
		Response:    e.Response(),
	}
	if e.Code().Defined() {
		v.Name = e.Code().String()
	}
	if c := e.Cause(); c != nil {
		v.Cause = c.Error()
	}
	return v
}

// ToDescriptor flattens a classified error and its resolved statuses.
func ToDescriptor(e *apierr.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Code:        int(e.Code()),
		Category:    string(e.Category()),
		Reason:      string(e.Reason()),
		Recoverable: e.IsRecoverable(),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
		Message:     e.Message(),
	}
	if e.Code().Defined() {
		d.Name = e.Code().String()
	}
	return d
}

// ErrorInfo builds a google.rpc.ErrorInfo detail for e.
//
// Reason is the upper-case code name ("INVALID_SESSION_TOKEN"); the numeric
// code travels in the metadata so that peers can restore it exactly.
func ErrorInfo(e *apierr.Error, domain string) *errdetails.ErrorInfo {
	if e == nil {
		return nil
	}
	md := map[string]string{
		MetaCode:        strconv.Itoa(int(e.Code())),
		MetaCategory:    string(e.Category()),
		MetaRecoverable: strconv.FormatBool(e.IsRecoverable()),
	}
	fr := e.CallSite()
	if fr.Component != "" {
		md[MetaComponent] = fr.Component
	}
	if fr.Operation != "" {
		md[MetaOperation] = fr.Operation
	}
	if r := e.Reason(); r != "" {
		md[MetaReason] = string(r)
	}
	if e.Tries() > 0 {
		md[MetaTries] = strconv.Itoa(e.Tries())
	}
	return &errdetails.ErrorInfo{
		Reason:   InfoReason(e.Code()),
		Domain:   domain,
		Metadata: md,
	}
}

// InfoReason renders a code as an ErrorInfo reason.
func InfoReason(c code.Code) string {
	switch {
	case c == code.Unclassified:
		return "UNCLASSIFIED"
	case c.Defined():
		return strings.ToUpper(c.String())
	default:
		return "CODE_" + strconv.Itoa(int(c))
	}
}

// FromErrorInfo restores the code carried by an ErrorInfo produced by
// ErrorInfo. The numeric metadata wins; the reason is used when metadata
// was stripped.
func FromErrorInfo(info *errdetails.ErrorInfo) (code.Code, bool) {
	if info == nil {
		return code.Unclassified, false
	}
	if raw, ok := info.GetMetadata()[MetaCode]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			return code.Code(n), true
		}
	}
	r := info.GetReason()
	if n, ok := strings.CutPrefix(r, "CODE_"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			return code.Code(v), true
		}
	}
	if c, err := code.Parse(r); err == nil && c.Defined() {
		return c, true
	}
	return code.Unclassified, false
}

// RetryInfo returns a google.rpc.RetryInfo hint for recoverable errors and
// nil otherwise. delay is passed through; choosing it is the caller's job.
func RetryInfo(e *apierr.Error, delay time.Duration) *errdetails.RetryInfo {
	if !e.IsRecoverable() {
		return nil
	}
	return &errdetails.RetryInfo{RetryDelay: durationpb.New(delay)}
}
