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
	"errors"

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/adapter"
	"dirpx.dev/apierr/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// FromError classifies an error returned by a gRPC call.
//
// When the status carries an ErrorInfo produced by this package, its code
// is restored exactly. Otherwise the status message is classified like any
// other failure text. A nil err yields nil; an *apierr.Error is returned
// as-is, and an error wrapping one keeps its code.
func FromError(err error, opts ...apierr.Option) *apierr.Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*apierr.Error); ok {
		return e
	}
	// Skip classify and FromError.
	return classify(err, append([]apierr.Option{apierr.WithCallerSkip(2)}, opts...)...)
}

// ExtractErrorInfo returns the first google.rpc.ErrorInfo detail of the
// status carried by err.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := statusOf(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractRetryInfo returns the first google.rpc.RetryInfo detail of the
// status carried by err.
func ExtractRetryInfo(err error) (*errdetails.RetryInfo, bool) {
	st, ok := statusOf(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok {
			return ri, true
		}
	}
	return nil, false
}

// classify must be called directly by the function whose caller is the
// call site, unless a call site option is given.
func classify(err error, opts ...apierr.Option) *apierr.Error {
	opts = append(opts, apierr.WithCause(err))
	if _, ok := apierr.As(err); ok {
		// Already classified further down the chain; its code is kept.
		return apierr.New(err.Error(), opts...)
	}

	st, ok := statusOf(err)
	if !ok {
		return apierr.New(err.Error(), opts...)
	}
	msg := st.Message()
	if info, ok := ExtractErrorInfo(err); ok {
		if c, ok := adapter.FromErrorInfo(info); ok && c != code.Unclassified {
			// The peer already rendered "<code> : text".
			if parsed, text, split := code.Split(msg); split && parsed == c {
				msg = text
			}
			return apierr.E(c, msg, opts...)
		}
	}
	return apierr.New(msg, opts...)
}

func statusOf(err error) (*status.Status, bool) {
	if err == nil {
		return nil, false
	}
	var se interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &se) {
		return nil, false
	}
	st := se.GRPCStatus()
	return st, st != nil
}
