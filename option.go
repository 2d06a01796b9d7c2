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

package apierr

import (
	"dirpx.dev/apierr/callsite"
	"dirpx.dev/apierr/code"
)

// options collects constructor inputs before normalization runs.
type options struct {
	code  code.Code
	tries int
	cause error
	site  *callsite.Trace
	skip  int
}

// Option configures New, E and Wrap.
type Option func(*options)

// WithCode sets an explicit code. A zero code is the same as not setting one.
func WithCode(c code.Code) Option {
	return func(o *options) { o.code = c }
}

// WithTries records how many attempts had been made when the failure was
// raised. Counts above 1 are rendered as a " [Tried: n]" message suffix.
func WithTries(n int) Option {
	return func(o *options) { o.tries = n }
}

// WithCause attaches the lower-level failure. A nil err is ignored.
func WithCause(err error) Option {
	return func(o *options) {
		if err != nil {
			o.cause = err
		}
	}
}

// WithCallSite pins the call site instead of capturing the stack. Transport
// adapters use it to report the remote operation they were executing.
func WithCallSite(component, operation string) Option {
	return func(o *options) { o.site = callsite.Fixed(component, operation) }
}

// WithCallerSkip skips n additional stack frames when capturing the call
// site, for helpers that construct errors on behalf of their caller.
func WithCallerSkip(n int) Option {
	return func(o *options) { o.skip += n }
}
