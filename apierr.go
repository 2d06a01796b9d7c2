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
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"dirpx.dev/apierr/callsite"
	"dirpx.dev/apierr/code"
	"dirpx.dev/apierr/reason"
)

// Error is a classified API client failure.
//
// It carries:
//   - a code, resolved once at construction and never changed afterwards;
//   - a message, which may be replaced or extended later;
//   - the wrapped cause, if any;
//   - the attempt count reported by the caller;
//   - the raw request and response bodies, attached by the transport;
//   - the call site, captured at construction and resolved on demand.
//
// An Error is owned by the request/response cycle that produced it and must
// not be mutated from more than one goroutine.
type Error struct {
	code     code.Code
	message  string
	cause    error
	tries    int
	request  string
	response string
	site     *callsite.Trace
}

// New classifies msg.
//
// Code resolution, in priority order:
//  1. an explicit, non-zero WithCode;
//  2. a leading "<number> : <text>" in msg;
//  3. the code of an *Error found in the cause chain, then a known
//     transport fault fragment in msg (see code.FromFault), then a
//     recognizable network error in the cause (see code.FromCause).
//
// A code resolved by 1 or 2 is rendered as a "<code> : " message prefix;
// a code inferred by 3 is metadata only and leaves the text untouched. When
// more than one attempt was made, " [Tried: n]" is appended.
func New(msg string, opts ...Option) *Error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return build(msg, o)
}

// E classifies msg with an explicit code. It is New with WithCode(c).
func E(c code.Code, msg string, opts ...Option) *Error {
	o := options{code: c}
	for _, opt := range opts {
		opt(&o)
	}
	return build(msg, o)
}

// Wrap classifies a lower-level error, using its text as the message and
// keeping it as the cause. A nil err yields nil. An err that already is an
// *Error is returned as-is; one that wraps an *Error takes over its code,
// unprefixed, so that a failure is never classified twice.
func Wrap(err error, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	o := options{cause: err}
	for _, opt := range opts {
		opt(&o)
	}
	return build(err.Error(), o)
}

// build normalizes the inputs. It must be called directly by an exported
// constructor so that the captured call site is the constructor's caller.
func build(msg string, o options) *Error {
	c := o.code
	prefixed := c != code.Unclassified
	if !prefixed {
		if parsed, text, ok := code.Split(msg); ok {
			c, msg = parsed, text
			prefixed = c != code.Unclassified
		}
	}
	if c == code.Unclassified {
		var inner *Error
		if errors.As(o.cause, &inner) && inner.code != code.Unclassified {
			c = inner.code
		} else if inferred, ok := code.FromFault(msg); ok {
			c = inferred
		} else if inferred, ok := code.FromCause(o.cause); ok {
			c = inferred
		}
	}
	if prefixed {
		msg = strconv.Itoa(int(c)) + " : " + msg
	}
	if o.tries > 1 {
		msg += fmt.Sprintf(" [Tried: %d]", o.tries)
	}

	e := &Error{code: c, message: msg, cause: o.cause, tries: o.tries}
	if o.site != nil {
		e.site = o.site
	} else {
		// Skip build and the exported constructor.
		e.site = callsite.Capture(2 + o.skip)
	}
	return e
}

// Error implements the error interface and returns the final message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Unwrap returns the cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Cause returns the wrapped lower-level failure, or nil.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Code returns the resolved code; code.Unclassified when none was found.
func (e *Error) Code() code.Code {
	if e == nil {
		return code.Unclassified
	}
	return e.code
}

// ErrorCode returns the numeric code.
func (e *Error) ErrorCode() int { return int(e.Code()) }

// Category returns the taxonomy bucket of the code.
func (e *Error) Category() code.Category { return e.Code().Category() }

// Message returns the current message. It is the same text as Error().
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Tries returns the attempt count given at construction; 0 when unknown.
func (e *Error) Tries() int {
	if e == nil {
		return 0
	}
	return e.tries
}

// IsRecoverable reports whether a caller-driven retry may succeed. It depends
// on the code only.
func (e *Error) IsRecoverable() bool {
	if e == nil {
		return false
	}
	return e.code.Recoverable()
}

// SetMessage replaces the message. The code is left untouched.
func (e *Error) SetMessage(msg string) *Error {
	if e == nil {
		return nil
	}
	e.message = msg
	return e
}

// AppendToMessage appends text to the message, separated by a space.
// The code is left untouched.
func (e *Error) AppendToMessage(text string) *Error {
	if e == nil {
		return nil
	}
	e.message += " " + text
	return e
}

// SetRequest attaches the raw outbound request body. It overwrites any
// previous value.
func (e *Error) SetRequest(body string) *Error {
	if e == nil {
		return nil
	}
	e.request = body
	return e
}

// Request returns the raw request body, or "" if none was attached.
func (e *Error) Request() string {
	if e == nil {
		return ""
	}
	return e.request
}

// SetResponse attaches the raw inbound response body. It overwrites any
// previous value.
func (e *Error) SetResponse(body string) *Error {
	if e == nil {
		return nil
	}
	e.response = body
	return e
}

// Response returns the raw response body, or "" if none was attached.
func (e *Error) Response() string {
	if e == nil {
		return ""
	}
	return e.response
}

// CallSite returns the resolved call site.
func (e *Error) CallSite() callsite.Frame {
	if e == nil {
		return callsite.Frame{}
	}
	return e.site.Frame()
}

// CallSiteComponent returns the component (receiver type or package) that
// raised the error.
func (e *Error) CallSiteComponent() string { return e.CallSite().Component }

// CallSiteOperation returns the operation (method or function) that raised
// the error.
func (e *Error) CallSiteOperation() string { return e.CallSite().Operation }

// Reason returns the call site as a dotted reason, e.g.
// "contact_service.add_contacts".
func (e *Error) Reason() reason.Reason {
	fr := e.CallSite()
	return reason.FromCallSite(fr.Component, fr.Operation)
}

// ErrorReason returns Reason as a string.
func (e *Error) ErrorReason() string { return string(e.Reason()) }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.Int("code", int(e.code)),
		slog.String("name", e.code.String()),
		slog.String("category", string(e.code.Category())),
		slog.String("message", e.message),
		slog.Bool("recoverable", e.code.Recoverable()),
	}
	if e.tries > 0 {
		attrs = append(attrs, slog.Int("tries", e.tries))
	}
	if fr := e.site.Frame(); fr.Component != "" || fr.Operation != "" {
		attrs = append(attrs, slog.String("component", fr.Component), slog.String("operation", fr.Operation))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	if e.request != "" {
		attrs = append(attrs, slog.String("request", e.request))
	}
	if e.response != "" {
		attrs = append(attrs, slog.String("response", e.response))
	}
	return slog.GroupValue(attrs...)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in err's chain, or
// code.Unclassified.
func CodeOf(err error) code.Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return code.Unclassified
}

// IsRecoverable reports whether err wraps a recoverable *Error.
// Errors that were never classified are not recoverable.
func IsRecoverable(err error) bool {
	if e, ok := As(err); ok {
		return e.IsRecoverable()
	}
	return false
}
