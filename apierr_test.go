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
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"
	"testing"

	"dirpx.dev/apierr/apis"
	"dirpx.dev/apierr/code"
	"dirpx.dev/apierr/reason"
)

func TestNew_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		opts     []Option
		wantCode code.Code
		wantMsg  string
	}{
		{"parsed code is re-prefixed", "107 : bad soap body", nil, code.InvalidRequest, "107 : bad soap body"},
		{"parsed code without spaces", "103:session expired", nil, code.InvalidSessionToken, "103 : session expired"},
		{"explicit code", "session expired", []Option{WithCode(code.InvalidSessionToken)}, code.InvalidSessionToken, "103 : session expired"},
		{"explicit code wins over parsed", "101 : boom", []Option{WithCode(code.ReadError)}, code.ReadError, "113 : 101 : boom"},
		{"unclassified", "something failed", nil, code.Unclassified, "something failed"},
		{"transport fault is not prefixed", "SSL: Connection reset by peer", nil, code.ConnectionReset, "SSL: Connection reset by peer"},
		{"fault fragment case insensitive", "ERROR FETCHING HTTP HEADERS", nil, code.HTTPHeaderError, "ERROR FETCHING HTTP HEADERS"},
		{"non numeric left part", "SOAP-ERROR: Parsing WSDL: Couldn't load", nil, code.WSDLParseError, "SOAP-ERROR: Parsing WSDL: Couldn't load"},
		{"zero parsed code is not prefixed", "0 : Could not connect to host", nil, code.ConnectError, "Could not connect to host"},
		{"tries appended", "103 : session expired", []Option{WithTries(2)}, code.InvalidSessionToken, "103 : session expired [Tried: 2]"},
		{"tries on unclassified", "something failed", []Option{WithTries(3)}, code.Unclassified, "something failed [Tried: 3]"},
		{"single try not appended", "something failed", []Option{WithTries(1)}, code.Unclassified, "something failed"},
		{"undefined numeric code", "555 : odd", nil, code.Code(555), "555 : odd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.msg, tt.opts...)
			if e.Code() != tt.wantCode {
				t.Fatalf("Code() = %d, want %d", e.Code(), tt.wantCode)
			}
			if e.Error() != tt.wantMsg {
				t.Fatalf("Error() = %q, want %q", e.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNew_ExampleScenario(t *testing.T) {
	e := New("103 : session expired", WithTries(2))
	if e.Code() != code.InvalidSessionToken {
		t.Fatalf("Code() = %d", e.Code())
	}
	if e.Error() != "103 : session expired [Tried: 2]" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if !e.IsRecoverable() {
		t.Fatal("103 must be recoverable")
	}
	if e.Tries() != 2 {
		t.Fatalf("Tries() = %d", e.Tries())
	}
}

func TestNew_TriesSuffixOnce(t *testing.T) {
	e := New("101 : boom", WithTries(3))
	if strings.Count(e.Error(), " [Tried: 3]") != 1 {
		t.Fatalf("suffix must appear exactly once: %q", e.Error())
	}
}

func TestIsRecoverable(t *testing.T) {
	for _, c := range code.All() {
		e := E(c, "x")
		if e.IsRecoverable() != c.Recoverable() {
			t.Fatalf("E(%s).IsRecoverable() = %v", c, e.IsRecoverable())
		}
	}
	if New("something failed").IsRecoverable() {
		t.Fatal("unclassified must not be recoverable")
	}
	if E(code.Unclassified, "x").IsRecoverable() {
		t.Fatal("zero code must not be recoverable")
	}
	var nilErr *Error
	if nilErr.IsRecoverable() {
		t.Fatal("nil must not be recoverable")
	}
	// Transport-inferred codes go through the same set lookup.
	if !New("Could not connect to host").IsRecoverable() {
		t.Fatal("connect error must be recoverable")
	}
	if New("Unable to parse URL").IsRecoverable() {
		t.Fatal("invalid URL must not be recoverable")
	}
}

func TestMessageMutationKeepsCode(t *testing.T) {
	e := New("110 : Required fields are missing")
	e.AppendToMessage("email")
	if e.Error() != "110 : Required fields are missing email" {
		t.Fatalf("AppendToMessage: %q", e.Error())
	}
	e.SetMessage("108 : replaced")
	if e.Code() != code.RequiredFields {
		t.Fatalf("code re-derived from message: %d", e.Code())
	}
	if e.Message() != "108 : replaced" {
		t.Fatalf("SetMessage: %q", e.Message())
	}
}

func TestPayloadsOverwrite(t *testing.T) {
	e := New("101 : boom")
	if e.Request() != "" || e.Response() != "" {
		t.Fatal("payloads must start empty")
	}
	e.SetRequest("<req1/>").SetRequest("<req2/>")
	e.SetResponse("<resp1/>").SetResponse("<resp2/>")
	if e.Request() != "<req2/>" || e.Response() != "<resp2/>" {
		t.Fatalf("got %q / %q", e.Request(), e.Response())
	}
	if e.Code() != code.UnknownError {
		t.Fatal("payloads must not affect code")
	}
}

func TestCause(t *testing.T) {
	root := errors.New("dial tcp: i/o timeout")
	e := New("101 : boom", WithCause(root))
	if e.Cause() != root || errors.Unwrap(e) != root {
		t.Fatal("Cause/Unwrap mismatch")
	}
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if New("x", WithCause(nil)).Cause() != nil {
		t.Fatal("nil cause must be ignored")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	low := errors.New("SoapFault: looks like we got no XML document")
	e := Wrap(low, WithTries(4))
	if e.Code() != code.NoXMLDocument {
		t.Fatalf("Code() = %d", e.Code())
	}
	if e.Error() != low.Error()+" [Tried: 4]" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if e.Cause() != low {
		t.Fatal("cause not kept")
	}
	if Wrap(e) != e {
		t.Fatal("Wrap(*Error) must return it unchanged")
	}
}

func TestWrap_InfersFromNetworkCause(t *testing.T) {
	low := fmt.Errorf("read tcp 10.0.0.1:443: %w", syscall.ECONNRESET)
	e := Wrap(low)
	if e.Code() != code.ConnectionReset {
		t.Fatalf("Code() = %d", e.Code())
	}
	if e.Error() != low.Error() {
		t.Fatalf("message must stay unprefixed: %q", e.Error())
	}
}

func TestWrap_KeepsCodeOfWrappedError(t *testing.T) {
	inner := E(code.InvalidSessionToken, "session expired")
	outer := fmt.Errorf("login: %w", inner)

	e := Wrap(outer, WithTries(2))
	if e.Code() != code.InvalidSessionToken {
		t.Fatalf("Code() = %d, want %d", e.Code(), code.InvalidSessionToken)
	}
	if want := "login: 103 : session expired [Tried: 2]"; e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
	if !e.IsRecoverable() || !IsRecoverable(e) {
		t.Fatal("code of the wrapped error must keep it recoverable")
	}
	if !errors.Is(e, inner) {
		t.Fatal("wrapped error must stay in the chain")
	}

	// An unclassified inner error does not hide later inference.
	unclassified := New("plain failure")
	e = New("Connection reset by peer", WithCause(unclassified))
	if e.Code() != code.ConnectionReset {
		t.Fatalf("Code() = %d, want %d", e.Code(), code.ConnectionReset)
	}

	// An explicit or parsed code still wins over the chain.
	e = New("106 : limit", WithCause(outer))
	if e.Code() != code.InvalidParameter {
		t.Fatalf("Code() = %d, want %d", e.Code(), code.InvalidParameter)
	}
}

func TestNilError(t *testing.T) {
	var e *Error
	if e.Unwrap() != nil || e.Cause() != nil {
		t.Fatal("nil Error must have no cause")
	}
	if e.Message() != "" || e.Tries() != 0 || e.Request() != "" || e.Response() != "" {
		t.Fatal("nil Error must report zero values")
	}
	if e.CallSiteComponent() != "" || e.CallSiteOperation() != "" || e.Reason() != "" {
		t.Fatal("nil Error must report an empty call site")
	}
	if e.SetMessage("x") != nil || e.AppendToMessage("x") != nil || e.SetRequest("x") != nil || e.SetResponse("x") != nil {
		t.Fatal("setters on a nil Error must return nil")
	}
	if errors.Is(error(e), errors.New("x")) {
		t.Fatal("errors.Is on a nil Error must be false")
	}
}

type contactService struct{}

func (s *contactService) AddContacts() *Error { return New("105 : empty input") }

func raise(msg string) *Error { return New(msg, WithCallerSkip(1)) }

func TestCallSite(t *testing.T) {
	e := (&contactService{}).AddContacts()
	if e.CallSiteComponent() != "contactService" {
		t.Fatalf("CallSiteComponent() = %q", e.CallSiteComponent())
	}
	if e.CallSiteOperation() != "AddContacts" {
		t.Fatalf("CallSiteOperation() = %q", e.CallSiteOperation())
	}
	if e.Reason() != reason.Reason("contact_service.add_contacts") {
		t.Fatalf("Reason() = %q", e.Reason())
	}
	if e.CallSite().Line == 0 {
		t.Fatal("line must be resolved")
	}
}

func TestCallSite_CallerSkip(t *testing.T) {
	e := raise("101 : boom")
	if e.CallSiteOperation() != "TestCallSite_CallerSkip" {
		t.Fatalf("CallSiteOperation() = %q", e.CallSiteOperation())
	}
}

func TestCallSite_Pinned(t *testing.T) {
	e := New("101 : boom", WithCallSite("ContactService", "ReadContacts"))
	if e.CallSiteComponent() != "ContactService" || e.CallSiteOperation() != "ReadContacts" {
		t.Fatalf("got %q/%q", e.CallSiteComponent(), e.CallSiteOperation())
	}
}

func TestCallSite_NeverFails(t *testing.T) {
	e := New("x", WithCallerSkip(10000))
	if e.CallSiteOperation() == "" {
		t.Fatal("expected the oldest frame as fallback")
	}
	var zero Error
	if zero.CallSiteComponent() != "" || zero.CallSiteOperation() != "" {
		t.Fatal("zero Error must report empty call site")
	}
}

func TestHelpers(t *testing.T) {
	e := New("108 : maintenance")
	wrapped := fmt.Errorf("contact sync: %w", e)
	if got, ok := As(wrapped); !ok || got != e {
		t.Fatal("As failed")
	}
	if CodeOf(wrapped) != code.ShardOffline {
		t.Fatal("CodeOf failed")
	}
	if !IsRecoverable(wrapped) {
		t.Fatal("IsRecoverable failed")
	}
	plain := errors.New("x")
	if CodeOf(plain) != code.Unclassified || IsRecoverable(plain) {
		t.Fatal("plain errors are unclassified")
	}
	if e.Category() != code.CategoryAvailability || e.ErrorCode() != 108 {
		t.Fatal("Category/ErrorCode mismatch")
	}
}

func TestTriesContext(t *testing.T) {
	ctx := ContextWithTries(context.Background(), 3)
	if TriesFromContext(ctx) != 3 {
		t.Fatal("tries not stored")
	}
	if TriesFromContext(context.Background()) != 0 {
		t.Fatal("missing tries must be 0")
	}
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := New("103 : session expired", WithTries(2)).SetRequest("<login/>")
	logger.Error("call failed", "err", e)
	out := buf.String()
	for _, want := range []string{"err.code=103", "err.name=invalid_session_token", "err.recoverable=true", "err.tries=2", "err.request=<login/>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}

func TestInterfaces(t *testing.T) {
	var _ apis.CodedError = (*Error)(nil)
	var _ apis.RecoverableError = (*Error)(nil)
	var _ apis.ReasonedError = (*Error)(nil)
	var _ apis.CausedError = (*Error)(nil)
	var _ apis.PayloadError = (*Error)(nil)
	var _ apis.CallSiteError = (*Error)(nil)
	var _ slog.LogValuer = (*Error)(nil)
}
