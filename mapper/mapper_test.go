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

package mapper

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/apierr/apis"
	"dirpx.dev/apierr/code"
	"dirpx.dev/apierr/reason"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m := Default()
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c, reason.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%s) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	// per-code defaults
	check(code.UnauthorizedIP, http.StatusForbidden, codes.PermissionDenied)
	check(code.EmptyResult, http.StatusNotFound, codes.NotFound)
	check(code.ConnectionReset, http.StatusBadGateway, codes.Unavailable)
	// category defaults
	check(code.InvalidToken, http.StatusUnauthorized, codes.Unauthenticated)
	check(code.RequiredFields, http.StatusBadRequest, codes.InvalidArgument)
	check(code.ShardOffline, http.StatusServiceUnavailable, codes.Unavailable)
	check(code.WSDLParseError, http.StatusBadGateway, codes.Internal)
	check(code.UnknownError, http.StatusInternalServerError, codes.Unknown)
	// fallback
	check(code.Unclassified, http.StatusInternalServerError, codes.Internal)
	check(code.Code(555), http.StatusInternalServerError, codes.Internal)
}

func TestEveryDefinedCodeResolves(t *testing.T) {
	m := Default()
	for _, c := range code.All() {
		st := m.Status(c, reason.Empty)
		if st.HTTP < 400 || st.HTTP > 599 {
			t.Fatalf("%s: HTTP %d is not an error status", c, st.HTTP)
		}
		if st.GRPC == codes.OK {
			t.Fatalf("%s: gRPC status must not be OK", c)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.ShardOffline, 503),
		WithHTTPPrefix(code.ShardOffline, "delivery_service", 504),
		WithHTTPOverride(code.ShardOffline, 418),
		WithGRPCPrefix(code.ShardOffline, "delivery_service", int(codes.DeadlineExceeded)),
		WithGRPCOverride(code.ShardOffline, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.ShardOffline, mustReason("delivery_service.read_deliveries"))
	if st.HTTP != 418 || st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestPrefix_LPM(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.ShardOffline, "delivery_service", 504),
		WithHTTPPrefix(code.ShardOffline, "delivery_service.read_deliveries", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.ShardOffline, mustReason("delivery_service.read_deliveries")); got != 599 {
		t.Fatalf("LPM failed: got %d, want 599", got)
	}
	if got := m.HTTPStatus(code.ShardOffline, mustReason("delivery_service.add_deliveries")); got != 504 {
		t.Fatalf("shorter prefix failed: got %d, want 504", got)
	}
	if got := m.HTTPStatus(code.ShardOffline, mustReason("contact_service.add_contacts")); got != 503 {
		t.Fatalf("unmatched reason must use category default: got %d", got)
	}
	// prefix rules are per code
	if got := m.HTTPStatus(code.ReadError, mustReason("delivery_service.read_deliveries")); got != http.StatusBadGateway {
		t.Fatalf("rule leaked to another code: got %d", got)
	}
}

func TestWildcardAndNormalization(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.ReadError, "*.Read-Contacts", 504),
		WithHTTPPrefix(code.ReadError, "  LIST_SERVICE/READ_CONTACTS ", 500),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.ReadError, mustReason("contact_service.read_contacts")); got != 504 {
		t.Fatalf("wildcard: got %d", got)
	}
	if got := m.HTTPStatus(code.ReadError, mustReason("list_service.read_contacts")); got != 500 {
		t.Fatalf("concrete must beat wildcard: got %d", got)
	}
}

func TestCategoryAndFallbackOptions(t *testing.T) {
	m, err := New(
		WithHTTPCategory(code.CategoryAvailability, 599),
		WithGRPCCategory(code.CategoryAvailability, int(codes.ResourceExhausted)),
		WithFallback(502, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.ShardOffline, reason.Empty)
	if st.HTTP != 599 {
		t.Fatalf("category override: got %+v", st)
	}
	// ShardOffline has a per-code gRPC default that wins over the category.
	if st.GRPC != codes.Unavailable {
		t.Fatalf("per-code default must beat category: got %v", st.GRPC)
	}
	if st := m.Status(code.HTTPHeaderError, reason.Empty); st.GRPC != codes.ResourceExhausted {
		t.Fatalf("category gRPC: got %v", st.GRPC)
	}
	if st := m.Status(code.Unclassified, reason.Empty); st.HTTP != 502 || st.GRPC != codes.Aborted {
		t.Fatalf("fallback: got %+v", st)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, p := range []string{"", "*", "bad..prefix", "1abc"} {
		_, err := New(WithHTTPPrefix(code.ReadError, p, 500))
		if err == nil {
			t.Fatalf("prefix %q must be rejected", p)
		}
	}
	_, err := New(WithGRPCPrefix(code.ReadError, "*.*", 14))
	if !strings.Contains(err.Error(), "gRPC") {
		t.Fatalf("error should name the transport: %v", err)
	}
}

func TestNew_DoesNotShareState(t *testing.T) {
	opts := []Option{WithHTTPOverride(code.ReadError, 418)}
	m1, _ := New(opts...)
	m2, _ := New()
	if m1.HTTPStatus(code.ReadError, reason.Empty) != 418 {
		t.Fatal("override missing")
	}
	if m2.HTTPStatus(code.ReadError, reason.Empty) == 418 {
		t.Fatal("override leaked into another mapper")
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.ShardOffline, "delivery_service", 504),
		WithHTTPOverride(code.InvalidToken, 403),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		c    code.Code
		r    reason.Reason
		want []string
	}{
		{code.ShardOffline, mustReason("delivery_service.read_deliveries"), []string{`http: source=prefix pattern="delivery_service" -> 504`, "grpc: source=default -> UNAVAILABLE(14)"}},
		{code.InvalidToken, reason.Empty, []string{"http: source=override -> 403", "grpc: source=category -> UNAUTHENTICATED(16)"}},
		{code.Code(555), reason.Empty, []string{"code=555(555)", "http: source=fallback -> 500", "grpc: source=fallback -> INTERNAL(13)"}},
	}
	for _, tt := range tests {
		exp := m.Explain(tt.c, tt.r)
		for _, w := range tt.want {
			if !strings.Contains(exp, w) {
				t.Fatalf("Explain(%s) missing %q:\n%s", tt.c, w, exp)
			}
		}
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.ShardOffline, "delivery_service", 504),
		WithHTTPOverride(code.InvalidToken, 403),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = m.Status(code.ShardOffline, mustReason("delivery_service.read_deliveries"))
				_ = m.Status(code.InvalidToken, reason.Empty)
				_ = m.Explain(code.RequiredFields, mustReason("contact_service.add_contacts"))
			}
		}()
	}
	wg.Wait()
}

func TestConfig(t *testing.T) {
	yml := `
fallback:
  http: 502
  grpc: 10
categories:
  availability:
    http: 599
codes:
  - code: unauthorized_ip
    http: 451
  - code: 104
    http: 418
    grpc: 9
    override: true
prefixes:
  - code: shard_offline
    reason: delivery_service
    http: 504
    grpc: 4
`
	opts, err := ParseConfig([]byte(yml))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.UnauthorizedIP, reason.Empty); got != 451 {
		t.Fatalf("code default: got %d", got)
	}
	if st := m.Status(code.InvalidAccess, reason.Empty); st.HTTP != 418 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("override: got %+v", st)
	}
	if st := m.Status(code.ShardOffline, mustReason("delivery_service.read_deliveries")); st.HTTP != 504 || st.GRPC != codes.DeadlineExceeded {
		t.Fatalf("prefix: got %+v", st)
	}
	if got := m.HTTPStatus(code.ShardOffline, reason.Empty); got != 599 {
		t.Fatalf("category: got %d", got)
	}
	if st := m.Status(code.Unclassified, reason.Empty); st.HTTP != 502 || st.GRPC != codes.Aborted {
		t.Fatalf("fallback: got %+v", st)
	}
}

func TestConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "codes: [",
		"unknown code":     "codes:\n  - code: nope\n    http: 400\n",
		"missing code":     "codes:\n  - http: 400\n",
		"unknown category": "categories:\n  weather:\n    http: 500\n",
		"prefix no reason": "prefixes:\n  - code: 108\n    http: 504\n",
	}
	for name, yml := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(yml)); !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("err = %v, want ErrConfigInvalid", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	opts, err := LoadConfig(strings.NewReader("codes:\n  - code: 99001\n    http: 204\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	m, _ := New(opts...)
	if got := m.HTTPStatus(code.EmptyResult, reason.Empty); got != 204 {
		t.Fatalf("got %d", got)
	}
	if _, err := LoadConfigFile("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}

func mustReason(s string) reason.Reason {
	r, err := reason.Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(WithHTTPPrefix(code.ShardOffline, "delivery_service", 504))
	r := mustReason("delivery_service.read_deliveries")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.ShardOffline, r)
	}
}

func TestLoadConfigFile_Example(t *testing.T) {
	opts, err := LoadConfigFile("testdata/mapper.yaml")
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.UnauthorizedIP, reason.Empty); st.HTTP != 403 || st.GRPC != codes.PermissionDenied {
		t.Fatalf("got %+v", st)
	}
	if got := m.HTTPStatus(code.ShardOffline, mustReason("delivery_service.read_deliveries")); got != 504 {
		t.Fatalf("got %d", got)
	}
}
