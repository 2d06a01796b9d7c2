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
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/apierr/apis"
	"dirpx.dev/apierr/code"
	"dirpx.dev/apierr/mapper/internal/segmenttrie"
	"dirpx.dev/apierr/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Errors indicate an invalid reason prefix in one of the rules.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range categoryHTTP {
		b.httpCategory[k] = v
	}
	for k, v := range categoryGRPC {
		b.grpcCategory[k] = int(v)
	}
	b.fallbackHTTP = http.StatusInternalServerError
	b.fallbackGRPC = int(codes.Internal)

	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries(b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP %w", err)
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC %w", err)
	}

	return &mapper{
		http: table[int]{
			override: freeze(b.httpOverride, identity),
			prefix:   httpTrie,
			byCode:   freeze(b.httpDefaults, identity),
			byCat:    freeze(b.httpCategory, identity),
			fallback: b.fallbackHTTP,
		},
		grpc: table[codes.Code]{
			override: freeze(b.grpcOverride, toGRPC),
			prefix:   grpcTrie,
			byCode:   freeze(b.grpcDefaults, toGRPC),
			byCat:    freeze(b.grpcCategory, toGRPC),
			fallback: codes.Code(b.fallbackGRPC),
		},
	}, nil
}

// Default returns a mapper with the library defaults only.
func Default() apis.Mapper {
	m, err := New()
	if err != nil {
		// The defaults carry no prefix rules, so New cannot fail.
		panic(err)
	}
	return m
}

// mapper performs one lookup chain per transport.
type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// table holds the frozen rules for one transport.
type table[T any] struct {
	override map[code.Code]T
	prefix   map[code.Code]*segmenttrie.Trie[T]
	byCode   map[code.Code]T
	byCat    map[code.Category]T
	fallback T
}

// resolve walks the tiers in order and reports which one matched.
func (t *table[T]) resolve(c code.Code, r reason.Reason) (val T, source, pattern string) {
	if v, ok := t.override[c]; ok {
		return v, "override", ""
	}
	if tr, ok := t.prefix[c]; ok {
		if v, ok, p := tr.MatchWithPattern(string(r)); ok {
			return v, "prefix", p
		}
	}
	if v, ok := t.byCode[c]; ok {
		return v, "default", ""
	}
	if v, ok := t.byCat[c.Category()]; ok {
		return v, "category", ""
	}
	return t.fallback, "fallback", ""
}

// HTTPStatus resolves the HTTP status for c and r.
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

// GRPCStatus resolves the gRPC status for c and r.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

// Status resolves both transports.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders how c and r were resolved, e.g.
//
//	code=108(shard_offline) reason="delivery_service.read_deliveries"
//	http: source=prefix pattern="delivery_service" -> 504
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of override, prefix, default, category or fallback.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d(%s) reason=%q\n", int(c), c, r)

	hv, hsrc, hpat := m.http.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := m.grpc.resolve(c, r)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(gsrc, gpat), strings.ToUpper(gv.String()), int(gv))
	return b.String()
}

func describe(source, pattern string) string {
	if pattern != "" {
		return fmt.Sprintf("source=%s pattern=%q", source, pattern)
	}
	return "source=" + source
}

// buildTries compiles prefix rules into one trie per code.
func buildTries[T any](rules map[code.Code][]prefixRule, conv func(int) T) (map[code.Code]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[code.Code]*segmenttrie.Trie[T], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		tr := segmenttrie.New[T]()
		for _, r := range rs {
			p, err := normalizePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("reason-prefix %q for code %d: %w", r.prefix, int(c), err)
			}
			if err := tr.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("reason-prefix %q for code %d: %w", p, int(c), err)
			}
		}
		out[c] = tr
	}
	return out, nil
}

// normalizePrefix applies reason normalization, then lets the trie decide
// whether the segments (including "*") are acceptable.
func normalizePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", segmenttrie.ErrInvalidPrefix
	}
	return p, nil
}

func identity(v int) int { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }

// freeze copies src, converting values; empty maps become nil.
func freeze[K comparable, T any](src map[K]int, conv func(int) T) map[K]T {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]T, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}
