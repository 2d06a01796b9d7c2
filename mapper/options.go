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
	"dirpx.dev/apierr/code"
)

// Option configures the Mapper at build time.
type Option func(*builder)

type prefixRule struct {
	// prefix is the raw reason prefix, normalized in New.
	prefix string
	val    int
}

// builder accumulates options; New freezes it into a mapper.
type builder struct {
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int
	httpPrefixes map[code.Code][]prefixRule
	grpcPrefixes map[code.Code][]prefixRule
	httpCategory map[code.Category]int
	grpcCategory map[code.Category]int

	fallbackHTTP int
	fallbackGRPC int
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		httpPrefixes: make(map[code.Code][]prefixRule),
		grpcPrefixes: make(map[code.Code][]prefixRule),
		httpCategory: make(map[code.Category]int, len(categoryHTTP)),
		grpcCategory: make(map[code.Category]int, len(categoryGRPC)),
	}
}

// WithHTTPDefault replaces the library default HTTP status for a code.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the library default gRPC status for a code.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride forces the HTTP status for a code, ahead of prefix rules.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride forces the gRPC status for a code, ahead of prefix rules.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds a longest-prefix-match rule on the reason for a code.
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a longest-prefix-match rule on the reason for a code.
func WithGRPCPrefix(c code.Code, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{prefix, grpc}) }
}

// WithHTTPCategory replaces the HTTP status used for a whole category.
func WithHTTPCategory(cat code.Category, http int) Option {
	return func(b *builder) { b.httpCategory[cat] = http }
}

// WithGRPCCategory replaces the gRPC status used for a whole category.
func WithGRPCCategory(cat code.Category, grpc int) Option {
	return func(b *builder) { b.grpcCategory[cat] = grpc }
}

// WithFallback sets the statuses returned when nothing else matches.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
