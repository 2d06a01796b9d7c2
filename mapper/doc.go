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

// Package mapper resolves classified API errors into HTTP and gRPC statuses.
//
// The classification layer itself is transport-agnostic: it yields a numeric
// code.Code and, from the call site, a reason such as
// "contact_service.add_contacts". Gateways and servers that surface those
// failures to their own clients need concrete statuses; a Mapper provides
// them deterministically.
//
// # Resolution model
//
// Statuses are resolved in the following order:
//
//  1. exact override for the code;
//  2. per-code longest-prefix match on the reason;
//  3. per-code default (library or user adjusted);
//  4. per-category default (authentication -> 401, validation -> 400, ...);
//  5. global fallback (500 / codes.Internal unless configured).
//
// Prefix rules are segment-aware and "*" matches exactly one segment:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.UnauthorizedIP, http.StatusForbidden),
//	    mapper.WithHTTPPrefix(code.ShardOffline, "delivery_service", http.StatusGatewayTimeout),
//	)
//
// Rules may also be loaded from YAML with LoadConfig.
//
// # Immutability
//
// New copies every input. A Mapper never observes later changes to the
// options that built it and is safe to share between goroutines.
package mapper
