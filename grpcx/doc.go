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

// Package grpcx carries classified errors over gRPC.
//
// On the server side UnaryServerInterceptor turns a returned *apierr.Error
// into a status whose gRPC code comes from an apis.Mapper. The status
// carries a google.rpc.ErrorInfo with the numeric code and, for recoverable
// errors, a google.rpc.RetryInfo hint.
//
// On the client side UnaryClientInterceptor classifies every failed call
// and returns an *apierr.Error whose call site is the remote service and
// method, with the request and the returned status attached as JSON.
package grpcx
