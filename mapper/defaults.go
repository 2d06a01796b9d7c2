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
	"net/http"

	"dirpx.dev/apierr/code"
	"google.golang.org/grpc/codes"
)

// categoryHTTP is the HTTP status used for codes without a per-code default.
// CategoryUnknown has no entry: such codes resolve to the fallback.
var categoryHTTP = map[code.Category]int{
	code.CategoryAuth:         http.StatusUnauthorized,
	code.CategoryValidation:   http.StatusBadRequest,
	code.CategoryAvailability: http.StatusServiceUnavailable,
	code.CategoryProtocol:     http.StatusBadGateway,
}

// categoryGRPC is the gRPC status used for codes without a per-code default.
var categoryGRPC = map[code.Category]codes.Code{
	code.CategoryAuth:         codes.Unauthenticated,
	code.CategoryValidation:   codes.InvalidArgument,
	code.CategoryAvailability: codes.Unavailable,
	code.CategoryProtocol:     codes.Internal,
}

// defaultHTTP refines the category mapping where a code has a closer match.
var defaultHTTP = map[code.Code]int{
	code.InvalidAccess:   http.StatusForbidden,           // Authenticated, but not allowed to call the method.
	code.UnauthorizedIP:  http.StatusForbidden,           // Token is valid, the caller's address is not.
	code.SiteInactive:    http.StatusForbidden,           // Account exists but is disabled.
	code.ReadError:       http.StatusBadGateway,          // Upstream failed while streaming results.
	code.HTTPHeaderError: http.StatusBadGateway,          // Upstream closed before sending headers.
	code.ConnectError:    http.StatusBadGateway,          // Upstream unreachable.
	code.ConnectionReset: http.StatusBadGateway,          // Upstream dropped the connection.
	code.InvalidRequest:  http.StatusBadRequest,          // The request we sent was rejected as malformed.
	code.RequestError:    http.StatusBadRequest,          // Same, detected by the transport.
	code.InvalidURL:      http.StatusInternalServerError, // Client misconfiguration.
	code.EmptyResult:     http.StatusNotFound,            // Nothing matched the query.
}

var defaultGRPC = map[code.Code]codes.Code{
	code.InvalidAccess:       codes.PermissionDenied,
	code.UnauthorizedIP:      codes.PermissionDenied,
	code.SiteInactive:        codes.PermissionDenied,
	code.ShardOffline:        codes.Unavailable,
	code.ReadError:           codes.Unavailable,
	code.InvalidRequest:      codes.InvalidArgument,
	code.RequestError:        codes.InvalidArgument,
	code.InvalidURL:          codes.FailedPrecondition,
	code.EmptyResult:         codes.NotFound,
	code.UnknownError:        codes.Unknown,
	code.InvalidSessionToken: codes.Unauthenticated,
}
