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

package httpx

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/adapter"
	"dirpx.dev/apierr/apis"
	rpcstatus "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
)

// Writer turns a classified error into an HTTP response.
type Writer struct {
	Mapper apis.Mapper
	// Domain is copied into the ErrorInfo detail.
	Domain string
	// RetryAfter, when positive, is sent as Retry-After (whole seconds,
	// rounded up) and as a RetryInfo detail for recoverable errors.
	RetryAfter time.Duration
}

// Write serializes err as a google.rpc.Status. The status code field holds
// the mapped gRPC code; the HTTP status line holds the mapped HTTP status.
//
// No redaction is performed: the message is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err *apierr.Error) {
	if err == nil {
		return
	}
	st := w.Mapper.Status(err.Code(), err.Reason())

	body := &rpcstatus.Status{Code: int32(st.GRPC), Message: err.Message()}
	if a, aerr := anypb.New(adapter.ErrorInfo(err, w.Domain)); aerr == nil {
		body.Details = append(body.Details, a)
	}

	rw.Header().Set("Content-Type", "application/json")
	if w.RetryAfter > 0 {
		if ri := adapter.RetryInfo(err, w.RetryAfter); ri != nil {
			if a, aerr := anypb.New(ri); aerr == nil {
				body.Details = append(body.Details, a)
			}
			rw.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(w.RetryAfter.Seconds()))))
		}
	}
	rw.WriteHeader(st.HTTP)

	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(body)
	_, _ = rw.Write(b)
}
