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

package backoffx

import (
	"context"

	"dirpx.dev/apierr"
	"github.com/cenkalti/backoff/v4"
)

// Permanent marks err as terminal for a backoff loop unless it wraps a
// recoverable *apierr.Error. Unclassified errors are terminal. A nil err is
// returned unchanged.
func Permanent(err error) error {
	if err == nil || apierr.IsRecoverable(err) {
		return err
	}
	return backoff.Permanent(err)
}

// Operation adapts op into a backoff.Operation. Each invocation stores the
// 1-based attempt number in the context passed to op (see
// apierr.ContextWithTries) and filters the result through Permanent.
func Operation(ctx context.Context, op func(ctx context.Context) error) backoff.Operation {
	attempt := 0
	return func() error {
		attempt++
		return Permanent(op(apierr.ContextWithTries(ctx, attempt)))
	}
}
