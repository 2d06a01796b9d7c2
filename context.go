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

import "context"

type triesKey struct{}

// ContextWithTries returns a copy of ctx carrying the attempt number of the
// caller's retry loop. Transport adapters read it back with TriesFromContext
// and pass it to WithTries.
func ContextWithTries(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, triesKey{}, n)
}

// TriesFromContext returns the attempt number stored by ContextWithTries,
// or 0.
func TriesFromContext(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	n, _ := ctx.Value(triesKey{}).(int)
	return n
}
