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

// Package backoffx connects classified errors to github.com/cenkalti/backoff
// retry loops.
//
// The library decides whether a failure may be retried; the loop, its
// policy and its delays stay with the caller:
//
//	attempt := backoffx.Operation(ctx, func(ctx context.Context) error {
//		return client.AddContacts(ctx, contacts)
//	})
//	err := backoff.Retry(attempt, backoff.WithContext(policy, ctx))
package backoffx
