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

// Package code defines the numeric error codes reported by the remote API
// and by the client-side transport, together with the static tables built on
// top of them:
//
//   - names, used in logs and in configuration files;
//   - categories (authentication, validation, availability, protocol, unknown);
//   - the recoverable set, the only retry signal this module exposes;
//   - the transport fault fragment table used to infer a code from raw text.
//
// The numeric values are part of the wire and log contract with existing
// consumers and must never change. The zero value, Unclassified, means that
// no code could be resolved.
package code
