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

package code

// recoverable is the fixed set of codes a caller may retry. It is never
// mutated after package initialization.
var recoverable = map[Code]struct{}{
	UnknownError:        {},
	InvalidSessionToken: {},
	InvalidRequest:      {},
	ShardOffline:        {},
	ReadError:           {},
	HTTPHeaderError:     {},
	NoXMLDocument:       {},
	ConnectError:        {},
	WSDLParseError:      {},
	ConnectionReset:     {},
}

// RecoverableSet returns a copy of the recoverable codes in ascending order.
func RecoverableSet() []Code {
	out := make([]Code, 0, len(recoverable))
	for _, c := range All() {
		if _, ok := recoverable[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
