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

// Category groups codes by the kind of failure they describe.
type Category string

const (
	// CategoryAuth covers invalid tokens, sessions, access rights, IP
	// restrictions and inactive sites.
	CategoryAuth Category = "authentication"

	// CategoryValidation covers empty inputs, bad parameters, missing fields
	// and bad filters.
	CategoryValidation Category = "validation"

	// CategoryAvailability covers maintenance windows, read errors and
	// connection-level faults.
	CategoryAvailability Category = "availability"

	// CategoryProtocol covers malformed requests and responses and schema
	// parse failures.
	CategoryProtocol Category = "protocol"

	// CategoryUnknown is used for the generic unknown error and for any code
	// without a more precise bucket, including Unclassified.
	CategoryUnknown Category = "unknown"
)

// Categories returns all categories in a stable order.
func Categories() []Category {
	return []Category{CategoryAuth, CategoryValidation, CategoryAvailability, CategoryProtocol, CategoryUnknown}
}

// String returns the category name.
func (c Category) String() string { return string(c) }
