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

package apis

// CodedError is an error classified with a numeric API code.
// A zero code means the failure could not be classified.
type CodedError interface {
	error

	// ErrorCode returns the numeric code.
	ErrorCode() int
}

// RecoverableError reports whether a caller-driven retry may succeed.
//
// This is the only retry signal exposed by the classification layer. It
// carries no backoff or attempt budget; those belong to the caller.
type RecoverableError interface {
	error

	IsRecoverable() bool
}

// ReasonedError exposes the dotted call-site reason of an error, e.g.
// "contact_service.add_contacts". It may be empty.
type ReasonedError interface {
	error

	ErrorReason() string
}

// CausedError exposes the direct underlying cause. May return nil.
type CausedError interface {
	error

	Cause() error
}

// PayloadError exposes the raw wire bodies attached by the transport.
type PayloadError interface {
	error

	Request() string
	Response() string
}

// CallSiteError exposes the component and operation that raised the error.
type CallSiteError interface {
	error

	CallSiteComponent() string
	CallSiteOperation() string
}
