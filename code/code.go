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

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Code is a stable numeric error identifier.
//
// Values in the 1xx range come from the remote API itself, 98xxx values are
// produced by the client transport (SOAP/HTTP faults) and 99xxx values are
// raised by the client library on its own.
type Code int

// Unclassified is the zero code. It is never recoverable and is never
// rendered as a message prefix.
const Unclassified Code = 0

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a code.
	ErrCodeInvalid = errors.New("apierr: invalid code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse accepts either the decimal value ("103") or the canonical name
// ("invalid_session_token") of a code. Names are matched after
// normalization, so "Invalid-Session-Token" is accepted as well.
//
// Numbers are not checked against the table: unknown numeric codes reported
// by the remote side are still valid codes, just not Defined ones.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unclassified, ErrCodeInvalid
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Code(n), nil
	}
	if c, ok := byName[normalizeName(s)]; ok {
		return c, nil
	}
	return Unclassified, ErrCodeInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical name of a defined code, or its decimal value
// for codes outside the table.
func (c Code) String() string {
	if d, ok := table[c]; ok {
		return d.name
	}
	return strconv.Itoa(int(c))
}

// Int returns the numeric value of the code.
func (c Code) Int() int { return int(c) }

// Defined reports whether c is one of the codes declared in this package.
func (c Code) Defined() bool {
	_, ok := table[c]
	return ok
}

// Category returns the taxonomy bucket of the code.
// Unknown and undefined codes fall into CategoryUnknown.
func (c Code) Category() Category {
	if d, ok := table[c]; ok {
		return d.category
	}
	return CategoryUnknown
}

// Recoverable reports whether a failure with this code may succeed when the
// caller retries. The zero code is never recoverable.
func (c Code) Recoverable() bool {
	if c == Unclassified {
		return false
	}
	_, ok := recoverable[c]
	return ok
}

// Description returns the text the remote API documents for the code, or
// an empty string for codes it does not document.
func (c Code) Description() string {
	return table[c].text
}

// MarshalText implements encoding.TextMarshaler.
//
// The decimal value is emitted, since consumers key on the number.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both numbers and names
// are accepted.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Split recognizes the "<number> : <text>" shape used by the remote API to
// report coded faults. The message is split on the first colon and both
// sides are trimmed; when the left side is an integer it is returned as the
// code together with the right side.
//
// ok is false when there is no colon or when the left side is not a decimal
// integer that fits in an int ("1.5", "1e3" and overflowing numbers are not
// codes), in which case the message must be used unchanged.
func Split(msg string) (c Code, text string, ok bool) {
	left, right, found := strings.Cut(msg, ":")
	if !found {
		return Unclassified, msg, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Unclassified, msg, false
	}
	return Code(n), strings.TrimSpace(right), true
}

func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
