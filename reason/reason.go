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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Reason is a validated "component.operation" identifier. Up to four
// segments are accepted so that callers may prefix a service name
// ("bronto.contact_service.add_contacts").
type Reason string

const (
	// MinLength is the minimum length for a non-empty reason.
	MinLength = 3

	// MaxLength is the maximum length for a valid reason.
	MaxLength = 128
)

// reasonFmt accepts 1 to 4 dot-separated segments of [a-z][a-z0-9_]*.
const reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match reasonFmt.
	ErrReasonInvalidFormat = errors.New("apierr: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("apierr: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the "no reason" value.
var Empty Reason = ""

// FromCallSite builds a reason from a component and an operation name as
// reported by the callsite package. Both are converted from CamelCase to
// snake_case; an empty operation yields a single-segment reason.
//
//	FromCallSite("ContactService", "AddContacts") == "contact_service.add_contacts"
//	FromCallSite("httpx", "classify")            == "httpx.classify"
//
// Inputs that cannot form a valid reason (for example non-ASCII names)
// produce Empty.
func FromCallSite(component, operation string) Reason {
	segs := make([]string, 0, 2)
	for _, s := range []string{component, operation} {
		if s = Snake(s); s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return Empty
	}
	r, err := Parse(strings.Join(segs, "."))
	if err != nil {
		return Empty
	}
	return r
}

// Snake converts a Go identifier to snake_case, keeping acronyms together:
// "AddContacts" -> "add_contacts", "UnauthorizedIP" -> "unauthorized_ip",
// "HTTPClient" -> "http_client".
func Snake(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1]))
			nextLower := i > 0 && i+1 < len(rs) && unicode.IsUpper(rs[i-1]) && unicode.IsLower(rs[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' || r == ' ' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize brings s closer to the canonical form: trims, lower-cases,
// turns "/" into "." and "-" into "_". It does not validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string is accepted and
// returns Empty.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("apierr: empty reason in MustParse")
	}
	return r
}

// Validate checks whether r is in canonical form. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Component returns the first segment of the reason.
func (r Reason) Component() string {
	head, _, _ := strings.Cut(string(r), ".")
	return head
}

// String returns the reason as a string.
func (r Reason) String() string { return string(r) }

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
