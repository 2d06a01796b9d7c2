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

package callsite

import (
	"runtime"
	"strings"
)

// maxDepth bounds the number of program counters recorded per capture.
const maxDepth = 32

// Frame is a resolved call site.
type Frame struct {
	// Component is the receiver type for methods ("ContactService") or the
	// package name for plain functions ("httpx").
	Component string
	// Operation is the method or function name ("AddContacts").
	Operation string
	// Function is the fully qualified runtime symbol.
	Function string
	File     string
	Line     int
}

// Trace holds the captured program counters and the memoized Frame.
//
// A Trace belongs to a single error value and is not safe for concurrent
// first resolution.
type Trace struct {
	pcs      []uintptr
	oldest   bool
	resolved bool
	frame    Frame
}

// Capture records the stack of the caller. skip=0 identifies the caller of
// Capture itself.
//
// When nothing is left at the requested depth, the oldest frame of the
// whole stack is recorded instead, so that resolution still has an answer.
func Capture(skip int) *Trace {
	pcs := make([]uintptr, maxDepth)
	// +2 skips runtime.Callers and Capture.
	n := runtime.Callers(skip+2, pcs)
	if n > 0 {
		return &Trace{pcs: pcs[:n]}
	}
	return &Trace{pcs: fullStack(), oldest: true}
}

// Fixed returns a pre-resolved Trace, for adapters that already know which
// remote operation failed.
func Fixed(component, operation string) *Trace {
	return &Trace{
		resolved: true,
		frame:    Frame{Component: component, Operation: operation},
	}
}

// Frame resolves and returns the call site. It never panics: a nil or empty
// trace yields the zero Frame.
func (t *Trace) Frame() Frame {
	if t == nil {
		return Frame{}
	}
	if !t.resolved {
		t.frame = resolve(t.pcs, t.oldest)
		t.resolved = true
	}
	return t.frame
}

// Component is shorthand for Frame().Component.
func (t *Trace) Component() string { return t.Frame().Component }

// Operation is shorthand for Frame().Operation.
func (t *Trace) Operation() string { return t.Frame().Operation }

// fullStack returns every program counter of the current goroutine.
func fullStack() []uintptr {
	pcs := make([]uintptr, 256)
	for {
		n := runtime.Callers(1, pcs)
		if n < len(pcs) {
			return pcs[:n]
		}
		pcs = make([]uintptr, len(pcs)*2)
	}
}

// resolve picks the newest frame, or with oldest set the bottom-most frame
// that does not belong to the runtime itself.
func resolve(pcs []uintptr, oldest bool) Frame {
	if len(pcs) == 0 {
		return Frame{}
	}
	frames := runtime.CallersFrames(pcs)
	fr, more := frames.Next()
	if oldest {
		pick := fr
		for more {
			fr, more = frames.Next()
			if !strings.HasPrefix(fr.Function, "runtime.") {
				pick = fr
			}
		}
		fr = pick
	}
	if fr.Function == "" {
		return Frame{File: fr.File, Line: fr.Line}
	}
	component, operation := Split(fr.Function)
	return Frame{
		Component: component,
		Operation: operation,
		Function:  fr.Function,
		File:      fr.File,
		Line:      fr.Line,
	}
}

// Split breaks a runtime function symbol into component and operation.
//
//	"example.com/bronto.(*ContactService).Add"  -> "ContactService", "Add"
//	"example.com/bronto.Client.Login"           -> "Client", "Login"
//	"example.com/bronto/httpx.classify"         -> "httpx", "classify"
//	"example.com/bronto.(*Client).Do.func1"     -> "Client", "Do"
//	"main.main"                                 -> "main", "main"
func Split(function string) (component, operation string) {
	rest := strings.ReplaceAll(function, "[...]", "")
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		rest = rest[i+1:]
	}
	pkg, sym, ok := strings.Cut(rest, ".")
	if !ok {
		return "", rest
	}

	// Pointer receivers are wrapped in parentheses: (*T).Method.
	if strings.HasPrefix(sym, "(") {
		if end := strings.Index(sym, ")"); end > 0 {
			recv := strings.TrimPrefix(sym[1:end], "*")
			method := strings.TrimPrefix(sym[end+1:], ".")
			return stripTypeArgs(recv), firstSegment(method)
		}
	}

	parts := strings.Split(sym, ".")
	if len(parts) >= 2 && !isClosure(parts[1]) {
		return stripTypeArgs(parts[0]), parts[1]
	}
	return pkg, stripTypeArgs(parts[0])
}

func firstSegment(s string) string {
	head, _, _ := strings.Cut(s, ".")
	return head
}

// isClosure reports whether seg is a compiler-generated closure segment
// ("func1", "1", "gowrap2").
func isClosure(seg string) bool {
	seg = strings.TrimPrefix(seg, "func")
	seg = strings.TrimPrefix(seg, "gowrap")
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

func stripTypeArgs(s string) string {
	if i := strings.Index(s, "["); i >= 0 {
		return s[:i]
	}
	return s
}
