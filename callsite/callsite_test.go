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
	"strings"
	"testing"
)

type contactService struct{}

func (s *contactService) AddContacts() *Trace { return Capture(0) }

type genericStore[T any] struct{}

func (genericStore[T]) Read() *Trace { return Capture(0) }

func capturePlain() *Trace { return Capture(0) }

func TestCapture_Method(t *testing.T) {
	tr := (&contactService{}).AddContacts()
	if tr.Component() != "contactService" {
		t.Fatalf("Component() = %q, want contactService", tr.Component())
	}
	if tr.Operation() != "AddContacts" {
		t.Fatalf("Operation() = %q, want AddContacts", tr.Operation())
	}
	fr := tr.Frame()
	if !strings.HasSuffix(fr.File, "callsite_test.go") || fr.Line == 0 {
		t.Fatalf("unexpected file/line %s:%d", fr.File, fr.Line)
	}
}

func TestCapture_GenericValueReceiver(t *testing.T) {
	tr := genericStore[int]{}.Read()
	if tr.Component() != "genericStore" || tr.Operation() != "Read" {
		t.Fatalf("got %q/%q", tr.Component(), tr.Operation())
	}
}

func TestCapture_Function(t *testing.T) {
	tr := capturePlain()
	if tr.Component() != "callsite" || tr.Operation() != "capturePlain" {
		t.Fatalf("got %q/%q", tr.Component(), tr.Operation())
	}
}

func TestCapture_Skip(t *testing.T) {
	wrapper := func() *Trace { return Capture(1) }
	tr := wrapper()
	if tr.Operation() != "TestCapture_Skip" {
		t.Fatalf("Operation() = %q, want TestCapture_Skip", tr.Operation())
	}
}

func TestCapture_FallsBackToOldestFrame(t *testing.T) {
	tr := Capture(10000)
	fr := tr.Frame()
	if fr.Operation == "" || fr.Function == "" {
		t.Fatalf("expected oldest frame, got %+v", fr)
	}
	if strings.HasPrefix(fr.Function, "runtime.") {
		t.Fatalf("oldest frame must skip runtime frames, got %s", fr.Function)
	}
}

func TestFrame_Memoized(t *testing.T) {
	tr := capturePlain()
	first := tr.Frame()
	tr.pcs = nil
	if tr.Frame() != first {
		t.Fatal("Frame() must be computed once")
	}
}

func TestFrame_NilAndEmpty(t *testing.T) {
	var tr *Trace
	if tr.Frame() != (Frame{}) || tr.Component() != "" || tr.Operation() != "" {
		t.Fatal("nil trace must resolve to zero Frame")
	}
	if (&Trace{}).Frame() != (Frame{}) {
		t.Fatal("empty trace must resolve to zero Frame")
	}
}

func TestFixed(t *testing.T) {
	tr := Fixed("ContactService", "AddContacts")
	if tr.Component() != "ContactService" || tr.Operation() != "AddContacts" {
		t.Fatalf("got %q/%q", tr.Component(), tr.Operation())
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in            string
		wantComponent string
		wantOperation string
	}{
		{"example.com/bronto.(*ContactService).Add", "ContactService", "Add"},
		{"example.com/bronto.Client.Login", "Client", "Login"},
		{"example.com/bronto/httpx.classify", "httpx", "classify"},
		{"example.com/bronto.(*Client).Do.func1", "Client", "Do"},
		{"example.com/bronto.run.func2.1", "bronto", "run"},
		{"example.com/bronto.(*Store[...]).Get", "Store", "Get"},
		{"main.main", "main", "main"},
		{"nodot", "", "nodot"},
	}
	for _, tt := range tests {
		c, op := Split(tt.in)
		if c != tt.wantComponent || op != tt.wantOperation {
			t.Fatalf("Split(%q) = (%q, %q), want (%q, %q)", tt.in, c, op, tt.wantComponent, tt.wantOperation)
		}
	}
}
