// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package importer

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	input := "\ufeffunitid, InstNm ,CITY\n" +
		"1,Alpha College,Austin\n" +
		"2,Beta University\n" +
		"3,Gamma,Boston,extra\n"

	r, err := NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	wantHeaders := []string{"UNITID", "INSTNM", "CITY"}
	for i, h := range wantHeaders {
		if r.Headers()[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, r.Headers()[i], h)
		}
	}

	want := []Row{
		{"UNITID": "1", "INSTNM": "Alpha College", "CITY": "Austin"},
		{"UNITID": "2", "INSTNM": "Beta University"},
		{"UNITID": "3", "INSTNM": "Gamma", "CITY": "Boston"},
	}
	for i, w := range want {
		row, err := r.Next()
		if err != nil {
			t.Fatalf("Next() row %d error = %v", i, err)
		}
		for k, v := range w {
			if row[k] != v {
				t.Errorf("row %d %s = %q, want %q", i, k, row[k], v)
			}
		}
		if r.Line() != i+2 {
			t.Errorf("Line() = %d, want %d", r.Line(), i+2)
		}
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at end error = %v, want io.EOF", err)
	}
}

func TestReader_Empty(t *testing.T) {
	if _, err := NewReader(strings.NewReader("")); err == nil {
		t.Error("NewReader() on empty input should fail")
	}
}

func TestReader_MalformedQuote(t *testing.T) {
	r, err := NewReader(strings.NewReader("UNITID,INSTNM\n1,\"unterminated\n"))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if _, err := r.Next(); err == nil || errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want parse error", err)
	}
}
