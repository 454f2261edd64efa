package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringList
	}{
		{"json array", `["Go","Rust"]`, StringList{"Go", "Rust"}},
		{"comma joined", "Go,Rust", StringList{"Go", "Rust"}},
		{"comma joined with spaces", " Go , Rust ", StringList{"Go", "Rust"}},
		{"empty entries dropped", "Go,,Rust,", StringList{"Go", "Rust"}},
		{"empty string", "", StringList{}},
		{"whitespace only", "   ", StringList{}},
		{"empty json array", "[]", StringList{}},
		{"malformed json falls back to split", `["Go",`, StringList{`["Go"`}},
		{"single value", "Go", StringList{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStringList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStringListScanAndValue(t *testing.T) {
	// Either stored form decodes to the same list and re-encodes as JSON
	for _, raw := range []string{`["Go","Rust"]`, "Go, Rust"} {
		var l StringList
		if err := l.Scan(raw); err != nil {
			t.Fatalf("Scan(%q) returned error: %v", raw, err)
		}
		if !reflect.DeepEqual(l, StringList{"Go", "Rust"}) {
			t.Errorf("Scan(%q) = %v, want [Go Rust]", raw, l)
		}

		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value() returned error: %v", err)
		}
		if v != `["Go","Rust"]` {
			t.Errorf("Value() = %v, want canonical JSON array", v)
		}
	}
}

func TestStringListScanNil(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("Scan(nil) = %v, want empty list", l)
	}
}

func TestStringListScanBytes(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["a","b"]`)); err != nil {
		t.Fatalf("Scan([]byte) returned error: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"a", "b"}) {
		t.Errorf("Scan([]byte) = %v, want [a b]", l)
	}

	if err := l.Scan(42); err == nil {
		t.Error("Scan(int) should return an error")
	}
}

func TestStringListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want StringList
	}{
		{"array", `["Go","Rust"]`, StringList{"Go", "Rust"}},
		{"delimited string", `"Go, Rust"`, StringList{"Go", "Rust"}},
		{"empty array", `[]`, StringList{}},
		{"empty string", `""`, StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tt.data), &l); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.data, err)
			}
			if !reflect.DeepEqual(l, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.data, l, tt.want)
			}
		})
	}

	var l StringList
	if err := json.Unmarshal([]byte(`{"not":"a list"}`), &l); err == nil {
		t.Error("Unmarshal(object) should return an error")
	}
}

func TestStringListMarshalJSON(t *testing.T) {
	var nilList StringList
	data, err := json.Marshal(nilList)
	if err != nil {
		t.Fatalf("Marshal(nil) returned error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(nil) = %s, want []", data)
	}

	data, err = json.Marshal(StringList{"Go"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `["Go"]` {
		t.Errorf("Marshal = %s, want [\"Go\"]", data)
	}
}
