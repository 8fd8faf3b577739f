package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON_Layouts(t *testing.T) {
	cases := map[string]string{
		`"2017-05-10"`:           "2017-05-10",
		`"10-05-2017"`:           "2017-05-10",
		`"2017/05/10"`:           "2017-05-10",
		`"May 10, 2017"`:         "2017-05-10",
		`"2017-05-10T15:04:05Z"`: "2017-05-10",
	}

	for in, want := range cases {
		var d Date
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if got := d.String(); got != want {
			t.Errorf("unmarshal %s: expected %s, got %s", in, want, got)
		}
	}
}

func TestDate_UnmarshalJSON_EmptyAndNull(t *testing.T) {
	for _, in := range []string{`""`, `null`} {
		d := NewDate(2020, time.January, 1)
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if !d.IsZero() {
			t.Errorf("unmarshal %s: expected zero date, got %s", in, d)
		}
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Fatalf("expected error for invalid date")
	}
	if err := json.Unmarshal([]byte(`20170510`), &d); err == nil {
		t.Fatalf("expected error for non-string date")
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2023, time.January, 1))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2023-01-01"` {
		t.Errorf("expected \"2023-01-01\", got %s", b)
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date

	if err := d.Scan(time.Date(2017, time.May, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2017-05-10" {
		t.Errorf("scan time: got %s", d)
	}

	if err := d.Scan("2023-01-01 00:00:00+00:00"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2023-01-01" {
		t.Errorf("scan string: got %s", d)
	}

	if err := d.Scan([]byte("2019-12-31")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.String() != "2019-12-31" {
		t.Errorf("scan bytes: got %s", d)
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2019-12-31" {
		t.Errorf("value: expected 2019-12-31, got %v", v)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	v, err = d.Value()
	if err != nil {
		t.Fatalf("value zero: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil value for zero date, got %v", v)
	}

	if err := d.Scan(42); err == nil {
		t.Errorf("expected error scanning int")
	}
}
