package dates

import (
	"reflect"
	"testing"
)

func TestEnumerateInclusive(t *testing.T) {
	got := Enumerate("2024-03-10", "2024-03-13")
	want := []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEnumerateSingleDay(t *testing.T) {
	got := Enumerate("2024-03-10", "2024-03-10")
	if len(got) != 1 || got[0] != "2024-03-10" {
		t.Fatalf("expected one day, got %v", got)
	}
}

func TestEnumerateInvertedRange(t *testing.T) {
	if got := Enumerate("2024-03-13", "2024-03-10"); got != nil {
		t.Fatalf("inverted range should yield nil, got %v", got)
	}
}

func TestEnumerateAcrossMonthEnd(t *testing.T) {
	got := Enumerate("2024-02-28", "2024-03-01")
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"} // leap year
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2024-12-31", 1); got != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", got)
	}
	if got := AddDays("2024-03-10", 0); got != "2024-03-10" {
		t.Fatalf("expected same day, got %s", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("2024-03-10") {
		t.Fatal("expected valid date")
	}
	if Valid("2024-3-10") || Valid("10-03-2024") || Valid("") {
		t.Fatal("expected invalid date")
	}
}
