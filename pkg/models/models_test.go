package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestShiftEntryMarshalBareTag(t *testing.T) {
	data, err := json.Marshal(Tag(ShiftSick))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(data) != `"sick"` {
		t.Errorf("Expected bare tag to marshal as a plain string, got %s", data)
	}
}

func TestShiftEntryMarshalWorkingAssignment(t *testing.T) {
	data, err := json.Marshal(WorkingAssignment(ShiftMorning, "Branch A"))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(data) != `{"state":"morning","branch":"Branch A"}` {
		t.Errorf("Expected working assignment object, got %s", data)
	}
}

func TestShiftEntryUnmarshalBothShapes(t *testing.T) {
	var tag ShiftEntry
	if err := json.Unmarshal([]byte(`"leave"`), &tag); err != nil {
		t.Fatalf("unmarshal string shape returned error: %v", err)
	}
	if tag.State != ShiftLeave || tag.IsWorkingAssignment() {
		t.Errorf("Expected bare leave tag, got %+v", tag)
	}

	var asgn ShiftEntry
	if err := json.Unmarshal([]byte(`{"state":"afternoon","branch":"Branch B"}`), &asgn); err != nil {
		t.Fatalf("unmarshal object shape returned error: %v", err)
	}
	if asgn.State != ShiftAfternoon || asgn.Branch != "Branch B" || !asgn.IsWorkingAssignment() {
		t.Errorf("Expected working assignment at Branch B, got %+v", asgn)
	}
}

func TestDateKeyZeroPadded(t *testing.T) {
	key := DateKey(time.Date(2025, time.June, 1, 15, 0, 0, 0, time.UTC))
	if key != "2025-06-01" {
		t.Errorf("Expected 2025-06-01, got %s", key)
	}
}

func TestWeekdayOf(t *testing.T) {
	wd, err := WeekdayOf("2025-06-01")
	if err != nil {
		t.Fatalf("WeekdayOf returned error: %v", err)
	}
	if wd != time.Sunday {
		t.Errorf("Expected Sunday for 2025-06-01, got %s", wd)
	}
}

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday("monday")
	if !ok || wd != time.Monday {
		t.Errorf("Expected monday to parse as Monday, got %v %v", wd, ok)
	}
	if _, ok := ParseWeekday("someday"); ok {
		t.Error("Expected someday to be rejected")
	}
}
