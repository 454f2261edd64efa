package models

import "testing"

func TestLearningItemPatchFields(t *testing.T) {
	empty := ""
	date := "2025-12-01"
	progress := 75

	p := &LearningItemPatch{
		Progress:            &progress,
		EstimatedCompletion: &empty,
	}
	fields := p.Fields()

	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(fields), fields)
	}
	if fields["progress"] != 75 {
		t.Errorf("progress = %v, want 75", fields["progress"])
	}
	// Explicit empty string clears the column
	v, ok := fields["estimated_completion"]
	if !ok {
		t.Fatal("estimated_completion missing from fields")
	}
	if v != nil {
		t.Errorf("estimated_completion = %v, want nil", v)
	}

	p = &LearningItemPatch{EstimatedCompletion: &date}
	if got := p.Fields()["estimated_completion"]; got != date {
		t.Errorf("estimated_completion = %v, want %v", got, date)
	}
}

func TestEducationPatchGradeColumn(t *testing.T) {
	grade := "3.9"
	p := &EducationPatch{Grade: &grade}
	fields := p.Fields()

	// The JSON field is grade but the storage column is the legacy gpa
	if fields["gpa"] != "3.9" {
		t.Errorf("gpa = %v, want 3.9", fields["gpa"])
	}
	if _, ok := fields["grade"]; ok {
		t.Error("fields should not contain a grade key")
	}
}

func TestWorkHistoryPatchNullableEndDate(t *testing.T) {
	empty := ""
	p := &WorkHistoryPatch{EndDate: &empty}
	fields := p.Fields()

	v, ok := fields["end_date"]
	if !ok {
		t.Fatal("end_date missing from fields")
	}
	if v != nil {
		t.Errorf("end_date = %v, want nil", v)
	}

	if len((&WorkHistoryPatch{}).Fields()) != 0 {
		t.Error("empty patch should produce no fields")
	}
}
