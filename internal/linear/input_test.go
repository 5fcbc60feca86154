package linear

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestIssueCreateInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   IssueCreateInput
		wantErr string
	}{
		{"valid", IssueCreateInput{TeamID: "t1", Title: "Fix it", Priority: 4}, ""},
		{"missing title", IssueCreateInput{TeamID: "t1"}, "title is required"},
		{"missing team", IssueCreateInput{Title: "x"}, "teamId is required"},
		{"priority too high", IssueCreateInput{TeamID: "t1", Title: "x", Priority: 5}, "priority must be at most 4"},
		{"negative priority", IssueCreateInput{TeamID: "t1", Title: "x", Priority: -1}, "priority must be at least 0"},
		{"title at limit", IssueCreateInput{TeamID: "t1", Title: strings.Repeat("a", MaxTitleLength)}, ""},
		{"blank label id", IssueCreateInput{TeamID: "t1", Title: "x", LabelIDs: []string{""}}, "labelIds[0] is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestIssueUpdateInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   IssueUpdateInput
		wantErr string
	}{
		{"empty", IssueUpdateInput{}, "no updates specified"},
		{"title only", IssueUpdateInput{Title: ptr("New")}, ""},
		{"blank title", IssueUpdateInput{Title: ptr("")}, "title cannot be empty"},
		{"priority zero allowed", IssueUpdateInput{Priority: ptr(0)}, ""},
		{"priority out of range", IssueUpdateInput{Priority: ptr(9)}, "priority must be at most 4"},
		{"unassign", IssueUpdateInput{AssigneeID: ptr("")}, ""},
		{"clear labels", IssueUpdateInput{LabelIDs: []string{}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestIssueUpdateInputFields(t *testing.T) {
	in := IssueUpdateInput{
		Title:      ptr("T"),
		Priority:   ptr(0),
		StateID:    ptr("s1"),
		AssigneeID: ptr("u1"),
	}
	fields := in.Fields()

	want := map[string]interface{}{"title": "T", "priority": 0, "stateId": "s1", "assigneeId": "u1"}
	if len(fields) != len(want) {
		t.Fatalf("Fields() = %v, want %v", fields, want)
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("Fields()[%q] = %v, want %v", k, fields[k], v)
		}
	}
}
