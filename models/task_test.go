package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"taskbox/models"
)

func TestValidateTaskName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid name", "Buy milk", false},
		{"Single character", "x", false},
		{"Empty", "", true},
		{"Whitespace only", "   ", true},
		{"At the limit", strings.Repeat("a", 255), false},
		{"Over the limit", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateTaskName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTaskUpdateDistinguishesAbsentFromZero(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantEmpty     bool
		wantName      bool
		wantCompleted bool
	}{
		{"no fields", `{}`, true, false, false},
		{"completed false is still a field", `{"completed":false}`, false, false, true},
		{"empty string name is still a field", `{"name":""}`, false, true, false},
		{"all fields", `{"name":"a","description":"b","completed":true}`, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upd models.TaskUpdate
			if err := json.Unmarshal([]byte(tt.body), &upd); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if upd.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", upd.Empty(), tt.wantEmpty)
			}
			if (upd.Name != nil) != tt.wantName {
				t.Errorf("Name present = %v, want %v", upd.Name != nil, tt.wantName)
			}
			if (upd.Completed != nil) != tt.wantCompleted {
				t.Errorf("Completed present = %v, want %v", upd.Completed != nil, tt.wantCompleted)
			}
		})
	}
}

func TestTaskJSONShape(t *testing.T) {
	raw, err := json.Marshal(models.Task{ID: 1, Name: "Buy milk"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"id"`, `"name"`, `"description"`, `"completed"`, `"createdAt"`} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("task JSON missing %s: %s", key, raw)
		}
	}
}
