package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"selected_question": map[string]any{"type": "string"},
			"level":             map[string]any{"type": "integer"},
			"band":              map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"candidates": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"selected_question", "level"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["selected_question"].Type != "STRING" {
		t.Fatalf("expected STRING for selected_question, got %s", schema.Properties["selected_question"].Type)
	}
	if schema.Properties["level"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for level, got %s", schema.Properties["level"].Type)
	}
	if len(schema.Properties["band"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["band"].Enum))
	}
	if schema.Properties["candidates"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for candidates, got %s", schema.Properties["candidates"].Type)
	}
	if schema.Properties["candidates"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for candidates items, got %s", schema.Properties["candidates"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
