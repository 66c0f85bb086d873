package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
)

func sampleDoc() Document {
	return Document{
		Tasks: []model.Task{
			{ID: 2, Title: "Fix bug", Priority: model.High},
			{ID: 1, Title: "Buy milk", Priority: model.Low, Completed: true},
		},
		Stats: model.Stats{Total: 2, Completed: 1, Remaining: 1, Percentage: 50},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, sampleDoc()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"priority": "high"`) {
		t.Errorf("priority should encode as a name:\n%s", buf.String())
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleDoc(), got); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, YAML, sampleDoc()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "priority: low") {
		t.Errorf("priority should encode as a name:\n%s", buf.String())
	}
	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleDoc(), got); diff != "" {
		t.Errorf("decoded (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, JSON, Document{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tasks": []`) {
		t.Errorf("empty list should encode as []:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "JSON": JSON, "yml": YAML, "yaml": YAML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if err := Write(&bytes.Buffer{}, Text, Document{}); err == nil {
		t.Error("Write(Text) should be rejected")
	}
}
