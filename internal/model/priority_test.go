package model

import "testing"

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "high", want: High},
		{in: "H", want: High},
		{in: " Medium ", want: Medium},
		{in: "med", want: Medium},
		{in: "l", want: Low},
		{in: "urgent", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPriorityDisplay(t *testing.T) {
	want := map[Priority][2]string{
		High:   {"High", "#EF5350"},
		Medium: {"Medium", "#FF9800"},
		Low:    {"Low", "#66BB6A"},
	}
	for p, w := range want {
		if p.Label() != w[0] || p.Color() != w[1] {
			t.Errorf("%d: got (%s, %s), want (%s, %s)", p, p.Label(), p.Color(), w[0], w[1])
		}
	}
	if High.Rank() >= Medium.Rank() || Medium.Rank() >= Low.Rank() {
		t.Error("ranks must order High < Medium < Low")
	}
}

func TestPriorityNext(t *testing.T) {
	if High.Next() != Medium || Medium.Next() != Low || Low.Next() != High {
		t.Error("Next should cycle High -> Medium -> Low -> High")
	}
}

func TestPriorityText(t *testing.T) {
	b, err := Medium.MarshalText()
	if err != nil || string(b) != "medium" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var p Priority
	if err := p.UnmarshalText([]byte("low")); err != nil || p != Low {
		t.Fatalf("UnmarshalText = %v, %v", p, err)
	}
	if _, err := Priority(9).MarshalText(); err == nil {
		t.Error("expected error for invalid priority")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	task := Task{ID: 4, Title: "x", Priority: Low, Completed: true}
	if got := task.Snapshot().Task(); got != task {
		t.Errorf("got %+v, want %+v", got, task)
	}
}
