package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"dumbbell alternate curl", 0, "dumbbell alternate curl"},
		{"dumbbell alternate curl", 30, "dumbbell alternate curl"},
		{"dumbbell alternate curl", 10, "dumbbel..."},
		{"squat", 2, "sq"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/state/reps/reps.log", 15)
	if len([]rune(got)) != 15 {
		t.Fatalf("truncateMiddle length = %d, want 15 (%q)", len([]rune(got)), got)
	}
	if got[:7] != "/home/u" || got[len(got)-7:] != "eps.log" {
		t.Fatalf("truncateMiddle = %q, want both ends kept", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"upper arms":   "Upper Arms",
		"body_weight":  "Body Weight",
		"  CARDIO  ":   "Cardio",
		"":             "",
		"lower   legs": "Lower Legs",
	}
	for in, want := range tests {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight should not cut, got %q", got)
	}
}
