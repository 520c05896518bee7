package haptics

import "testing"

func TestParsePattern(t *testing.T) {
	tests := []struct {
		in      string
		want    Pattern
		wantErr bool
	}{
		{"alignment", Alignment, false},
		{"Level-Change", LevelChange, false},
		{"level_change", LevelChange, false},
		{"generic", Generic, false},
		{"", Generic, false},
		{"1", LevelChange, false},
		{"buzz", Generic, true},
	}
	for _, tt := range tests {
		got, err := ParsePattern(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePattern(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePattern(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePerformanceTime(t *testing.T) {
	tests := []struct {
		in      string
		want    PerformanceTime
		wantErr bool
	}{
		{"default", Default, false},
		{"now", Now, false},
		{"draw-completed", DrawCompleted, false},
		{"DrawCompleted", DrawCompleted, false},
		{"", Default, false},
		{"later", Default, true},
	}
	for _, tt := range tests {
		got, err := ParsePerformanceTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePerformanceTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePerformanceTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWireOrdinalsAreStable(t *testing.T) {
	if Alignment != 0 || LevelChange != 1 || Generic != 2 {
		t.Fatal("pattern wire ordinals changed")
	}
	if Default != 0 || Now != 1 || DrawCompleted != 2 {
		t.Fatal("performance time wire ordinals changed")
	}
}

func TestFromWire_UnknownValues(t *testing.T) {
	if got := PatternFromWire(7); got != Generic {
		t.Errorf("PatternFromWire(7) = %v, want generic", got)
	}
	if got := PatternFromWire(-1); got != Generic {
		t.Errorf("PatternFromWire(-1) = %v, want generic", got)
	}
	if got := PerformanceTimeFromWire(9); got != Default {
		t.Errorf("PerformanceTimeFromWire(9) = %v, want default", got)
	}
	if got := (WireRequest{Pattern: 0, PerformanceTime: 1}).Request(); got != (Request{Alignment, Now}) {
		t.Errorf("WireRequest.Request() = %+v", got)
	}
}

func TestNewRequest_Defaults(t *testing.T) {
	r := NewRequest()
	if r.Pattern != Generic || r.Time != Default {
		t.Errorf("NewRequest() = %+v, want generic/default", r)
	}
}
