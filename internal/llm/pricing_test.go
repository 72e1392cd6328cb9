package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model     string
		wantKnown bool
		wantIn    float64
	}{
		{"gemini-2.5-flash", true, 0.3},
		{"google/gemini-2.5-flash", true, 0.3},
		{"qwen2.5vl:7b", true, 0},
		{"some-unknown-model", false, 0},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.wantKnown {
			t.Errorf("LookupCost(%q) known = %v, want %v", tt.model, c != nil, tt.wantKnown)
			continue
		}
		if c != nil && c.InputPerMTok != tt.wantIn {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.wantIn)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("Cost = %v, want 0.8", got)
	}
}
