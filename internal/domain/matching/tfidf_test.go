package matching

import (
	"math"
	"testing"
)

func TestExperienceMatch(t *testing.T) {
	if got := ExperienceMatch("five years building go services", "five years building go services"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected 1 for identical texts, got %v", got)
	}

	if got := ExperienceMatch("accounting payroll invoices", "kubernetes terraform helm"); got != 0 {
		t.Fatalf("expected 0 for disjoint texts, got %v", got)
	}

	if got := ExperienceMatch("", "go developer"); got != 0 {
		t.Fatalf("expected 0 for empty resume, got %v", got)
	}
	if got := ExperienceMatch("the and with of", "go developer"); got != 0 {
		t.Fatalf("expected 0 when only stop words remain, got %v", got)
	}

	partial := ExperienceMatch("python django rest services", "python flask rest services")
	if partial <= 0 || partial >= 1 {
		t.Fatalf("expected partial overlap strictly between 0 and 1, got %v", partial)
	}
}

func TestTermCounts_TechTokens(t *testing.T) {
	counts := termCounts("C++ and C# devs shipping Node.js v2.0.")
	for _, want := range []string{"c++", "c#", "node.js", "v2.0"} {
		if counts[want] == 0 {
			t.Fatalf("expected token %q, got %v", want, counts)
		}
	}
	if counts["and"] != 0 {
		t.Fatalf("stop word leaked into counts: %v", counts)
	}
}
