package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", ""); got != "" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestFirstPositive(t *testing.T) {
	if got := FirstPositive(-1, 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstPositive(-1, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
}
