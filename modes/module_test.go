package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if tt != nil {
			t.Fatal()
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if tt != t {
			t.Fatal()
		}
	})
}
