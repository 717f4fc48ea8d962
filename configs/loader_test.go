package configs

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

var testSchema = `
memory_size?: int & >=0
exit_on_output?: bool
program?: string
inputs?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/a.cue",
		"testdata/b.cue",
	}, testSchema)

	var size int
	if err := loader.AssignFirst("memory_size", &size); err != nil {
		t.Fatal(err)
	}
	if size != 2048 {
		t.Fatalf("got %v", size)
	}

	var exit bool
	if err := loader.AssignFirst("exit_on_output", &exit); err != nil {
		t.Fatal(err)
	}
	if !exit {
		t.Fatal()
	}

	var inputs []string
	if err := loader.AssignFirst("inputs", &inputs); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", inputs); str != "[1 2]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &inputs)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	if str := First[string](loader, "program"); str != "1,0,0,0,99" {
		t.Fatalf("got %q", str)
	}
	if str := First[string](loader, "not"); str != "" {
		t.Fatalf("got %q", str)
	}
}

func TestLoaderAll(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/a.cue",
		"testdata/b.cue",
	}, testSchema)
	sizes := slices.Collect(All[int](loader, "memory_size"))
	if str := fmt.Sprintf("%v", sizes); str != "[2048 4096]" {
		t.Fatalf("got %s", str)
	}
	if !slices.Equal(loader.Paths(), []string{"testdata/a.cue", "testdata/b.cue"}) {
		t.Fatalf("got %v", loader.Paths())
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, "")
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if n := First[int](loader, "memory_size"); n != 0 {
		t.Fatalf("got %v", n)
	}
	var zero Loader
	if n := First[int](zero, "memory_size"); n != 0 {
		t.Fatalf("got %v", n)
	}
}
