package codegen

import (
	"os"
	"testing"
)

var sep = string(os.PathSeparator)

func TestResolveOutputPathNoRoot(t *testing.T) {
	got := ResolveOutputPath("main.py", "", sep+"work")
	want := sep + "work" + sep + "main.py"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveOutputPathRelativeRoot(t *testing.T) {
	got := ResolveOutputPath("main.py", "out", sep+"work")
	want := sep + "work" + sep + "out" + sep + "main.py"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveOutputPathAbsoluteRoot(t *testing.T) {
	root := sep + "data" + sep + "out"
	got := ResolveOutputPath("main.py", root, sep+"work")
	want := root + sep + "main.py"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveOutputPathSingleTrailingSeparator(t *testing.T) {
	root := sep + "data" + sep + "out" + sep
	got := ResolveOutputPath("main.py", root, sep+"work")
	want := sep + "data" + sep + "out" + sep + "main.py"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveOutputPathIdempotent(t *testing.T) {
	a := ResolveOutputPath("pkg/app.go", "out", sep+"work")
	b := ResolveOutputPath("pkg/app.go", "out", sep+"work")
	if a != b {
		t.Fatalf("resolution not stable: %q vs %q", a, b)
	}
}
