package dfcmd

import (
	"slices"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	if got := SplitArgs(""); len(got) != 0 {
		t.Fatalf("expected no arguments, got %v", got)
	}
	if got := SplitArgs(" heal  self "); !slices.Equal(got, []string{"heal", "self"}) {
		t.Fatalf("unexpected arguments %v", got)
	}
}
