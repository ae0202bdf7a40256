package gamelog

import (
	"slices"
	"testing"
)

func TestLogKeepsOrder(t *testing.T) {
	var l Log
	l.Add("one")
	l.Addf("%s", "two")
	l.Add("three")
	if got := l.Entries(); !slices.Equal(got, []string{"one", "two", "three"}) {
		t.Fatalf("Entries = %v", got)
	}
}

func TestLast(t *testing.T) {
	var l Log
	if got := l.Last(3); len(got) != 0 {
		t.Fatalf("Last on empty log = %v", got)
	}
	for _, m := range []string{"a", "b", "c", "d"} {
		l.Add(m)
	}
	if got := l.Last(2); !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("Last(2) = %v", got)
	}
	if got := l.Last(10); len(got) != 4 {
		t.Fatalf("Last(10) = %v; want all 4", got)
	}
}

func TestEntriesIsACopy(t *testing.T) {
	var l Log
	l.Add("keep")
	e := l.Entries()
	e[0] = "changed"
	if l.Entries()[0] != "keep" {
		t.Fatal("mutating Entries result must not affect the log")
	}
}
