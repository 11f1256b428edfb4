package envutil

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	t.Setenv("X_DELAY", "1500ms")
	if got := Duration("X_DELAY", time.Second); got != 1500*time.Millisecond {
		t.Fatalf("Duration=%v", got)
	}
	t.Setenv("X_DELAY", "3")
	if got := Duration("X_DELAY", time.Second); got != 3*time.Second {
		t.Fatalf("Duration(seconds)=%v", got)
	}
	t.Setenv("X_DELAY", "soon")
	if got := Duration("X_DELAY", time.Second); got != time.Second {
		t.Fatalf("Duration(invalid)=%v", got)
	}
}

func TestList(t *testing.T) {
	t.Setenv("X_LIST", " a, ,b ,c")
	got := List("X_LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("List=%v", got)
	}
	t.Setenv("X_LIST", " , ")
	if got := List("X_LIST", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Fatalf("List(empty)=%v", got)
	}
}

func TestBoolAndInt(t *testing.T) {
	t.Setenv("X_BOOL", "on")
	if !Bool("X_BOOL", false) {
		t.Fatalf("Bool(on) should be true")
	}
	t.Setenv("X_INT", "nope")
	if Int("X_INT", 7) != 7 {
		t.Fatalf("Int(invalid) should fall back")
	}
}
