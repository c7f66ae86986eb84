package message

import "testing"

func TestLogKeepsFullHistory(t *testing.T) {
	l := NewLog()
	for i := range 100 {
		l.Info(string(rune('a' + i%26)))
	}
	if l.Len() != 100 {
		t.Fatalf("expected 100 messages, got %d", l.Len())
	}
	if len(l.All()) != 100 {
		t.Fatal("All must return every message")
	}
}

func TestRecentReturnsNewestInOrder(t *testing.T) {
	l := NewLog()
	l.Info("one")
	l.Add("two", ColorRed)
	l.AddColored("three", ColorWhite, ColorRed)

	got := l.Recent(2)
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "three" {
		t.Fatalf("Recent(2) = %+v", got)
	}
	if got[0].FG != ColorRed || got[0].BG != ColorBlack {
		t.Errorf("Add should use black background, got %+v", got[0])
	}
	if got[1].BG != ColorRed {
		t.Errorf("AddColored should keep the background, got %+v", got[1])
	}
	if len(l.Recent(10)) != 3 {
		t.Error("Recent larger than the log should return everything")
	}
	if l.Recent(0) != nil {
		t.Error("Recent(0) should be empty")
	}
}

func TestLast(t *testing.T) {
	l := NewLog()
	if _, ok := l.Last(); ok {
		t.Fatal("empty log has no last message")
	}
	l.Info("x")
	if m, ok := l.Last(); !ok || m.Text != "x" || m.FG != ColorGrey {
		t.Fatalf("Last = %+v, %v", m, ok)
	}
}
