package chat

import "testing"

func TestStoreAppendOrder(t *testing.T) {
	s := NewStore()
	a := NewUserTurn("first", nil)
	b := NewSystemTurn(&Reply{Text: "second"})
	c := NewUserTurn("third", nil)
	s.Append(a)
	s.Append(b)
	s.Append(c)

	turns := s.Turns()
	if len(turns) != 3 {
		t.Fatalf("len = %d, want 3", len(turns))
	}
	for i, want := range []*Turn{a, b, c} {
		if turns[i] != want {
			t.Errorf("turns[%d] = %q, want %q", i, turns[i].Text, want.Text)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestStoreTurnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Append(NewUserTurn("only", nil))

	snap := s.Turns()
	s.Append(NewUserTurn("later", nil))
	if len(snap) != 1 {
		t.Errorf("snapshot grew to %d entries", len(snap))
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe(4)
	defer cancel()

	a := NewUserTurn("a", nil)
	b := NewUserTurn("b", nil)
	s.Append(a)
	s.Append(b)

	if got := <-ch; got != a {
		t.Errorf("first delivery = %q, want %q", got.Text, a.Text)
	}
	if got := <-ch; got != b {
		t.Errorf("second delivery = %q, want %q", got.Text, b.Text)
	}
}

func TestStoreSubscribeCancel(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe(1)
	cancel()
	cancel() // idempotent

	s.Append(NewUserTurn("after cancel", nil))
	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}
}

func TestStoreSlowSubscriberDropped(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe(1)
	defer cancel()

	s.Append(NewUserTurn("one", nil))
	s.Append(NewUserTurn("two", nil)) // buffer full, dropped

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	got := <-ch
	if got.Text != "one" {
		t.Errorf("delivered %q, want %q", got.Text, "one")
	}
	select {
	case extra := <-ch:
		t.Errorf("unexpected extra delivery %q", extra.Text)
	default:
	}
}
