package roster

import "testing"

func TestNewSetup(t *testing.T) {
	s := NewSetup()
	if s.PlayerCount() != 2 {
		t.Errorf("PlayerCount %d, want 2", s.PlayerCount())
	}
	names := s.Names()
	if len(names) != 2 {
		t.Fatalf("len(Names) %d, want 2", len(names))
	}
	for i, name := range names {
		if name != "" {
			t.Errorf("name %d = %q, want blank", i, name)
		}
	}
}

func TestSetup_Confirm_DefaultNames(t *testing.T) {
	for _, n := range PlayerCountChoices {
		s := NewSetup()
		if err := s.SetPlayerCount(n); err != nil {
			t.Fatalf("SetPlayerCount(%d): %v", n, err)
		}
		r := s.Confirm()
		if r.PlayerCount != n {
			t.Errorf("PlayerCount %d, want %d", r.PlayerCount, n)
		}
		if len(r.PlayerNames) != n {
			t.Fatalf("len(PlayerNames) %d, want %d", len(r.PlayerNames), n)
		}
		for i, name := range r.PlayerNames {
			if want := DefaultName(i); name != want {
				t.Errorf("name %d = %q, want %q", i, name, want)
			}
		}
	}
}

func TestSetup_Confirm_TrimsAndDefaults(t *testing.T) {
	s := NewSetup()
	_ = s.SetPlayerCount(4)
	_ = s.SetName(0, "  Alice ")
	_ = s.SetName(1, "   ")
	_ = s.SetName(2, "")
	_ = s.SetName(3, "Bob the Builder")

	r := s.Confirm()
	want := []string{"Alice", "Player 2", "Player 3", "Bob the Builder"}
	for i, name := range r.PlayerNames {
		if name != want[i] {
			t.Errorf("name %d = %q, want %q", i, name, want[i])
		}
	}
}

func TestSetup_SetPlayerCount_BlanksNames(t *testing.T) {
	s := NewSetup()
	_ = s.SetPlayerCount(4)
	for i := 0; i < 4; i++ {
		_ = s.SetName(i, "name")
	}
	if err := s.SetPlayerCount(3); err != nil {
		t.Fatalf("SetPlayerCount: %v", err)
	}
	if err := s.SetPlayerCount(4); err != nil {
		t.Fatalf("SetPlayerCount: %v", err)
	}
	for i, name := range s.Names() {
		if name != "" {
			t.Errorf("name %d = %q, want blank after count change", i, name)
		}
	}
}

func TestSetup_SetPlayerCount_Invalid(t *testing.T) {
	s := NewSetup()
	_ = s.SetName(0, "kept")
	for _, n := range []int{-1, 0, 1, 5, 10} {
		if err := s.SetPlayerCount(n); err != ErrInvalidPlayerCount {
			t.Errorf("SetPlayerCount(%d) err = %v, want ErrInvalidPlayerCount", n, err)
		}
	}
	if s.PlayerCount() != 2 {
		t.Errorf("PlayerCount %d, want 2", s.PlayerCount())
	}
	if s.Names()[0] != "kept" {
		t.Error("invalid count should leave names untouched")
	}
}

func TestSetup_SetName_OutOfRange(t *testing.T) {
	s := NewSetup()
	if err := s.SetName(2, "x"); err != ErrInvalidPlayerIndex {
		t.Errorf("SetName(2) err = %v, want ErrInvalidPlayerIndex", err)
	}
	if err := s.SetName(-1, "x"); err != ErrInvalidPlayerIndex {
		t.Errorf("SetName(-1) err = %v, want ErrInvalidPlayerIndex", err)
	}
}

func TestSetup_Confirm_IsCopy(t *testing.T) {
	s := NewSetup()
	_ = s.SetName(0, "Alice")
	r := s.Confirm()
	_ = s.SetName(0, "Mallory")
	if r.PlayerNames[0] != "Alice" {
		t.Errorf("roster changed after handoff: %q", r.PlayerNames[0])
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 2}, {2, 2}, {3, 3}, {4, 4}, {9, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
