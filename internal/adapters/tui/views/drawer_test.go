package views

import (
	"testing"

	"clubhub/internal/application/commands"
)

func TestDrawer_AddFirstWithCount(t *testing.T) {
	session, _ := newTestSession(t, 3)
	m := NewDrawerModel(session)
	m.Open()

	m.Update(keyMsg("j"))
	if m.Selected().Name != commands.OpAddFirst {
		t.Fatalf("selected = %s, want %s", m.Selected().Name, commands.OpAddFirst)
	}

	m.Update(keyMsg("enter"))
	if m.mode != drawerCount {
		t.Fatal("expected count prompt")
	}
	m.count.Input.SetValue("3")

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(ChangeAppliedMsg)
	if !ok {
		t.Fatalf("expected ChangeAppliedMsg, got %T", cmd())
	}
	if got := msg.Result.Change.Script.Insertions(); got != 3 {
		t.Errorf("insertions = %d, want 3", got)
	}
	if session.Deck().Len() != 6 {
		t.Errorf("len = %d, want 6", session.Deck().Len())
	}
	if m.mode != drawerMenu {
		t.Error("expected drawer to return to the menu")
	}
}

func TestDrawer_InvalidCount(t *testing.T) {
	session, _ := newTestSession(t, 3)
	m := NewDrawerModel(session)

	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	m.Update(keyMsg("enter"))
	m.count.Input.SetValue("0")

	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Error("expected no command for an invalid count")
	}
	if !m.MessageErr {
		t.Error("expected validation message")
	}

	m.Update(keyMsg("esc"))
	if m.mode != drawerMenu {
		t.Error("esc should return to the menu")
	}
}

func TestDrawer_ReloadNeedsConfirmation(t *testing.T) {
	session, _ := newTestSession(t, 3)
	m := NewDrawerModel(session)

	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Fatal("reload should ask first")
	}
	if m.mode != drawerConfirm {
		t.Fatal("expected confirmation prompt")
	}

	m.Update(keyMsg("n"))
	if m.mode != drawerMenu {
		t.Fatal("n should cancel")
	}

	m.Update(keyMsg("enter"))
	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	msg := cmd().(ChangeAppliedMsg)
	if msg.Result.Change.Op != commands.OpReload {
		t.Errorf("op = %s, want reload", msg.Result.Change.Op)
	}
}

func TestDrawer_SwapRunsImmediately(t *testing.T) {
	session, _ := newTestSession(t, 3)
	m := NewDrawerModel(session)

	for i := 0; i < 6; i++ {
		m.Update(keyMsg("j"))
	}
	if m.Selected().Name != commands.OpSwap {
		t.Fatalf("selected = %s, want swap", m.Selected().Name)
	}

	_, cmd := m.Update(keyMsg("enter"))
	msg := cmd().(ChangeAppliedMsg)
	if msg.Result.Change.Script.Moves() != 2 {
		t.Errorf("moves = %d, want 2", msg.Result.Change.Script.Moves())
	}
}

func TestDrawer_Close(t *testing.T) {
	session, _ := newTestSession(t, 1)
	m := NewDrawerModel(session)

	_, cmd := m.Update(keyMsg("esc"))
	if _, ok := cmd().(SwitchToDeckMsg); !ok {
		t.Error("esc should close the drawer")
	}
}

func TestCountInput_Count(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "", want: 1},
		{value: "1", want: 1},
		{value: " 42 ", want: 42},
		{value: "0", wantErr: true},
		{value: "101", wantErr: true},
		{value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := NewCountInput("count")
			c.Input.SetValue(tt.value)

			got, err := c.Count()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Count() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}
