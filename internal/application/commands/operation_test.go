package commands

import (
	"errors"
	"fmt"
	"testing"

	"clubhub/internal/application"
)

func TestNewOperationCommand(t *testing.T) {
	session, _ := newSession(t, 2)

	tests := []struct {
		name     string
		op       string
		count    int
		wantType string
		wantErr  bool
	}{
		{name: "reload", op: "reload", wantType: "*commands.ReloadCommand"},
		{name: "add first", op: "add-first", count: 2, wantType: "*commands.AddFirstCommand"},
		{name: "add last", op: " ADD-LAST ", count: 1, wantType: "*commands.AddLastCommand"},
		{name: "remove first", op: "remove-first", count: 1, wantType: "*commands.RemoveFirstCommand"},
		{name: "remove last", op: "remove-last", count: 1, wantType: "*commands.RemoveLastCommand"},
		{name: "replace", op: "replace", wantType: "*commands.ReplaceCommand"},
		{name: "swap", op: "swap", wantType: "*commands.SwapCommand"},
		{name: "paginate", op: "paginate", wantType: "*commands.PaginateCommand"},
		{name: "unknown", op: "shuffle", wantErr: true},
		{name: "blank", op: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewOperationCommand(session, tt.op, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOperationCommand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var valErr *application.ValidationError
				if !errors.As(err, &valErr) || valErr.Field != "operation" {
					t.Errorf("expected operation ValidationError, got %v", err)
				}
				return
			}
			if got := typeName(cmd); got != tt.wantType {
				t.Errorf("type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestNewOperationCommand_UnknownIsInvalidOperation(t *testing.T) {
	session, _ := newSession(t, 2)

	_, err := NewOperationCommand(session, "shuffle", 1)
	if !errors.Is(err, application.ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}

	_, err = NewOperationCommand(session, "", 1)
	if err == nil || !contains(err.Error(), "operation is required") {
		t.Errorf("expected required error, got %v", err)
	}
}

func TestOperations_DrawerEntries(t *testing.T) {
	if len(Operations) != 7 {
		t.Fatalf("expected 7 drawer entries, got %d", len(Operations))
	}

	session, _ := newSession(t, 2)
	for _, op := range Operations {
		if _, err := NewOperationCommand(session, op.Name, 1); err != nil {
			t.Errorf("drawer entry %q has no command: %v", op.Title, err)
		}
	}
	if Operations[0].Title != "Reload" {
		t.Errorf("first entry = %q, want Reload", Operations[0].Title)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
