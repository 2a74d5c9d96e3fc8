package commands

import (
	"context"
	"errors"
	"testing"

	"clubhub/internal/application"
	"clubhub/internal/domain"
)

func TestSwipeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dir     domain.Direction
		wantErr bool
	}{
		{name: "like", dir: domain.DirectionRight},
		{name: "skip", dir: domain.DirectionLeft},
		{name: "up", dir: domain.DirectionTop, wantErr: true},
		{name: "none", dir: domain.DirectionNone, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&SwipeCommand{Direction: tt.dir}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSwipeCommand_Execute(t *testing.T) {
	session, repo := newSession(t, 8)
	ctx := context.Background()

	result, err := NewSwipeCommand(session, domain.DirectionRight).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(result.Message, "Liked s1") {
		t.Errorf("message = %q, want it to contain %q", result.Message, "Liked s1")
	}

	result, err = NewSwipeCommand(session, domain.DirectionLeft).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(result.Message, "Skipped s2") {
		t.Errorf("message = %q, want it to contain %q", result.Message, "Skipped s2")
	}
	if result.Change.New.Top != 2 {
		t.Errorf("top = %d, want 2", result.Change.New.Top)
	}

	likes, err := NewListSwipesCommand(repo, domain.DirectionRight).Execute(ctx)
	if err != nil {
		t.Fatalf("ListSwipes error = %v", err)
	}
	if len(likes) != 1 || likes[0].Spot.Name != "s1" {
		t.Errorf("likes = %+v, want only s1", likes)
	}

	all, err := NewListSwipesCommand(repo, domain.DirectionNone).Execute(ctx)
	if err != nil {
		t.Fatalf("ListSwipes error = %v", err)
	}
	if len(all) != 2 || all[0].Spot.Name != "s2" {
		t.Errorf("swipes = %+v, want s2 then s1", all)
	}
}

func TestSwipeCommand_Paginates(t *testing.T) {
	session, _ := newSession(t, 3)

	result, err := NewSwipeCommand(session, domain.DirectionLeft).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Change.New.Len() != 6 {
		t.Errorf("len = %d, want 6 after pagination", result.Change.New.Len())
	}
	if !contains(result.Message, "+3") {
		t.Errorf("message = %q, want the insertion summary", result.Message)
	}
}

func TestRewindCommand_Execute(t *testing.T) {
	session, _ := newSession(t, 8)
	ctx := context.Background()

	_, err := NewRewindCommand(session).Execute(ctx)
	if !errors.Is(err, application.ErrNothingToRewind) {
		t.Fatalf("expected ErrNothingToRewind, got %v", err)
	}

	if _, err := NewSwipeCommand(session, domain.DirectionRight).Execute(ctx); err != nil {
		t.Fatalf("swipe error = %v", err)
	}

	result, err := NewRewindCommand(session).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(result.Message, "Rewound to s1") {
		t.Errorf("message = %q", result.Message)
	}
	if session.Deck().Top != 0 {
		t.Errorf("top = %d, want 0", session.Deck().Top)
	}
}

func TestShowCommand_Execute(t *testing.T) {
	session, _ := newSession(t, 2)

	deck, err := NewShowCommand(session).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if deck.Len() != 2 || deck.Top != 0 {
		t.Errorf("deck = %+v", deck)
	}
}
