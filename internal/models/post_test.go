package models

import (
	"testing"
	"time"
)

func TestLikedBy(t *testing.T) {
	p := Post{Likes: []string{"u1", "u2"}}
	if !p.LikedBy("u1") {
		t.Error("LikedBy(u1) = false, want true")
	}
	if p.LikedBy("u3") {
		t.Error("LikedBy(u3) = true, want false")
	}
	if p.LikedBy("") {
		t.Error("LikedBy(\"\") = true, want false")
	}
}

func TestCreated(t *testing.T) {
	p := Post{CreatedAt: "2026-08-30T10:00:00Z"}
	want := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if got := p.Created(); !got.Equal(want) {
		t.Errorf("Created() = %v, want %v", got, want)
	}

	bad := Post{CreatedAt: "yesterday"}
	if !bad.Created().IsZero() {
		t.Error("unparseable timestamp should yield zero time")
	}
}

func TestDisplayName(t *testing.T) {
	u := User{Username: "alice"}
	if got := u.DisplayName(); got != "alice" {
		t.Errorf("DisplayName() = %q, want handle fallback", got)
	}
	u.Name = "Alice Smith"
	if got := u.DisplayName(); got != "Alice Smith" {
		t.Errorf("DisplayName() = %q, want full name", got)
	}
}
