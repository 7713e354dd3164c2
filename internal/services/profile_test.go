package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

func newProfileFixture(t *testing.T) (ProfileService, func() int64) {
	t.Helper()
	db := testDB(t)
	log := logger.NewNop()
	svc := NewProfileService(db, log, repos.NewUserProfileRepo(db, log))
	countProfiles := func() int64 {
		var n int64
		if err := db.Model(&types.UserProfile{}).Count(&n).Error; err != nil {
			t.Fatalf("count profiles: %v", err)
		}
		return n
	}
	return svc, countProfiles
}

func TestSignupTruncatesInterests(t *testing.T) {
	svc, _ := newProfileFixture(t)

	stored, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Interests: []string{"x", "y", "z", "w"},
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	var interests []string
	if err := json.Unmarshal(stored.Interests, &interests); err != nil {
		t.Fatalf("decode interests: %v", err)
	}
	if len(interests) != 3 || interests[0] != "x" || interests[1] != "y" || interests[2] != "z" {
		t.Fatalf("expected first 3 interests in order, got %v", interests)
	}
}

func TestSignupAssignsIDAndTimestamps(t *testing.T) {
	svc, _ := newProfileFixture(t)

	stored, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if stored.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected assigned id")
	}
	if !stored.CreatedAt.Equal(stored.UpdatedAt) {
		t.Fatalf("created/updated must match at creation: %v vs %v", stored.CreatedAt, stored.UpdatedAt)
	}
	if string(stored.Interests) != "[]" {
		t.Fatalf("nil interests must store as empty list, got %s", stored.Interests)
	}
}

func TestSignupAllowsDuplicateEmails(t *testing.T) {
	svc, countProfiles := newProfileFixture(t)

	input := SignupInput{FirstName: "A", LastName: "B", Email: "dup@b.com"}
	first, err := svc.Signup(context.Background(), input)
	if err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	second, err := svc.Signup(context.Background(), input)
	if err != nil {
		t.Fatalf("second Signup: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("duplicate signups must produce independent records")
	}
	if countProfiles() != 2 {
		t.Fatalf("expected 2 profiles")
	}
}
