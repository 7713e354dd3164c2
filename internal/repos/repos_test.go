package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.StatusCheck{},
		&types.UserProfile{},
		&types.ExperienceCard{},
		&types.SwipeRecord{},
		&types.AICallLog{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newCard(userID uuid.UUID, title string, createdAt time.Time) *types.ExperienceCard {
	return &types.ExperienceCard{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Confidence: types.DefaultConfidence,
		CreatedAt:  createdAt,
	}
}

func TestUserProfileRepoGetByIDMissing(t *testing.T) {
	db := testDB(t)
	repo := NewUserProfileRepo(db, logger.NewNop())
	ctx := context.Background()

	got, err := repo.GetByID(ctx, nil, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile for unknown id, got %+v", got)
	}
}

func TestUserProfileRepoCreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewUserProfileRepo(db, logger.NewNop())
	ctx := context.Background()

	now := time.Now().UTC()
	profile := &types.UserProfile{
		ID:        uuid.New(),
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
		Interests: []byte(`["x","y"]`),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := repo.Create(ctx, nil, profile); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, profile.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Email != "a@b.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if string(got.Interests) != `["x","y"]` {
		t.Fatalf("unexpected interests: %s", got.Interests)
	}
}

func TestExperienceCardRepoListByUserExcluding(t *testing.T) {
	db := testDB(t)
	repo := NewExperienceCardRepo(db, logger.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)
	first := newCard(userID, "First", base)
	second := newCard(userID, "Second", base.Add(time.Minute))
	third := newCard(userID, "Third", base.Add(2*time.Minute))
	other := newCard(uuid.New(), "Other user card", base)

	if _, err := repo.CreateBatch(ctx, nil, []*types.ExperienceCard{third, first, second, other}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.ListByUserExcluding(ctx, nil, userID, []uuid.UUID{second.ID}, 10)
	if err != nil {
		t.Fatalf("ListByUserExcluding: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != third.ID {
		t.Fatalf("expected oldest-first [First, Third], got [%s, %s]", got[0].Title, got[1].Title)
	}

	limited, err := repo.ListByUserExcluding(ctx, nil, userID, nil, 1)
	if err != nil {
		t.Fatalf("ListByUserExcluding with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != first.ID {
		t.Fatalf("expected only the oldest card, got %d", len(limited))
	}
}

func TestExperienceCardRepoGetByIDForUser(t *testing.T) {
	db := testDB(t)
	repo := NewExperienceCardRepo(db, logger.NewNop())
	ctx := context.Background()

	owner := uuid.New()
	card := newCard(owner, "Mine", time.Now().UTC())
	if _, err := repo.CreateBatch(ctx, nil, []*types.ExperienceCard{card}); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := repo.GetByIDForUser(ctx, nil, card.ID, owner)
	if err != nil {
		t.Fatalf("GetByIDForUser: %v", err)
	}
	if got == nil || got.ID != card.ID {
		t.Fatalf("expected card for owner, got %+v", got)
	}

	foreign, err := repo.GetByIDForUser(ctx, nil, card.ID, uuid.New())
	if err != nil {
		t.Fatalf("GetByIDForUser foreign user: %v", err)
	}
	if foreign != nil {
		t.Fatalf("expected nil for foreign user, got %+v", foreign)
	}
}

func TestSwipeRepoSwipedCardIDs(t *testing.T) {
	db := testDB(t)
	repo := NewSwipeRepo(db, logger.NewNop())
	ctx := context.Background()

	userID := uuid.New()
	cardID := uuid.New()
	for _, direction := range []string{types.SwipeLeft, types.SwipeRight} {
		swipe := &types.SwipeRecord{
			ID:        uuid.New(),
			UserID:    userID,
			CardID:    cardID,
			Direction: direction,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := repo.Create(ctx, nil, swipe); err != nil {
			t.Fatalf("Create swipe: %v", err)
		}
	}

	ids, err := repo.SwipedCardIDs(ctx, nil, userID)
	if err != nil {
		t.Fatalf("SwipedCardIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != cardID {
		t.Fatalf("expected distinct single card id, got %v", ids)
	}

	none, err := repo.SwipedCardIDs(ctx, nil, uuid.New())
	if err != nil {
		t.Fatalf("SwipedCardIDs unknown user: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no ids for unknown user, got %v", none)
	}
}

func TestStatusCheckRepoList(t *testing.T) {
	db := testDB(t)
	repo := NewStatusCheckRepo(db, logger.NewNop())
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Minute)
	for i, name := range []string{"one", "two"} {
		check := &types.StatusCheck{
			ID:         uuid.New(),
			ClientName: name,
			Timestamp:  base.Add(time.Duration(i) * time.Second),
		}
		if _, err := repo.Create(ctx, nil, check); err != nil {
			t.Fatalf("Create status check: %v", err)
		}
	}

	got, err := repo.List(ctx, nil, 1000)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ClientName != "one" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
