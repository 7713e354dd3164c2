package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/placer-backend/internal/clients/openai"
	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
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

func seedProfile(t *testing.T, db *gorm.DB, interests []string) *types.UserProfile {
	t.Helper()
	interestsJSON, err := json.Marshal(interests)
	if err != nil {
		t.Fatalf("marshal interests: %v", err)
	}
	now := time.Now().UTC()
	profile := &types.UserProfile{
		ID:        uuid.New(),
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Interests: interestsJSON,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func seedCard(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, createdAt time.Time) *types.ExperienceCard {
	t.Helper()
	card := &types.ExperienceCard{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Confidence: types.DefaultConfidence,
		CreatedAt:  createdAt,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("seed card: %v", err)
	}
	return card
}

// fakeGenerator substitutes the OpenAI client in suggestion tests.
type fakeGenerator struct {
	configured bool
	content    string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Configured() bool { return f.configured }
func (f *fakeGenerator) Model() string    { return "fake-model" }

func (f *fakeGenerator) GenerateJSON(_ context.Context, system string, user string) (openai.Completion, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return openai.Completion{}, f.err
	}
	return openai.Completion{
		Content: f.content,
		Usage:   openai.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}, nil
}

func newSuggestionFixture(t *testing.T, gen *fakeGenerator) (SuggestionService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	log := logger.NewNop()
	return NewSuggestionService(
		db,
		log,
		repos.NewUserProfileRepo(db, log),
		repos.NewExperienceCardRepo(db, log),
		repos.NewAICallLogRepo(db, log),
		gen,
	), db
}
