package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/placer-backend/internal/services"
	"github.com/yungbote/placer-backend/internal/types"
)

type fakeProfileService struct {
	profile   *types.UserProfile
	err       error
	lastInput services.SignupInput
	calls     int
}

func (f *fakeProfileService) Signup(ctx context.Context, input services.SignupInput) (*types.UserProfile, error) {
	f.calls++
	f.lastInput = input
	return f.profile, f.err
}

type fakeSuggestionService struct {
	cards      []*types.ExperienceCard
	err        error
	lastUserID uuid.UUID
	lastCount  int
	calls      int
}

func (f *fakeSuggestionService) Suggest(ctx context.Context, userID uuid.UUID, count int) ([]*types.ExperienceCard, error) {
	f.calls++
	f.lastUserID = userID
	f.lastCount = count
	return f.cards, f.err
}

type fakeCardService struct {
	cards      []*types.ExperienceCard
	err        error
	lastUserID uuid.UUID
	lastLimit  int
	calls      int
}

func (f *fakeCardService) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ExperienceCard, error) {
	f.calls++
	f.lastUserID = userID
	f.lastLimit = limit
	return f.cards, f.err
}

type fakeSwipeService struct {
	swipe         *types.SwipeRecord
	err           error
	lastUserID    uuid.UUID
	lastCardID    uuid.UUID
	lastDirection string
	calls         int
}

func (f *fakeSwipeService) Record(ctx context.Context, userID, cardID uuid.UUID, direction string) (*types.SwipeRecord, error) {
	f.calls++
	f.lastUserID = userID
	f.lastCardID = cardID
	f.lastDirection = direction
	return f.swipe, f.err
}

type fakeStatusService struct {
	check  *types.StatusCheck
	checks []*types.StatusCheck
	err    error
}

func (f *fakeStatusService) Create(ctx context.Context, clientName string) (*types.StatusCheck, error) {
	return f.check, f.err
}

func (f *fakeStatusService) List(ctx context.Context) ([]*types.StatusCheck, error) {
	return f.checks, f.err
}

type handlerFixture struct {
	profiles    *fakeProfileService
	suggestions *fakeSuggestionService
	cards       *fakeCardService
	swipes      *fakeSwipeService
	router      *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		profiles:    &fakeProfileService{},
		suggestions: &fakeSuggestionService{},
		cards:       &fakeCardService{},
		swipes:      &fakeSwipeService{},
	}
	ph := NewPlacerHandler(f.profiles, f.suggestions, f.cards, f.swipes)

	r := gin.New()
	r.POST("/api/placer/signup", ph.Signup)
	r.POST("/api/placer/suggest", ph.Suggest)
	r.GET("/api/placer/cards", ph.Cards)
	r.POST("/api/placer/swipe", ph.Swipe)
	r.GET("/api/placer/options", ph.Options)
	f.router = r
	return f
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v (body=%s)", err, rec.Body.String())
	}
	return env
}
