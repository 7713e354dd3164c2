package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaptinlin/jsonrepair"
	"gorm.io/gorm"

	"github.com/yungbote/placer-backend/internal/apierr"
	"github.com/yungbote/placer-backend/internal/clients/openai"
	"github.com/yungbote/placer-backend/internal/logger"
	"github.com/yungbote/placer-backend/internal/repos"
	"github.com/yungbote/placer-backend/internal/types"
)

// DefaultSuggestCount is used when the request omits or zeroes count.
const DefaultSuggestCount = 8

const suggestSystemPrompt = "You generate life experience cards based on a user's basic profile. " +
	"Return STRICT valid JSON array of objects with keys: title, description, rationale, confidence (0-1). " +
	"Experiences should be realistic day-to-day, education/career, social, and hobbies. " +
	"Keep titles short, descriptions concrete."

// Generator is the capability the suggestion flow needs from the model
// client; openai.Client satisfies it and tests substitute fakes.
type Generator interface {
	Configured() bool
	Model() string
	GenerateJSON(ctx context.Context, system string, user string) (openai.Completion, error)
}

type SuggestionService interface {
	// Suggest produces up to count new cards for the user, de-duplicated
	// case-insensitively against every card previously generated for them.
	Suggest(ctx context.Context, userID uuid.UUID, count int) ([]*types.ExperienceCard, error)
}

type suggestionService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.UserProfileRepo
	cardRepo    repos.ExperienceCardRepo
	callLogRepo repos.AICallLogRepo
	generator   Generator
}

func NewSuggestionService(
	db *gorm.DB,
	log *logger.Logger,
	profileRepo repos.UserProfileRepo,
	cardRepo repos.ExperienceCardRepo,
	callLogRepo repos.AICallLogRepo,
	generator Generator,
) SuggestionService {
	serviceLog := log.With("service", "SuggestionService")
	return &suggestionService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		cardRepo:    cardRepo,
		callLogRepo: callLogRepo,
		generator:   generator,
	}
}

// generationProfile is the profile summary sent to the model.
type generationProfile struct {
	FirstName     string   `json:"first_name"`
	Education     string   `json:"education,omitempty"`
	Location      string   `json:"location,omitempty"`
	Age           *int     `json:"age,omitempty"`
	IncomeBracket string   `json:"income_bracket,omitempty"`
	Interests     []string `json:"interests"`
	Ethnicity     string   `json:"ethnicity,omitempty"`
	Count         int      `json:"count"`
	AvoidTitles   []string `json:"avoid_titles"`
}

func (s *suggestionService) Suggest(ctx context.Context, userID uuid.UUID, count int) ([]*types.ExperienceCard, error) {
	if count <= 0 {
		count = DefaultSuggestCount
	}

	if !s.generator.Configured() {
		return nil, apierr.New(http.StatusInternalServerError, "openai_not_configured",
			errors.New("OpenAI key not configured. Set OPENAI_API_KEY and restart the backend"))
	}

	profile, err := s.profileRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apierr.New(http.StatusNotFound, "user_not_found", fmt.Errorf("user %s not found", userID))
	}

	existing, err := s.cardRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	seenTitles := make(map[string]struct{}, len(existing))
	avoidTitles := make([]string, 0, len(existing))
	for _, card := range existing {
		norm := normalizeTitle(card.Title)
		if norm == "" {
			continue
		}
		if _, ok := seenTitles[norm]; ok {
			continue
		}
		seenTitles[norm] = struct{}{}
		avoidTitles = append(avoidTitles, norm)
	}

	userPrompt, err := s.buildUserPrompt(profile, count, avoidTitles)
	if err != nil {
		return nil, err
	}

	completion, genErr := s.generator.GenerateJSON(ctx, suggestSystemPrompt, userPrompt)
	if genErr != nil {
		s.log.Error("OpenAI suggestion call failed", "user_id", userID, "error", genErr)
		s.recordCall(ctx, userID, userPrompt, completion, false, genErr.Error())
		return nil, apierr.New(http.StatusInternalServerError, "suggestion_failed",
			fmt.Errorf("suggestion generation failed: %w", genErr))
	}

	candidates, parseErr := parseCandidates(completion.Content)
	if parseErr != nil {
		s.log.Error("OpenAI suggestion output unusable", "user_id", userID, "error", parseErr)
		s.recordCall(ctx, userID, userPrompt, completion, false, parseErr.Error())
		return nil, apierr.New(http.StatusInternalServerError, "suggestion_failed",
			fmt.Errorf("suggestion generation failed: %w", parseErr))
	}

	now := time.Now().UTC()
	cards := make([]*types.ExperienceCard, 0, len(candidates))
	for _, cand := range candidates {
		title := strings.TrimSpace(cand.Title)
		norm := strings.ToLower(title)
		if norm == "" {
			continue
		}
		if _, dup := seenTitles[norm]; dup {
			continue
		}
		seenTitles[norm] = struct{}{}

		cards = append(cards, &types.ExperienceCard{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       title,
			Description: cand.Description,
			Rationale:   cand.Rationale,
			Confidence:  clampConfidence(cand.Confidence),
			CreatedAt:   now,
		})
	}

	// The batch insert happens only after the full candidate list is built;
	// a generation or parse failure persists nothing.
	if _, err := s.cardRepo.CreateBatch(ctx, nil, cards); err != nil {
		s.log.Error("Persisting suggested cards failed", "user_id", userID, "count", len(cards), "error", err)
		return nil, err
	}

	s.recordCall(ctx, userID, userPrompt, completion, true, "")
	s.log.Info("Suggested cards generated",
		"user_id", userID,
		"requested", count,
		"candidates", len(candidates),
		"accepted", len(cards),
	)
	return cards, nil
}

func (s *suggestionService) buildUserPrompt(profile *types.UserProfile, count int, avoidTitles []string) (string, error) {
	var interests []string
	if len(profile.Interests) > 0 {
		if err := json.Unmarshal(profile.Interests, &interests); err != nil {
			return "", fmt.Errorf("decode stored interests: %w", err)
		}
	}
	if interests == nil {
		interests = []string{}
	}
	if avoidTitles == nil {
		avoidTitles = []string{}
	}

	summary, err := json.Marshal(generationProfile{
		FirstName:     profile.FirstName,
		Education:     profile.Education,
		Location:      profile.WhereYouLive,
		Age:           profile.Age,
		IncomeBracket: profile.IncomeBracket,
		Interests:     interests,
		Ethnicity:     profile.Ethnicity,
		Count:         count,
		AvoidTitles:   avoidTitles,
	})
	if err != nil {
		return "", fmt.Errorf("encode profile summary: %w", err)
	}

	return fmt.Sprintf("Profile JSON:\n%s\nReturn JSON array only. Avoid rephrasing or repeating any items whose lowercased titles appear in avoid_titles.", summary), nil
}

// recordCall writes the audit row for a model call. Best effort: a failed
// write is logged and never fails the request it describes.
func (s *suggestionService) recordCall(ctx context.Context, userID uuid.UUID, prompt string, completion openai.Completion, success bool, errMsg string) {
	usageJSON, err := json.Marshal(completion.Usage)
	if err != nil {
		usageJSON = nil
	}
	entry := &types.AICallLog{
		ID:        uuid.New(),
		UserID:    &userID,
		CallType:  "placer_suggest",
		Model:     s.generator.Model(),
		Prompt:    prompt,
		Response:  completion.Content,
		Success:   success,
		Error:     errMsg,
		Usage:     usageJSON,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.callLogRepo.Create(ctx, nil, []*types.AICallLog{entry}); err != nil {
		s.log.Warn("AI call log write failed", "user_id", userID, "error", err)
	}
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func clampConfidence(confidence *float64) float64 {
	if confidence == nil {
		return types.DefaultConfidence
	}
	switch {
	case *confidence < 0:
		return 0
	case *confidence > 1:
		return 1
	default:
		return *confidence
	}
}

// candidate is one card object as the model emits it.
type candidate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale"`
	Confidence  *float64 `json:"confidence"`
}

// candidateKeys are the object keys the parser accepts, in probe order.
var candidateKeys = []string{"items", "experiences"}

// parseCandidates extracts the candidate list from the model output.
// Accepted shapes, and nothing else: a top-level JSON array, or a JSON
// object with the array under "items" or "experiences". Output that is not
// valid JSON gets one repair pass before the single failure path.
func parseCandidates(raw string) ([]candidate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("model returned empty output")
	}

	doc := []byte(trimmed)
	if !json.Valid(doc) {
		repaired, err := jsonrepair.JSONRepair(trimmed)
		if err != nil {
			return nil, fmt.Errorf("model output is not valid JSON: %w", err)
		}
		doc = []byte(repaired)
	}

	var list []candidate
	if err := json.Unmarshal(doc, &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, fmt.Errorf("model output is neither an array nor an object: %w", err)
	}
	for _, key := range candidateKeys {
		rawList, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(rawList, &list); err != nil {
			return nil, fmt.Errorf("model output key %q is not an array of cards: %w", key, err)
		}
		return list, nil
	}

	return nil, fmt.Errorf("model output has no recognizable items array (accepted: top-level array, %s)", strings.Join(candidateKeys, ", "))
}
