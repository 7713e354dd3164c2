package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/placer-backend/internal/services"
	"github.com/yungbote/placer-backend/internal/types"
)

type PlacerHandler struct {
	profileService    services.ProfileService
	suggestionService services.SuggestionService
	cardService       services.CardService
	swipeService      services.SwipeService
}

func NewPlacerHandler(
	profileService services.ProfileService,
	suggestionService services.SuggestionService,
	cardService services.CardService,
	swipeService services.SwipeService,
) *PlacerHandler {
	return &PlacerHandler{
		profileService:    profileService,
		suggestionService: suggestionService,
		cardService:       cardService,
		swipeService:      swipeService,
	}
}

// POST /api/placer/signup
func (ph *PlacerHandler) Signup(c *gin.Context) {
	var req struct {
		FirstName       string   `json:"first_name" binding:"required"`
		OtherGivenNames string   `json:"other_given_names"`
		LastName        string   `json:"last_name" binding:"required"`
		Email           string   `json:"email" binding:"required,email"`
		PhoneNumber     string   `json:"phone_number"`
		Education       string   `json:"education"`
		WhereYouLive    string   `json:"where_you_live"`
		Age             *int     `json:"age"`
		IncomeBracket   string   `json:"income_bracket"`
		Interests       []string `json:"interests"`
		Ethnicity       string   `json:"ethnicity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	profile, err := ph.profileService.Signup(c.Request.Context(), services.SignupInput{
		FirstName:       req.FirstName,
		OtherGivenNames: req.OtherGivenNames,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Education:       req.Education,
		WhereYouLive:    req.WhereYouLive,
		Age:             req.Age,
		IncomeBracket:   req.IncomeBracket,
		Ethnicity:       req.Ethnicity,
		Interests:       req.Interests,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

// POST /api/placer/suggest
func (ph *PlacerHandler) Suggest(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Count  int    `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	// An id that is not a UUID cannot resolve to a stored profile.
	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		RespondError(c, http.StatusNotFound, "user_not_found", fmt.Errorf("user %q not found", req.UserID))
		return
	}

	cards, err := ph.suggestionService.Suggest(c.Request.Context(), userID, req.Count)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cards)
}

// GET /api/placer/cards?user_id=...&limit=...
func (ph *PlacerHandler) Cards(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Query("user_id")))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("user_id must be a UUID"))
		return
	}

	limit := services.DefaultFeedLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("limit must be a non-negative integer"))
			return
		}
	}

	cards, err := ph.cardService.Feed(c.Request.Context(), userID, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cards)
}

// POST /api/placer/swipe
func (ph *PlacerHandler) Swipe(c *gin.Context) {
	var req struct {
		UserID    string `json:"user_id" binding:"required"`
		CardID    string `json:"card_id" binding:"required"`
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	// The direction check comes first so a bad direction is always a 400,
	// even when the ids are garbage too.
	if !types.ValidSwipeDirection(req.Direction) {
		RespondError(c, http.StatusBadRequest, "invalid_direction", fmt.Errorf("invalid swipe direction %q", req.Direction))
		return
	}

	userID, uErr := uuid.Parse(strings.TrimSpace(req.UserID))
	cardID, cErr := uuid.Parse(strings.TrimSpace(req.CardID))
	if uErr != nil || cErr != nil {
		RespondError(c, http.StatusNotFound, "card_not_found", fmt.Errorf("card not found for this user"))
		return
	}

	swipe, err := ph.swipeService.Record(c.Request.Context(), userID, cardID, req.Direction)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, swipe)
}

// GET /api/placer/options
func (ph *PlacerHandler) Options(c *gin.Context) {
	RespondOK(c, gin.H{
		"income_brackets":   types.IncomeBrackets,
		"education_levels":  types.EducationLevels,
		"ethnicity_options": types.EthnicityOptions,
	})
}
