package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SwipeAction is the user's verdict on a suggestion.
type SwipeAction string

const (
	SwipeActionLike    SwipeAction = "like"
	SwipeActionDislike SwipeAction = "dislike"
)

func (a SwipeAction) String() string { return string(a) }

func (a SwipeAction) IsValid() bool {
	return a == SwipeActionLike || a == SwipeActionDislike
}

// SwipeRecord is an append-only feedback entry. PostID stays nil for AI
// suggestions; SuggestionID and ContentSnapshot outlive the suggestion row.
type SwipeRecord struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PostID          *uuid.UUID
	SuggestionID    *uuid.UUID
	ContentSnapshot *string
	Action          SwipeAction
	CreatedAt       time.Time
}

// SwipeStats is derived from a list of swipe records.
type SwipeStats struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
	Total    int `json:"total"`
	LikeRate int `json:"likeRate"`
}

// CalculateSwipeStats counts likes and dislikes and derives the rounded like
// percentage. The result does not depend on record order.
func CalculateSwipeStats(records []*SwipeRecord) SwipeStats {
	var st SwipeStats
	for _, r := range records {
		if r == nil {
			continue
		}
		switch r.Action {
		case SwipeActionLike:
			st.Likes++
		case SwipeActionDislike:
			st.Dislikes++
		}
	}
	st.Total = st.Likes + st.Dislikes
	st.LikeRate = percent(st.Likes, st.Total)
	return st
}

// CaptureRate is the share of shown suggestions that were swiped, in percent.
func CaptureRate(swiped, shown int) int {
	return percent(swiped, shown)
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
