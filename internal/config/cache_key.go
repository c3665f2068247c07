package config

import (
	"fmt"
	"time"
)

// Cache TTLs per resource. List/detail reads tolerate short staleness;
// statistics are expensive and cached longest.
const (
	CategoryListTTL    = 10 * time.Minute
	QuizListTTL        = 5 * time.Minute
	QuizDetailTTL      = 5 * time.Minute
	UserProfileTTL     = 5 * time.Minute
	UserSubmissionsTTL = 5 * time.Minute
	QuizStatsTTL       = time.Hour
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ActiveCategories returns the cache key for the non-admin category list.
func (r *CacheKeyStruct) ActiveCategories() string {
	return "categories:active"
}

// ActiveQuizzes returns the cache key for the non-admin quiz list.
func (r *CacheKeyStruct) ActiveQuizzes() string {
	return "quizzes:active"
}

// QuizDetail returns the cache key for one quiz detail, per role variant.
// Admin and public projections differ, so they cache under separate keys.
func (r *CacheKeyStruct) QuizDetail(quizID int64, admin bool) string {
	if admin {
		return fmt.Sprintf("quiz:%d:admin", quizID)
	}
	return fmt.Sprintf("quiz:%d:public", quizID)
}

// UserProfile returns the cache key for a user's profile.
func (r *CacheKeyStruct) UserProfile(userID int64) string {
	return fmt.Sprintf("user:%d:profile", userID)
}

// UserSubmissions returns the cache key for a user's submission list.
func (r *CacheKeyStruct) UserSubmissions(userID int64) string {
	return fmt.Sprintf("user:%d:submissions", userID)
}

// QuizStats returns the cache key for a quiz's aggregated statistics.
func (r *CacheKeyStruct) QuizStats(quizID int64) string {
	return fmt.Sprintf("quiz:%d:stats", quizID)
}

// QuizKeys returns every key whose scope overlaps the given quiz.
// Used to invalidate after quiz or question mutations.
func (r *CacheKeyStruct) QuizKeys(quizID int64) []string {
	return []string{
		r.ActiveQuizzes(),
		r.QuizDetail(quizID, true),
		r.QuizDetail(quizID, false),
		r.QuizStats(quizID),
	}
}

var CacheKey = NewCacheKeyStruct()
