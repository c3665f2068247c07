package config

import "testing"

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"active categories", CacheKey.ActiveCategories(), "categories:active"},
		{"active quizzes", CacheKey.ActiveQuizzes(), "quizzes:active"},
		{"quiz detail admin", CacheKey.QuizDetail(7, true), "quiz:7:admin"},
		{"quiz detail public", CacheKey.QuizDetail(7, false), "quiz:7:public"},
		{"user profile", CacheKey.UserProfile(3), "user:3:profile"},
		{"user submissions", CacheKey.UserSubmissions(3), "user:3:submissions"},
		{"quiz stats", CacheKey.QuizStats(7), "quiz:7:stats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestQuizKeysCoverAllVariants(t *testing.T) {
	keys := CacheKey.QuizKeys(5)

	want := map[string]bool{
		"quizzes:active": false,
		"quiz:5:admin":   false,
		"quiz:5:public":  false,
		"quiz:5:stats":   false,
	}
	for _, k := range keys {
		if _, ok := want[k]; !ok {
			t.Errorf("unexpected key %q", k)
			continue
		}
		want[k] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing key %q", k)
		}
	}
}
