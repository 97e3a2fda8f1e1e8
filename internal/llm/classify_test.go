package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"

	"boardpanel/internal/retry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retry.Class
	}{
		{"nil", nil, retry.ClassOther},
		{"api 429", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, retry.ClassRateLimited},
		{"wrapped api 429", fmt.Errorf("completion API error: %w", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}), retry.ClassRateLimited},
		{"api 500", &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}, retry.ClassOther},
		{"rate_limit marker", errors.New("rate_limit_exceeded for model"), retry.ClassRateLimited},
		{"rate limit marker", errors.New("Rate Limit reached, slow down"), retry.ClassRateLimited},
		{"429 in text", errors.New("upstream returned status 429"), retry.ClassRateLimited},
		{"auth failure", errors.New("invalid api key"), retry.ClassOther},
		{"timeout", errors.New("context deadline exceeded"), retry.ClassOther},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.want {
				t.Fatalf("Classify(%v): expected %v, got %v", test.err, test.want, got)
			}
		})
	}
}
