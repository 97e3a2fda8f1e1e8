package llm

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"boardpanel/internal/retry"
)

// Classify labels a completion failure for the retry controller. Only an
// explicit rate-limit signal - a 429 from the API or a rate-limit marker in
// the failure text - is considered transient.
func Classify(err error) retry.Class {
	if err == nil {
		return retry.ClassOther
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return retry.ClassRateLimited
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "rate_limit") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "429") {
		return retry.ClassRateLimited
	}

	return retry.ClassOther
}
