package moderation

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Moderator sanitizes user supplied text before it is stored.
//
//go:generate mockery --name=Moderator --dir=. --output=./mocks --filename=moderator_mock.go --case=underscore --with-expecter
type Moderator interface {
	// Check returns the censored form of text, or one of the error kinds
	// declared in errors.go.
	Check(ctx context.Context, text string) (string, error)
}

type Config struct {
	BaseURL         string
	APIKey          string
	CensorCharacter string
}

// Validate reports ErrModerationNotConfigured when the endpoint or the
// credential is missing or the endpoint does not parse.
func (c Config) Validate() error {
	if c.BaseURL == "" || c.APIKey == "" {
		return ErrModerationNotConfigured
	}
	if _, err := url.ParseRequestURI(c.endpoint()); err != nil {
		return fmt.Errorf("%w: invalid base url: %v", ErrModerationNotConfigured, err)
	}
	return nil
}

func (c Config) endpoint() string {
	censor := c.CensorCharacter
	if censor == "" {
		censor = defaultCensorCharacter
	}
	return strings.TrimRight(c.BaseURL, "/") + badWordsPath + "?censor_character=" + url.QueryEscape(censor)
}
