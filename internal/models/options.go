package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LengthClass controls how verbose a summary should be.
type LengthClass string

const (
	LengthShort  LengthClass = "short"
	LengthMedium LengthClass = "medium"
	LengthLong   LengthClass = "long"
)

// SummaryOptions configures one Summary Generator call. It is passed by value
// and shared read-only across every file of a batch.
type SummaryOptions struct {
	LengthClass      LengthClass `json:"length" validate:"omitempty,oneof=short medium long"`
	TargetLanguage   string      `json:"target_language,omitempty" validate:"omitempty,min=2,max=8"`
	IncludeKeywords  bool        `json:"include_keywords"`
	IncludeSentiment bool        `json:"include_sentiment"`
}

// WithDefaults fills an empty length class with medium.
func (o SummaryOptions) WithDefaults() SummaryOptions {
	if o.LengthClass == "" {
		o.LengthClass = LengthMedium
	}
	return o
}

// Validate reports malformed options.
func (o SummaryOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid summary options: %w", err)
	}
	return nil
}

// WantsTranslation reports whether a translation was requested.
func (o SummaryOptions) WantsTranslation() bool {
	return o.TargetLanguage != ""
}
