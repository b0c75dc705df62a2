package domain

import (
	"fmt"
	"strings"

	sharederrors "github.com/reshetovitsme/telegram-notifier/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	FieldBotToken         = "BotToken"
	FieldChatID           = "ChatId"
	FieldTopicID          = "TopicId"
	FieldMetadataLinkType = "MetadataLinkType"
	FieldConnection       = "Connection"
)

// ValidationFailure is a single field-level problem
type ValidationFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewFailure(field, message string) *ValidationFailure {
	return &ValidationFailure{Field: field, Message: message}
}

func (f ValidationFailure) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationResult is an ordered list of failures. No failures means valid.
type ValidationResult struct {
	Failures []ValidationFailure `json:"failures"`
}

// NewValidationResult collects the non-nil failures in order.
func NewValidationResult(failures ...*ValidationFailure) ValidationResult {
	res := ValidationResult{Failures: []ValidationFailure{}}
	for _, f := range failures {
		res.Add(f)
	}
	return res
}

// Add appends f unless it is nil.
func (r *ValidationResult) Add(f *ValidationFailure) {
	if f == nil {
		return
	}
	r.Failures = append(r.Failures, *f)
}

func (r ValidationResult) IsValid() bool {
	return len(r.Failures) == 0
}

// HasField reports whether any failure targets field.
func (r ValidationResult) HasField(field string) bool {
	return lo.ContainsBy(r.Failures, func(f ValidationFailure) bool {
		return f.Field == field
	})
}

func (r ValidationResult) Strings() []string {
	return lo.Map(r.Failures, func(f ValidationFailure, _ int) string {
		return f.String()
	})
}

// Err returns nil for a valid result, otherwise an error wrapping ErrInvalidSettings.
func (r ValidationResult) Err() error {
	if r.IsValid() {
		return nil
	}
	return oops.
		With("failures", r.Strings()).
		Wrapf(sharederrors.ErrInvalidSettings, "%s", strings.Join(r.Strings(), "; "))
}

// Validate checks the fields required before a notifier may use s.
func Validate(s *Settings) ValidationResult {
	res := NewValidationResult()

	if s.BotToken == "" {
		res.Add(NewFailure(FieldBotToken, "must not be empty"))
	}
	if s.ChatID == "" {
		res.Add(NewFailure(FieldChatID, "must not be empty"))
	}
	if s.TopicID != nil && *s.TopicID <= 1 {
		res.Add(NewFailure(FieldTopicID, "Topic ID must be greater than 1 or empty"))
	}

	return res
}

// ValidateStored runs Validate and additionally rejects link types that
// did not come from the closed enum, which can only happen for decoded input.
// An empty link type is accepted while links are disabled.
func ValidateStored(s *Settings) ValidationResult {
	res := Validate(s)
	if (s.SendMetadataLink || s.MetadataLinkType != "") && !s.MetadataLinkType.IsValid() {
		res.Add(NewFailure(FieldMetadataLinkType, ErrInvalidMetadataLinkType.Error()))
	}
	return res
}
