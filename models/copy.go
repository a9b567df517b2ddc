package models

import (
	"fmt"
	"strings"
	"time"
)

// CopyKind tags what shape of marketing copy a record holds
type CopyKind string

const (
	KindTitle  CopyKind = "TITLE"
	KindIntro  CopyKind = "INTRO"
	KindSpec   CopyKind = "SPEC"
	KindAd     CopyKind = "AD"
	KindScript CopyKind = "SCRIPT"
)

// LengthTier is an approximate length class, never an exact character count
type LengthTier string

const (
	LengthShort  LengthTier = "SHORT"
	LengthMedium LengthTier = "MEDIUM"
	LengthLong   LengthTier = "LONG"
)

// ParseLengthTier accepts the tier name case-insensitively.
func ParseLengthTier(s string) (LengthTier, error) {
	switch LengthTier(strings.ToUpper(strings.TrimSpace(s))) {
	case LengthShort:
		return LengthShort, nil
	case LengthMedium:
		return LengthMedium, nil
	case LengthLong:
		return LengthLong, nil
	}
	return "", fmt.Errorf("unknown length tier %q", s)
}

func (t LengthTier) Valid() bool {
	_, err := ParseLengthTier(string(t))
	return err == nil
}

// Source records which provider produced a record
type Source string

const (
	SourceRemote   Source = "remote"
	SourceTemplate Source = "template"
)

// GenerationRequest holds the per-kind counts, tiers and flags of one batch
type GenerationRequest struct {
	TitleCount   int        `json:"title_count"`
	TitleLength  LengthTier `json:"title_length"`
	IntroCount   int        `json:"intro_count"`
	IntroLength  LengthTier `json:"intro_length"`
	GenerateSpec bool       `json:"generate_spec"`
	KeywordCount int        `json:"keyword_count"`
}

// DefaultGenerationRequest mirrors the dashboard defaults.
func DefaultGenerationRequest() GenerationRequest {
	return GenerationRequest{
		TitleCount:   3,
		TitleLength:  LengthLong,
		IntroCount:   3,
		IntroLength:  LengthMedium,
		GenerateSpec: true,
		KeywordCount: 10,
	}
}

// GeneratedCopy is one generated record. Created once, never mutated.
type GeneratedCopy struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id,omitempty"`
	Kind      CopyKind  `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Keywords  []string  `json:"keywords,omitempty"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerationResult is the output of one batch
type GenerationResult struct {
	Copies   []GeneratedCopy `json:"copies"`
	Keywords []string        `json:"keywords"`
}

// CountKind returns how many copies of the given kind the result holds.
func (r GenerationResult) CountKind(kind CopyKind) int {
	n := 0
	for _, c := range r.Copies {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
