package models

type AudienceSize string

const (
	AudienceSmall  AudienceSize = "small"
	AudienceMedium AudienceSize = "medium"
	AudienceLarge  AudienceSize = "large"
)

// SuggestedAudience is a single audience segment; RelevanceScore is within [0,100]
type SuggestedAudience struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Size               AudienceSize `json:"size"`
	RelevanceScore     int          `json:"relevance_score"`
	SuggestedPlatforms []string     `json:"suggested_platforms"`
}

type Demographics struct {
	AgeRange  []string `json:"age_range"`
	Gender    []string `json:"gender"`
	Interests []string `json:"interests"`
	Behaviors []string `json:"behaviors"`
}

// AudienceAnalysis is the target-audience report for a product
type AudienceAnalysis struct {
	ProductName        string              `json:"product_name"`
	SuggestedAudiences []SuggestedAudience `json:"suggested_audiences"`
	Demographics       Demographics        `json:"demographics"`
	Keywords           []string            `json:"keywords"`
	TargetMarkets      []string            `json:"target_markets"`
}
