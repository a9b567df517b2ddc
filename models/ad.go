package models

import "time"

// AdCreative is a single social ad creative (headline / primary text / description)
type AdCreative struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id,omitempty"`
	Headline     string    `json:"headline"`
	PrimaryText  string    `json:"primary_text"`
	Description  string    `json:"description"`
	CallToAction string    `json:"call_to_action"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdValidation lists the format rules an ad breaks
type AdValidation struct {
	AdID   string   `json:"ad_id"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
