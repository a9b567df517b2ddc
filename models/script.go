package models

import (
	"fmt"
	"strings"
	"time"
)

type VideoStyle string

const (
	StyleSalesTalk      VideoStyle = "sales_talk"
	StyleProductDisplay VideoStyle = "product_display"
	StyleStoryTelling   VideoStyle = "story_telling"
)

func ParseVideoStyle(s string) (VideoStyle, error) {
	switch v := VideoStyle(strings.ToLower(strings.TrimSpace(s))); v {
	case StyleSalesTalk, StyleProductDisplay, StyleStoryTelling:
		return v, nil
	}
	return "", fmt.Errorf("unknown video style %q", s)
}

type Scene struct {
	SceneNumber int      `json:"scene_number"`
	Duration    int      `json:"duration"`
	Description string   `json:"description"`
	Voiceover   string   `json:"voiceover,omitempty"`
	CameraAngle string   `json:"camera_angle"`
	Props       []string `json:"props,omitempty"`
}

// VideoScript is a short-video shooting script
type VideoScript struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id,omitempty"`
	Style        VideoStyle `json:"style"`
	Duration     int        `json:"duration"`
	Script       string     `json:"script"`
	Scenes       []Scene    `json:"scenes"`
	Transitions  []string   `json:"transitions"`
	CameraAngles []string   `json:"camera_angles"`
	MusicStyle   string     `json:"music_style"`
	CTA          string     `json:"cta"`
	CreatedAt    time.Time  `json:"created_at"`
}
