package models

import (
	"fmt"
	"strings"
)

// Platform is a target marketplace or channel tag
type Platform string

const (
	PlatformShopee    Platform = "shopee"
	PlatformMomo      Platform = "momo"
	PlatformPChome    Platform = "pchome"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

var Platforms = []Platform{PlatformShopee, PlatformMomo, PlatformPChome, PlatformFacebook, PlatformInstagram}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlatformContent is a read-only, platform-shaped view of a GeneratedCopy
type PlatformContent struct {
	Platform       Platform  `json:"platform"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Specifications []string  `json:"specifications,omitempty"`
	SellingPoints  []string  `json:"selling_points,omitempty"`
	Images         []string  `json:"images,omitempty"`
	ImageSize      ImageSize `json:"image_size"`
}
