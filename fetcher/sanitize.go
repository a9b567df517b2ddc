package fetcher

import (
	"regexp"
	"strings"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	styleBlock  = regexp.MustCompile(`(?is)<style\b.*?</style\s*>`)
	anyTag      = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Sanitize 는 script/style 블록과 태그를 제거하고 공백을 접은 뒤
// 앞에서부터 maxChars 글자(rune)만 남긴다.
func Sanitize(raw string, maxChars int) string {
	s := scriptBlock.ReplaceAllString(raw, " ")
	s = styleBlock.ReplaceAllString(s, " ")
	s = anyTag.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if maxChars > 0 {
		runes := []rune(s)
		if len(runes) > maxChars {
			s = string(runes[:maxChars])
		}
	}
	return s
}
