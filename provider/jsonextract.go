package provider

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in reply")

// ExtractJSONObject 는 모델 응답 텍스트에서 첫 번째 '{' 부터 마지막 '}' 까지를
// 잘라 v 로 디코딩한다. 코드 블록이나 앞뒤 설명문이 붙어 있어도 동작한다.
// 실패하면 항상 KindParse 의 *GenerationError 를 반환한다.
func ExtractJSONObject(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return newError(KindParse, "extract_json", errNoJSONObject)
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return newError(KindParse, "extract_json", err)
	}
	return nil
}
