package generator

import "strings"

// genericKeywords 는 상품명 뒤에 붙는 기본 마케팅 어휘다.
var genericKeywords = []string{
	"熱銷", "推薦", "必買", "優惠", "限時",
	"現貨", "台灣", "高品質", "超值", "人氣",
	"好評", "首選", "精選", "熱賣", "免運",
	"特價", "新品", "暢銷", "實用",
}

// BuildKeywords 는 상품명, 후보, 기본 어휘 순서로 합쳐 처음 등장한 순서대로 중복을 제거하고
// limit 개로 자른다. 결과는 limit 을 넘지 않으며 더 적을 수 있다.
func BuildKeywords(productName string, candidates []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	pool := make([]string, 0, 1+len(candidates)+len(genericKeywords))
	pool = append(pool, productName)
	pool = append(pool, candidates...)
	pool = append(pool, genericKeywords...)

	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(pool))
	for _, kw := range pool {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
		if len(out) == limit {
			break
		}
	}
	return out
}

// dedupe 는 처음 등장한 순서를 유지한다.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
