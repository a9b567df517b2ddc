package provider

import (
	"fmt"
	"strings"

	"ai-marketing/models"
)

const COPY_SYSTEM_INSTRUCTION = `你是專業的電商文案撰寫專家。
回覆必須是單一 JSON 物件，不要使用 markdown 程式碼區塊，也不要附加任何說明文字。`

const URL_EXTRACTION_SYSTEM_INSTRUCTION = `你是一位專業的商品資訊分析專家，擅長從網頁內容中提取結構化的商品資訊。
回覆必須是單一 JSON 物件。`

const AUDIENCE_SYSTEM_INSTRUCTION = `你是專業的市場分析專家。
回覆必須是單一 JSON 物件。`

const copyReplyShape = `
回傳 JSON 格式：
{
  "title": "標題",
  "content": "內容",
  "keywords": ["關鍵字1", "關鍵字2"]
}`

var stylePrompts = map[Style]string{
	StyleSEO: `請為以下商品撰寫 SEO 優化版文案：

商品名稱：%s
商品描述：%s

要求：
1. 標題要包含主要關鍵字，60字以內
2. 內容要自然融入關鍵字，150-200字
3. 提供 5-8 個相關關鍵字`,
	StyleEcommerce: `請為以下商品撰寫電商銷售版文案：

商品名稱：%s
商品描述：%s

要求：
1. 標題要吸引人，強調優惠或特色
2. 內容要包含：特色列表、優惠資訊、CTA
3. 使用 emoji 增加吸引力`,
	StyleEmotional: `請為以下商品撰寫感性故事版文案：

商品名稱：%s
商品描述：%s

要求：
1. 用故事化的方式呈現
2. 創造情感共鳴
3. 避免過度推銷`,
	StyleShortTitle: `請為以下商品撰寫簡短標題：

商品名稱：%s
商品描述：%s

要求：
1. 標題 20-30 字
2. 簡潔有力
3. 包含核心賣點
4. content 為一句話描述`,
	StyleMarketplaceSpec: `請為以下商品撰寫蝦皮格式文案：

商品名稱：%s
商品描述：%s

要求：
1. 標題 60 字以內，包含規格
2. 內容要包含：完整規格、賣點列表
3. 使用蝦皮常見格式（✓ 符號、分段清楚）`,
}

// tierHint 는 길이 등급별 대략적인 글자 수다. 정확한 상한이 아니다.
func tierHint(kind models.CopyKind, tier models.LengthTier) string {
	if kind == models.KindTitle {
		if tier == models.LengthLong {
			return "標題約 60 字"
		}
		return "標題約 30 字"
	}
	switch tier {
	case models.LengthShort:
		return "內容約 100 字"
	case models.LengthLong:
		return "內容約 300 字"
	}
	return "內容約 200 字"
}

func buildCopyPrompt(req CopyRequest) string {
	tmpl, ok := stylePrompts[req.style()]
	if !ok {
		tmpl = stylePrompts[StyleEcommerce]
	}

	var b strings.Builder
	fmt.Fprintf(&b, tmpl, req.Product.Name, req.Product.Description)
	if extra := productDetails(req.Product); extra != "" {
		b.WriteString("\n\n補充資訊：\n")
		b.WriteString(extra)
	}
	fmt.Fprintf(&b, "\n\n長度：%s\n這是第 %d 個版本，請與其他版本做出區隔。\n", tierHint(req.Kind, req.Length), req.Index+1)
	b.WriteString(copyReplyShape)
	return b.String()
}

func productDetails(p models.ProductInfo) string {
	var lines []string
	if p.Category != "" {
		lines = append(lines, "分類："+p.Category)
	}
	if p.Price > 0 {
		lines = append(lines, fmt.Sprintf("價格：%.0f", p.Price))
	}
	if p.Attributes != nil {
		if len(p.Attributes.Color) > 0 {
			lines = append(lines, "顏色："+strings.Join(p.Attributes.Color, "、"))
		}
		if len(p.Attributes.Size) > 0 {
			lines = append(lines, "尺寸："+strings.Join(p.Attributes.Size, "、"))
		}
		if p.Attributes.Material != "" {
			lines = append(lines, "材質："+p.Attributes.Material)
		}
		if len(p.Attributes.Usage) > 0 {
			lines = append(lines, "用途："+strings.Join(p.Attributes.Usage, "、"))
		}
	}
	return strings.Join(lines, "\n")
}

func buildURLExtractionPrompt(pageText string) string {
	return fmt.Sprintf(`請分析以下網頁內容，提取商品資訊，並以 JSON 格式回傳：

網頁內容：
%s

請回傳格式：
{
  "name": "商品名稱",
  "description": "商品簡短描述",
  "category": "商品分類",
  "price": 價格數字（如果有的話）,
  "attributes": {
    "color": ["顏色1", "顏色2"],
    "size": ["尺寸1"],
    "material": "材質",
    "usage": ["用途1", "用途2"]
  }
}

只需回傳 JSON，不要其他說明文字。`, pageText)
}

func buildAudiencePrompt(name, description string) string {
	return fmt.Sprintf(`請分析以下商品的目標受眾：

商品名稱：%[1]s
商品描述：%[2]s

請提供詳細的受眾分析，包含：
1. 3-5 個建議受眾群體（名稱、描述、市場規模、相關性分數 0-100、建議平台）
2. 人口統計資訊（年齡範圍、性別分布、興趣、行為特徵）
3. 關鍵字建議
4. 目標市場

回傳 JSON 格式：
{
  "productName": "%[1]s",
  "suggestedAudiences": [
    {
      "name": "受眾名稱",
      "description": "描述",
      "size": "small/medium/large",
      "relevanceScore": 95,
      "suggestedPlatforms": ["instagram", "facebook"]
    }
  ],
  "demographics": {
    "ageRange": ["18-24", "25-34"],
    "gender": ["女性 60%%", "男性 40%%"],
    "interests": ["興趣1", "興趣2"],
    "behaviors": ["行為1", "行為2"]
  },
  "keywords": ["關鍵字1", "關鍵字2"],
  "targetMarkets": ["台灣", "香港"]
}`, name, description)
}
