package provider

import (
	"strings"

	"ai-marketing/models"
)

// Script 은 스타일별 촬영 스크립트 템플릿을 상품명으로 채운다.
// ID, 길이, 생성 시각은 호출자가 채운다.
func (t *TemplateProvider) Script(product models.ProductInfo, style models.VideoStyle) models.VideoScript {
	name := product.Name
	fill := func(s string) string { return strings.ReplaceAll(s, "{name}", name) }

	var s models.VideoScript
	switch style {
	case models.StyleProductDisplay:
		s = models.VideoScript{
			Script: "{name} 360 度展示，配合文字說明",
			Scenes: []models.Scene{
				{SceneNumber: 1, Duration: 3, Description: "產品正面特寫", CameraAngle: "正面特寫", Props: []string{"{name}"}},
				{SceneNumber: 2, Duration: 3, Description: "360 度旋轉展示", CameraAngle: "環繞拍攝", Props: []string{"{name}"}},
				{SceneNumber: 3, Duration: 3, Description: "細節展示", CameraAngle: "微距特寫", Props: []string{"{name}細節"}},
				{SceneNumber: 4, Duration: 3, Description: "包裝展示", CameraAngle: "俯視", Props: []string{"產品包裝"}},
				{SceneNumber: 5, Duration: 3, Description: "CTA 畫面", CameraAngle: "正面", Props: []string{"產品 + 文字"}},
			},
			Transitions:  []string{"溶接", "推拉", "旋轉", "縮放", "淡出"},
			CameraAngles: []string{"正面特寫", "環繞", "微距", "俯視", "正面"},
			MusicStyle:   "優雅的器樂背景音樂",
			CTA:          "立即選購",
		}
	case models.StyleStoryTelling:
		s = models.VideoScript{
			Script: "用故事呈現{name}如何改善生活",
			Scenes: []models.Scene{
				{SceneNumber: 1, Duration: 3, Description: "問題場景 - 生活困擾", Voiceover: "生活中總有些小麻煩？", CameraAngle: "主觀視角", Props: []string{"場景道具"}},
				{SceneNumber: 2, Duration: 3, Description: "解決方案出現", Voiceover: "有了{name}，問題迎刃而解", CameraAngle: "產品特寫", Props: []string{"{name}"}},
				{SceneNumber: 3, Duration: 4, Description: "使用情境 - 美好時光", Voiceover: "輕鬆享受每個美好瞬間", CameraAngle: "情境全景", Props: []string{"人物", "{name}", "場景"}},
				{SceneNumber: 4, Duration: 3, Description: "成果展示", Voiceover: "更好的生活，從現在開始", CameraAngle: "成果特寫", Props: []string{"使用成果"}},
				{SceneNumber: 5, Duration: 2, Description: "CTA", Voiceover: "現在就把{name}帶回家", CameraAngle: "產品 + 文字", Props: []string{"產品", "CTA 文字"}},
			},
			Transitions:  []string{"淡入", "溶接", "快切", "慢動作", "淡出"},
			CameraAngles: []string{"主觀視角", "特寫", "全景", "成果特寫", "產品特寫"},
			MusicStyle:   "溫暖感人的配樂",
			CTA:          "限時優惠，立即擁有",
		}
	default:
		s = models.VideoScript{
			Script: "嗨大家好！今天要來介紹這個超好用的{name}...",
			Scenes: []models.Scene{
				{SceneNumber: 1, Duration: 3, Description: "開場畫面 - 主持人手持產品", Voiceover: "嗨大家好！今天要來介紹這個超好用的{name}", CameraAngle: "正面中景", Props: []string{"{name}"}},
				{SceneNumber: 2, Duration: 4, Description: "功能展示", Voiceover: "看看它的細節，超方便的！", CameraAngle: "特寫", Props: []string{"{name}"}},
				{SceneNumber: 3, Duration: 4, Description: "使用情境示範", Voiceover: "日常使用輕鬆上手", CameraAngle: "側面全景", Props: []string{"{name}"}},
				{SceneNumber: 4, Duration: 4, Description: "結尾 CTA", Voiceover: "限時優惠中！點擊連結立即購買", CameraAngle: "正面特寫", Props: []string{"產品包裝"}},
			},
			Transitions:  []string{"淡入", "快切", "推進", "淡出"},
			CameraAngles: []string{"正面中景", "特寫", "側面全景", "正面特寫"},
			MusicStyle:   "輕快活潑的背景音樂",
			CTA:          "立即購買，享限時折扣！",
		}
		style = models.StyleSalesTalk
	}

	s.Style = style
	s.Script = fill(s.Script)
	for i := range s.Scenes {
		s.Scenes[i].Voiceover = fill(s.Scenes[i].Voiceover)
		for j := range s.Scenes[i].Props {
			s.Scenes[i].Props[j] = fill(s.Scenes[i].Props[j])
		}
	}
	return s
}
