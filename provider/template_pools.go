package provider

// 템플릿 풀. 각 문자열의 %[1]s 는 상품명이다.
// 등급별 풀은 대략적인 길이에 맞춰 작성되어 있으며 생성 시 글자 수를 검증하지 않는다.

var longTitlePool = []string{
	"【現貨免運】%[1]s 高品質專業款 台灣保固 限時優惠中",
	"【熱銷推薦】%[1]s 全新升級版 超值特惠 快速出貨",
	"【限時特價】%[1]s 人氣爆款 好評熱賣 現貨秒發",
	"【台灣現貨】%[1]s 品質保證 售後無憂 滿額免運",
	"【新品上市】%[1]s 獨家設計 時尚必備 超低優惠",
	"【買一送一】%[1]s 超值組合 限量供應 把握機會",
	"【年度熱銷】%[1]s 萬人推薦 五星好評 品質保證",
	"【破盤價】%[1]s 工廠直銷 最低價格 品質不變",
	"【爆款推薦】%[1]s 網紅同款 時尚百搭 必入手",
	"【獨家優惠】%[1]s 會員專屬 額外折扣 限時搶購",
}

var shortTitlePool = []string{
	"%[1]s｜現貨免運｜限時特惠",
	"%[1]s｜熱銷推薦｜品質保證",
	"%[1]s｜超值優惠｜快速出貨",
	"%[1]s｜人氣爆款｜限量特價",
	"%[1]s｜新品上市｜獨家設計",
	"%[1]s｜台灣保固｜售後無憂",
	"%[1]s｜年度熱銷｜好評推薦",
	"%[1]s｜工廠直銷｜最低價",
	"%[1]s｜網紅同款｜時尚必備",
	"%[1]s｜會員專屬｜額外折扣",
}

type introTemplate struct {
	content  string
	keywords []string
}

var shortIntroPool = []introTemplate{
	{
		content:  "%[1]s是您生活中不可或缺的好幫手！採用優質材料製作，品質有保障。台灣現貨，快速出貨，讓您安心購買。",
		keywords: []string{"優質", "台灣現貨", "快速出貨"},
	},
	{
		content:  "精選%[1]s，品質保證，價格實惠。專業設計，滿足您的各種需求。限時優惠中，手刀搶購！",
		keywords: []string{"精選", "品質保證", "限時優惠"},
	},
	{
		content:  "熱銷%[1]s，眾多顧客好評推薦！實用又美觀，送禮自用兩相宜。現在下單享專屬優惠。",
		keywords: []string{"熱銷", "好評", "專屬優惠"},
	},
}

var mediumIntroPool = []introTemplate{
	{
		content: `%[1]s是您生活中不可或缺的好幫手！

✨ 產品特色：
• 採用優質材料，品質有保障
• 專業設計，滿足各種需求
• 時尚外觀，實用又美觀

🎁 購買保障：
• 台灣現貨，24小時快速出貨
• 七天鑑賞期，安心購買
• 專業客服，售後無憂

限時優惠中，把握機會！`,
		keywords: []string{"優質", "專業設計", "快速出貨", "限時優惠"},
	},
	{
		content: `為什麼選擇我們的%[1]s？

🌟 品質保證
嚴選優質材料，經過多重品管檢測，確保每件商品都達到最高標準。

💝 貼心服務
專業客服團隊，隨時為您解答疑問。購物無憂，售後有保障。

🚚 快速到貨
台灣在地倉儲，下單後快速出貨，讓您盡早收到心愛的商品。

立即購買，享受品質生活！`,
		keywords: []string{"品質保證", "貼心服務", "快速到貨"},
	},
}

var longIntroPool = []introTemplate{
	{
		content: `%[1]s - 您值得擁有的品質之選

📌 產品介紹
這款%[1]s是我們精心挑選的優質商品，採用頂級材料製作，經過嚴格品質把關，每一個細節都經過精心設計，只為給您帶來最佳的使用體驗。

✨ 核心特色
1. 優質材料 - 嚴選高品質原料，耐用度高，使用壽命長
2. 精緻做工 - 專業工藝製作，細節處理到位
3. 時尚設計 - 外觀美觀大方，百搭各種場合
4. 實用便利 - 功能齊全，操作簡單，輕鬆上手

🎯 適用場景
無論是日常生活、工作使用，還是送禮首選，這款商品都能完美滿足您的需求。

🛡️ 購物保障
• 台灣現貨，快速出貨
• 七天鑑賞期，不滿意可退
• 一年保固，品質有保證
• 專業客服，隨時為您服務

💰 限時優惠
現在購買即享專屬折扣，數量有限，售完為止！把握機會，立即下單！`,
		keywords: []string{"品質之選", "優質材料", "精緻做工", "時尚設計", "實用便利", "限時優惠"},
	},
	{
		content: `🌟 %[1]s - 萬人推薦的熱銷商品

【為什麼這麼多人選擇我們？】

這款%[1]s自上市以來，已經累積超過數千位滿意顧客的好評！讓我們告訴您，為什麼這款商品能獲得如此高的評價。

【產品優勢】
✓ 品質保證：採用優質材料，通過多項品質認證
✓ 專業設計：人性化設計，使用更便利
✓ 耐用持久：精良做工，使用壽命更長
✓ 美觀時尚：外觀精緻，質感出眾

【購物保障】
📦 台灣在地倉儲，下單後1-2天快速到貨
🔄 七天鑑賞期，不滿意全額退款
🛡️ 品質保固，售後服務完善
💬 專業客服，即時回覆您的問題

【專屬優惠】
現在下單享有限時折扣，還有滿額免運優惠！數量有限，要買要快！`,
		keywords: []string{"萬人推薦", "熱銷", "品質保證", "專業設計", "快速到貨", "限時折扣"},
	},
}

// 규격 템플릿: %[1]s 상품명, %[2]s 재질, %[3]s 색상
const specTemplate = `【商品規格】
・品名：%[1]s
・材質：%[2]s
・顏色：%[3]s
・尺寸：標準尺寸
・重量：輕巧便攜
・產地：台灣
・保固：一年保固

【包裝內容】
・商品本體 x1
・使用說明書 x1
・原廠包裝盒 x1

【注意事項】
・請依照說明書正確使用
・請放置於乾燥陰涼處保存
・如有任何問題請聯繫客服`

var adHeadlinePool = []string{
	"限時優惠！%[1]s",
	"%[1]s - 熱銷推薦",
	"必買！%[1]s",
	"%[1]s 超值特惠",
	"%[1]s 品質保證",
	"新品上市 %[1]s",
	"%[1]s 限量優惠中",
	"%[1]s 免運特價",
	"熱銷%[1]s",
	"%[1]s 獨家優惠",
}

var adDescriptionPool = []string{
	"台灣現貨，快速出貨",
	"品質保證，安心購買",
	"限時優惠，把握機會",
	"滿額免運，超值優惠",
	"七天鑑賞，售後無憂",
	"熱銷推薦，好評不斷",
	"專業品質，值得信賴",
	"限量供應，售完為止",
	"會員專屬優惠價",
	"下單即享折扣",
}

var adCallToActionPool = []string{"立即購買", "了解更多", "立即選購", "搶先購買", "馬上買"}

var adShortTextPool = []string{
	"🔥 %[1]s限時特惠中！\n\n✨ 優質材料，品質保證\n📦 台灣現貨，快速出貨\n🛡️ 七天鑑賞期\n\n立即購買，享專屬優惠！",
	"💝 精選%[1]s\n\n• 高品質保證\n• 超值優惠價\n• 快速到貨\n\n數量有限，要買要快！",
	"🌟 熱銷%[1]s！\n\n眾多顧客好評推薦\n品質保證，售後無憂\n\n現在下單享限時折扣",
	"✨ %[1]s超值優惠\n\n🎁 買就送好禮\n🚚 滿額免運\n💯 品質保證\n\n把握機會，立即搶購！",
	"🎯 必買%[1]s\n\n專業品質，值得信賴\n台灣現貨，隔日到貨\n\n限時優惠中！",
}

var adLongTextPool = []string{
	"🔥 %[1]s限時特惠！\n\n【為什麼選擇我們？】\n✓ 嚴選優質材料，品質有保障\n✓ 專業設計，滿足各種需求\n✓ 台灣在地倉儲，快速出貨\n\n【購物保障】\n📦 24小時內出貨\n🔄 七天鑑賞期，不滿意可退\n🛡️ 一年保固服務\n💬 專業客服即時回覆\n\n⏰ 限時優惠中，數量有限！\n立即下單，把握機會！",
	"💝 %[1]s - 熱銷推薦\n\n這款%[1]s是我們精心挑選的優質商品！\n\n【產品特色】\n• 採用優質材料，耐用持久\n• 時尚設計，美觀實用\n• 操作簡單，輕鬆上手\n\n【專屬優惠】\n🎁 現在下單送精美好禮\n🚚 滿額享免運優惠\n💰 會員再享額外折扣\n\n數量有限，手刀搶購！",
	"🌟 萬人推薦！%[1]s\n\n累積超過千位滿意顧客好評！\n\n【顧客評價】\n⭐⭐⭐⭐⭐「品質超好，大推！」\n⭐⭐⭐⭐⭐「出貨快，客服親切」\n⭐⭐⭐⭐⭐「CP值超高！」\n\n【購買保障】\n✓ 品質保證\n✓ 快速出貨\n✓ 售後服務完善\n\n限時優惠進行中，立即購買！",
	"✨ %[1]s 超值組合\n\n【產品介紹】\n%[1]s是您生活中的好幫手！採用優質材料製作，經過嚴格品質把關。\n\n【五大優勢】\n1️⃣ 優質材料\n2️⃣ 精緻做工\n3️⃣ 時尚外觀\n4️⃣ 實用便利\n5️⃣ 超值價格\n\n🎉 現在購買即享專屬折扣！\n📦 台灣現貨，快速到貨！",
	"🎯 %[1]s 獨家優惠\n\n【限時活動】\n原價直接砍！超殺優惠價\n買越多省越多！\n\n【商品特色】\n✓ 高品質保證\n✓ 專業設計\n✓ 耐用持久\n✓ 美觀時尚\n\n【服務保障】\n📦 快速出貨\n🔄 七天鑑賞\n🛡️ 售後無憂\n\n⏰ 優惠倒數中，把握機會！",
}
