package dto

// ErrorResponseDTO 는 공통 에러 응답 형식이다. Error 는 검증 코드, Message 는 사용자 안내 문구다.
type ErrorResponseDTO struct {
	Error   string `json:"error" example:"product_required"`
	Message string `json:"message,omitempty" example:"請輸入商品名稱或網址"`
}

type HealthResponseDTO struct {
	Status   string `json:"status" example:"ok"`
	Provider string `json:"provider" example:"openrouter"`
}

// ProviderResponseDTO 는 시작 시 선택된 provider 진단 정보다.
type ProviderResponseDTO struct {
	Name   string `json:"name" example:"template"`
	Remote bool   `json:"remote"`
	Reason string `json:"reason" example:"no remote credential configured"`
}
