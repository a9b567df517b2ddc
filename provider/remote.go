package provider

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"ai-marketing/fetcher"
	"ai-marketing/internal/logger"
	"ai-marketing/internal/trace"
	"ai-marketing/llm"
	"ai-marketing/models"
	"ai-marketing/quota"
)

// PageFetcher 는 상품 페이지의 정제된 텍스트와 메타데이터를 가져온다.
type PageFetcher interface {
	FetchDocument(ctx context.Context, url string) (fetcher.Document, error)
}

// Reserver 는 원격 호출 전에 호출 한도를 예약한다.
type Reserver interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}

type RemoteOptions struct {
	Model   string
	Fetcher PageFetcher
	Limiter Reserver
	// Timeout 은 원격 호출 하나의 상한이다. 0 이면 30초.
	Timeout time.Duration
}

// RemoteProvider 는 원격 LLM 으로 생성 계약을 구현한다.
// 모든 실패는 *GenerationError 로 반환되며 호출자가 폴백을 결정한다.
type RemoteProvider struct {
	completer llm.Completer
	model     string
	pages     PageFetcher
	limiter   Reserver
	timeout   time.Duration
}

func NewRemoteProvider(completer llm.Completer, opts RemoteOptions) *RemoteProvider {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteProvider{
		completer: completer,
		model:     opts.Model,
		pages:     opts.Fetcher,
		limiter:   opts.Limiter,
		timeout:   timeout,
	}
}

func (p *RemoteProvider) Name() string { return p.completer.Name() }

// call 은 한도 예약, 타임아웃, 호출 로그를 포함한 단일 원격 호출이다.
func (p *RemoteProvider) call(ctx context.Context, op, prompt, systemInstruction string) (string, error) {
	if p.completer == nil {
		return "", newError(KindCredential, op, llm.ErrMissingAPIKey)
	}
	if p.limiter != nil {
		ok, err := p.limiter.WaitAndReserve(ctx)
		if err != nil {
			return "", newError(KindTransport, op, err)
		}
		if !ok {
			return "", newError(KindTransport, op, quota.ErrQuotaExhausted)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	requestedAt := time.Now()
	comp, err := p.completer.Complete(callCtx, prompt, systemInstruction, p.model)
	p.logCall(ctx, op, requestedAt, comp, err)
	if err != nil {
		return "", classify(op, err)
	}
	return comp.Text, nil
}

func (p *RemoteProvider) logCall(ctx context.Context, op string, requestedAt time.Time, comp llm.Completion, err error) {
	model := comp.Model
	if model == "" {
		model = p.model
	}
	entry := models.AILog{
		Provider:     p.Name(),
		ModelName:    model,
		ModelVersion: comp.ModelVersion,
		Operation:    op,
		InputTokens:  comp.Usage.InputTokens,
		OutputTokens: comp.Usage.OutputTokens,
		TotalTokens:  comp.Usage.TotalTokens,
		RequestedAt:  requestedAt,
		CompletedAt:  time.Now(),
	}
	entry.DurationMs = entry.CompletedAt.Sub(requestedAt).Milliseconds()

	fields := logger.Fields{
		"request_id":    trace.RequestIDFromContext(ctx),
		"provider":      entry.Provider,
		"model":         entry.ModelName,
		"operation":     entry.Operation,
		"input_tokens":  entry.InputTokens,
		"output_tokens": entry.OutputTokens,
		"total_tokens":  entry.TotalTokens,
		"latency_ms":    entry.DurationMs,
	}
	if err != nil {
		msg := err.Error()
		entry.ErrorMessage = &msg
		fields["error"] = msg
		logger.ErrorWithFields("llm request failed", fields)
		return
	}
	logger.InfoWithFields("llm request", fields)
}

type urlExtraction struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Category    string                    `json:"category"`
	Price       json.RawMessage           `json:"price"`
	Images      []string                  `json:"images"`
	Attributes  *models.ProductAttributes `json:"attributes"`
}

// AnalyzeProductFromURL 은 페이지를 가져와 모델에 상품 정보 추출을 요청한다.
func (p *RemoteProvider) AnalyzeProductFromURL(ctx context.Context, url string) (models.ProductInfo, error) {
	const op = "analyze_product_url"
	if p.pages == nil {
		return models.ProductInfo{}, newError(KindFetch, op, errors.New("no page fetcher configured"))
	}
	doc, err := p.pages.FetchDocument(ctx, url)
	if err != nil {
		return models.ProductInfo{}, classify(op, err)
	}

	raw, err := p.call(ctx, op, buildURLExtractionPrompt(doc.Text), URL_EXTRACTION_SYSTEM_INSTRUCTION)
	if err != nil {
		return models.ProductInfo{}, err
	}

	var out urlExtraction
	if err := ExtractJSONObject(raw, &out); err != nil {
		return models.ProductInfo{}, err
	}

	info := models.ProductInfo{
		Name:        strings.TrimSpace(out.Name),
		URL:         url,
		Description: strings.TrimSpace(out.Description),
		Category:    strings.TrimSpace(out.Category),
		Price:       parsePrice(out.Price),
		Images:      out.Images,
		Attributes:  out.Attributes,
	}
	if info.Name == "" {
		info.Name = doc.Title
	}
	if info.Description == "" {
		info.Description = doc.Description
	}
	if info.Price == 0 {
		info.Price = doc.Price
	}
	if len(info.Images) == 0 && doc.Image != "" {
		info.Images = []string{doc.Image}
	}
	if info.Name == "" {
		return models.ProductInfo{}, newError(KindParse, op, errors.New("reply has no product name"))
	}
	return info, nil
}

// parsePrice 는 숫자 또는 "1,290" 같은 문자열 가격을 허용한다.
func parsePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	s = strings.NewReplacer(",", "", "$", "", "NT", "", "元", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (p *RemoteProvider) GenerateProductCopy(ctx context.Context, req CopyRequest) (CopyResult, error) {
	op := "generate_" + strings.ToLower(string(req.Kind))
	raw, err := p.call(ctx, op, buildCopyPrompt(req), COPY_SYSTEM_INSTRUCTION)
	if err != nil {
		return CopyResult{}, err
	}

	var out CopyResult
	if err := ExtractJSONObject(raw, &out); err != nil {
		return CopyResult{}, err
	}
	out.Title = strings.TrimSpace(out.Title)
	out.Content = strings.TrimSpace(out.Content)
	switch {
	case out.Title == "" && out.Content == "":
		return CopyResult{}, newError(KindParse, op, errors.New("reply has neither title nor content"))
	case req.Kind == models.KindTitle && out.Title == "":
		return CopyResult{}, newError(KindParse, op, errors.New("reply has no title"))
	case (req.Kind == models.KindIntro || req.Kind == models.KindSpec) && out.Content == "":
		return CopyResult{}, newError(KindParse, op, errors.New("reply has no content"))
	}
	return out, nil
}

type audienceReply struct {
	ProductName        string `json:"productName"`
	SuggestedAudiences []struct {
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		Size               string   `json:"size"`
		RelevanceScore     float64  `json:"relevanceScore"`
		SuggestedPlatforms []string `json:"suggestedPlatforms"`
	} `json:"suggestedAudiences"`
	Demographics struct {
		AgeRange  []string `json:"ageRange"`
		Gender    []string `json:"gender"`
		Interests []string `json:"interests"`
		Behaviors []string `json:"behaviors"`
	} `json:"demographics"`
	Keywords      []string `json:"keywords"`
	TargetMarkets []string `json:"targetMarkets"`
}

func (p *RemoteProvider) AnalyzeAudience(ctx context.Context, name, description string) (models.AudienceAnalysis, error) {
	const op = "analyze_audience"
	raw, err := p.call(ctx, op, buildAudiencePrompt(name, description), AUDIENCE_SYSTEM_INSTRUCTION)
	if err != nil {
		return models.AudienceAnalysis{}, err
	}

	var out audienceReply
	if err := ExtractJSONObject(raw, &out); err != nil {
		return models.AudienceAnalysis{}, err
	}
	if len(out.SuggestedAudiences) == 0 {
		return models.AudienceAnalysis{}, newError(KindParse, op, errors.New("reply has no audiences"))
	}

	analysis := models.AudienceAnalysis{
		ProductName: out.ProductName,
		Demographics: models.Demographics{
			AgeRange:  out.Demographics.AgeRange,
			Gender:    out.Demographics.Gender,
			Interests: out.Demographics.Interests,
			Behaviors: out.Demographics.Behaviors,
		},
		Keywords:      out.Keywords,
		TargetMarkets: out.TargetMarkets,
	}
	if analysis.ProductName == "" {
		analysis.ProductName = name
	}
	for _, a := range out.SuggestedAudiences {
		analysis.SuggestedAudiences = append(analysis.SuggestedAudiences, models.SuggestedAudience{
			Name:               a.Name,
			Description:        a.Description,
			Size:               models.AudienceSize(strings.ToLower(strings.TrimSpace(a.Size))),
			RelevanceScore:     int(math.Round(a.RelevanceScore)),
			SuggestedPlatforms: a.SuggestedPlatforms,
		})
	}
	return analysis, nil
}
