package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

const (
	FetchModeProxy   = "proxy"
	FetchModeBrowser = "browser"
)

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	LLM        LLMConfig        `yaml:"llm"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Generation GenerationConfig `yaml:"generation"`
	Quota      QuotaConfig      `yaml:"generation_quota"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LLMConfig 는 원격 생성 provider 후보와 공통 호출 파라미터를 정의한다.
// Providers 는 우선순위 순서이며, 키가 설정된 첫 번째 항목이 선택된다.
type LLMConfig struct {
	Providers      []LLMProvider `yaml:"providers"`
	ModelEnv       string        `yaml:"model_env"`
	Temperature    float64       `yaml:"temperature"`
	MaxTokens      int           `yaml:"max_tokens"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
}

// LLMProvider is a single remote provider candidate
type LLMProvider struct {
	Name      string `yaml:"name"`
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
}

// Credential 은 시작 시점에 환경변수에서 읽어 온 provider 별 설정이다.
// APIKey 가 비어 있으면 해당 provider 는 선택 대상이 아니다.
type Credential struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

func (c Credential) Present() bool {
	return c.APIKey != ""
}

// FetcherConfig 의 Mode 는 "proxy"(기본) 또는 "browser" 이다.
// browser 모드는 ChromePath 의 headless 브라우저로 JS 렌더링 페이지를 가져온다.
type FetcherConfig struct {
	Mode            string `yaml:"mode"`
	ChromePath      string `yaml:"chrome_path"`
	ProxyURL        string `yaml:"proxy_url"`
	MaxChars        int    `yaml:"max_chars"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

type GenerationConfig struct {
	MaxCount        int `yaml:"max_count"`
	MaxKeywordCount int `yaml:"max_keyword_count"`
}

// QuotaConfig 는 원격 LLM 호출에 대한 속도/일일 한도를 정의한다.
type QuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

var config *AppConfig

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// Load 는 dir 의 .env 와 config.yaml 을 읽어 기본값을 채운 AppConfig 를 반환한다.
// config.yaml 이 없으면 기본값만으로 구성한다.
func Load(dir string) (AppConfig, error) {
	// .env 는 선택 사항이다
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case os.IsNotExist(err):
	default:
		return AppConfig{}, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.Logging.Level = level
	}
	c.applyDefaults()
	return c, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}

	if len(c.LLM.Providers) == 0 {
		c.LLM.Providers = DefaultProviders()
	}
	if c.LLM.ModelEnv == "" {
		c.LLM.ModelEnv = "LLM_MODEL"
	}
	if c.LLM.Temperature <= 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = 2000
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = 30
	}

	c.Fetcher.Mode = strings.ToLower(strings.TrimSpace(c.Fetcher.Mode))
	if c.Fetcher.Mode != FetchModeBrowser {
		c.Fetcher.Mode = FetchModeProxy
	}
	if cp := strings.TrimSpace(os.Getenv("CHROME_PATH")); cp != "" {
		c.Fetcher.ChromePath = cp
	}
	if c.Fetcher.ChromePath == "" {
		c.Fetcher.ChromePath = "/usr/bin/chromium-browser"
	}
	if c.Fetcher.ProxyURL == "" {
		c.Fetcher.ProxyURL = "https://api.allorigins.win/get"
	}
	if c.Fetcher.MaxChars <= 0 {
		c.Fetcher.MaxChars = 3000
	}
	if c.Fetcher.TimeoutSeconds <= 0 {
		c.Fetcher.TimeoutSeconds = 15
	}
	if c.Fetcher.CacheTTLSeconds < 0 {
		c.Fetcher.CacheTTLSeconds = 0
	}

	if c.Generation.MaxCount <= 0 {
		c.Generation.MaxCount = 10
	}
	if c.Generation.MaxKeywordCount <= 0 {
		c.Generation.MaxKeywordCount = 20
	}

	if c.Quota.RequestsPerMinute < 0 {
		c.Quota.RequestsPerMinute = 0
	}
	if c.Quota.RequestsPerDay < 0 {
		c.Quota.RequestsPerDay = 0
	}
}

// DefaultProviders 는 OpenRouter > OpenAI > Gemini 우선순위의 기본 후보 목록이다.
func DefaultProviders() []LLMProvider {
	return []LLMProvider{
		{Name: "openrouter", APIKeyEnv: "OPENROUTER_API_KEY", BaseURL: "https://openrouter.ai/api/v1", Model: "openai/gpt-4o-mini"},
		{Name: "openai", APIKeyEnv: "OPENAI_API_KEY", BaseURL: "https://api.openai.com/v1", Model: "gpt-4"},
		{Name: "gemini", APIKeyEnv: "GEMINI_API_KEY", Model: "gemini-2.5-flash"},
	}
}

// Credentials 는 provider 후보 순서를 유지한 채 lookup 으로 키를 읽어 온다.
// model_env 가 설정되어 있으면 모든 provider 의 모델을 덮어쓴다.
func (c LLMConfig) Credentials(lookup func(string) string) []Credential {
	modelOverride := ""
	if c.ModelEnv != "" {
		modelOverride = strings.TrimSpace(lookup(c.ModelEnv))
	}

	creds := make([]Credential, 0, len(c.Providers))
	for _, p := range c.Providers {
		cred := Credential{
			Provider: p.Name,
			BaseURL:  p.BaseURL,
			Model:    p.Model,
		}
		if p.APIKeyEnv != "" {
			cred.APIKey = strings.TrimSpace(lookup(p.APIKeyEnv))
		}
		if modelOverride != "" {
			cred.Model = modelOverride
		}
		creds = append(creds, cred)
	}
	return creds
}

func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c FetcherConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c FetcherConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
