package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/config"
	"ai-marketing/fetcher"
	"ai-marketing/models"
	"ai-marketing/provider"
)

// scriptedProvider 는 호출마다 지정된 에러를 돌려주는 원격 provider 대역이다.
type scriptedProvider struct {
	failTitleAt map[int]error
	failIntroAt map[int]error
	specErr     error
	title       string
	audience    models.AudienceAnalysis
	urlErr      error
	calls       int
}

func (s *scriptedProvider) Name() string { return "scripted" }

func (s *scriptedProvider) AnalyzeProductFromURL(ctx context.Context, url string) (models.ProductInfo, error) {
	s.calls++
	if s.urlErr != nil {
		return models.ProductInfo{}, s.urlErr
	}
	return models.ProductInfo{Name: "遠端商品", URL: url}, nil
}

func (s *scriptedProvider) GenerateProductCopy(ctx context.Context, req provider.CopyRequest) (provider.CopyResult, error) {
	s.calls++
	if req.Kind == models.KindTitle {
		if err, ok := s.failTitleAt[req.Index]; ok {
			return provider.CopyResult{}, err
		}
		title := s.title
		if title == "" {
			title = fmt.Sprintf("remote title %d", req.Index)
		}
		return provider.CopyResult{Title: title}, nil
	}
	if err, ok := s.failIntroAt[req.Index]; ok && req.Kind == models.KindIntro {
		return provider.CopyResult{}, err
	}
	if s.specErr != nil && req.Kind == models.KindSpec {
		return provider.CopyResult{}, s.specErr
	}
	return provider.CopyResult{Title: "remote", Content: "remote content", Keywords: []string{"遠端", "防水"}}, nil
}

func (s *scriptedProvider) AnalyzeAudience(ctx context.Context, name, description string) (models.AudienceAnalysis, error) {
	s.calls++
	return s.audience, nil
}

func remote(p provider.Provider) provider.Selection {
	return provider.Selection{Provider: p, Name: p.Name(), Remote: true}
}

func templateOnly() provider.Selection {
	return provider.Select(context.Background(), nil, provider.Deps{})
}

var speaker = models.ProductInfo{Name: "Bluetooth Speaker"}

func TestGenerateAllScenario(t *testing.T) {
	g := New(templateOnly(), config.GenerationConfig{})

	out, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{
		TitleCount:   2,
		IntroCount:   1,
		TitleLength:  models.LengthLong,
		IntroLength:  models.LengthShort,
		GenerateSpec: true,
		KeywordCount: 5,
	})
	require.NoError(t, err)

	assert.Len(t, out.Copies, 4)
	assert.Equal(t, 2, out.CountKind(models.KindTitle))
	assert.Equal(t, 1, out.CountKind(models.KindIntro))
	assert.Equal(t, 1, out.CountKind(models.KindSpec))
	assert.Len(t, out.Keywords, 5)
	assert.Contains(t, out.Keywords, "Bluetooth Speaker")

	assert.Equal(t, []models.CopyKind{models.KindTitle, models.KindTitle, models.KindIntro, models.KindSpec},
		[]models.CopyKind{out.Copies[0].Kind, out.Copies[1].Kind, out.Copies[2].Kind, out.Copies[3].Kind})
	assert.Equal(t, "版本 1", out.Copies[2].Title)
	assert.Equal(t, provider.SpecTitle, out.Copies[3].Title)

	ids := map[string]bool{}
	for _, c := range out.Copies {
		assert.Equal(t, models.SourceTemplate, c.Source)
		assert.False(t, ids[c.ID], "ids are unique")
		ids[c.ID] = true
	}
}

func TestGenerateAllCountsPerKind(t *testing.T) {
	g := New(templateOnly(), config.GenerationConfig{})

	type counts struct {
		titles int
		intros int
		spec   bool
	}
	for _, tc := range []counts{
		{0, 0, false}, {10, 0, true}, {3, 10, false}, {1, 1, true},
	} {
		out, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{
			TitleCount: tc.titles, TitleLength: models.LengthShort,
			IntroCount: tc.intros, IntroLength: models.LengthMedium,
			GenerateSpec: tc.spec, KeywordCount: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.titles, out.CountKind(models.KindTitle))
		assert.Equal(t, tc.intros, out.CountKind(models.KindIntro))
		wantSpec := 0
		if tc.spec {
			wantSpec = 1
		}
		assert.Equal(t, wantSpec, out.CountKind(models.KindSpec))
	}
}

func TestGenerateAllIsDeterministicWithTemplates(t *testing.T) {
	g := New(templateOnly(), config.GenerationConfig{})
	req := models.DefaultGenerationRequest()

	a, err := g.GenerateAll(context.Background(), speaker, req)
	require.NoError(t, err)
	b, err := g.GenerateAll(context.Background(), speaker, req)
	require.NoError(t, err)

	require.Equal(t, len(a.Copies), len(b.Copies))
	for i := range a.Copies {
		assert.Equal(t, a.Copies[i].Title, b.Copies[i].Title)
		assert.Equal(t, a.Copies[i].Content, b.Copies[i].Content)
	}
	assert.Equal(t, a.Keywords, b.Keywords)
}

func TestNoCredentialsMakesNoNetworkCalls(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	creds := config.LLMConfig{Providers: config.DefaultProviders()}.Credentials(func(string) string { return "" })
	sel := provider.Select(context.Background(), creds, provider.Deps{
		HTTPClient: srv.Client(),
		Fetcher:    fetcher.New(config.FetcherConfig{ProxyURL: srv.URL}, srv.Client()),
	})
	require.False(t, sel.Remote)

	g := New(sel, config.GenerationConfig{})
	out, err := g.GenerateAll(context.Background(), speaker, models.DefaultGenerationRequest())
	require.NoError(t, err)
	for _, c := range out.Copies {
		assert.Equal(t, models.SourceTemplate, c.Source)
	}

	info, err := g.AnalyzeProductURL(context.Background(), "https://shop.example.com/item/1")
	require.NoError(t, err)
	assert.Equal(t, "智能藍牙自拍棒", info.Name)

	_, err = g.AnalyzeAudience(context.Background(), speaker)
	require.NoError(t, err)

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestPartialFailureFallsBackForOneTitle(t *testing.T) {
	failures := []error{
		&provider.GenerationError{Kind: provider.KindTransport, Err: errors.New("502")},
		&provider.GenerationError{Kind: provider.KindParse, Err: errors.New("no json")},
		&provider.GenerationError{Kind: provider.KindCredential, Err: errors.New("no key")},
	}
	for _, failure := range failures {
		t.Run(string(provider.KindOf(failure)), func(t *testing.T) {
			sp := &scriptedProvider{failTitleAt: map[int]error{2: failure}}
			g := New(remote(sp), config.GenerationConfig{})

			out, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{
				TitleCount: 5, TitleLength: models.LengthLong, KeywordCount: 5,
			})
			require.NoError(t, err)
			require.Equal(t, 5, out.CountKind(models.KindTitle))

			fallback := provider.NewTemplateProvider().Title(speaker, models.LengthLong, 2)
			for i, c := range out.Copies {
				if i == 2 {
					assert.Equal(t, models.SourceTemplate, c.Source)
					assert.Equal(t, fallback, c.Title)
					continue
				}
				assert.Equal(t, models.SourceRemote, c.Source)
				assert.Equal(t, fmt.Sprintf("remote title %d", i), c.Title)
			}
		})
	}
}

func TestPartialFailureFallsBackForIntroOrSpec(t *testing.T) {
	failures := []error{
		&provider.GenerationError{Kind: provider.KindTransport, Err: errors.New("502")},
		&provider.GenerationError{Kind: provider.KindParse, Err: errors.New("no json")},
		&provider.GenerationError{Kind: provider.KindCredential, Err: errors.New("no key")},
	}
	tp := provider.NewTemplateProvider()
	for _, failure := range failures {
		for _, target := range []models.CopyKind{models.KindIntro, models.KindSpec} {
			t.Run(string(provider.KindOf(failure))+"/"+string(target), func(t *testing.T) {
				sp := &scriptedProvider{}
				if target == models.KindIntro {
					sp.failIntroAt = map[int]error{1: failure}
				} else {
					sp.specErr = failure
				}
				g := New(remote(sp), config.GenerationConfig{})

				out, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{
					TitleCount:   2,
					IntroCount:   3,
					TitleLength:  models.LengthLong,
					IntroLength:  models.LengthMedium,
					GenerateSpec: true,
					KeywordCount: 20,
				})
				require.NoError(t, err)
				require.Len(t, out.Copies, 6)
				assert.Equal(t, 2, out.CountKind(models.KindTitle))
				assert.Equal(t, 3, out.CountKind(models.KindIntro))
				assert.Equal(t, 1, out.CountKind(models.KindSpec))

				failedAt := 5
				if target == models.KindIntro {
					failedAt = 3
				}
				for i, c := range out.Copies {
					if i == failedAt {
						assert.Equal(t, models.SourceTemplate, c.Source, "copy %d", i)
						continue
					}
					assert.Equal(t, models.SourceRemote, c.Source, "copy %d", i)
				}

				assert.Contains(t, out.Keywords, "遠端")
				if target == models.KindIntro {
					content, introKeywords := tp.Intro(speaker, models.LengthMedium, 1)
					assert.Equal(t, content, out.Copies[3].Content)
					for _, kw := range introKeywords {
						assert.Contains(t, out.Keywords, kw)
					}
				} else {
					assert.Equal(t, tp.Spec(speaker), out.Copies[5].Content)
				}
			})
		}
	}
}

func TestRemoteTitlesAreCappedByTier(t *testing.T) {
	sp := &scriptedProvider{title: strings.Repeat("長", 80)}
	g := New(remote(sp), config.GenerationConfig{})

	long, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{TitleCount: 1, TitleLength: models.LengthLong})
	require.NoError(t, err)
	assert.Equal(t, 60, utf8.RuneCountInString(long.Copies[0].Title))

	short, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{TitleCount: 1, TitleLength: "short"})
	require.NoError(t, err)
	assert.Equal(t, 30, utf8.RuneCountInString(short.Copies[0].Title))
}

func TestRemoteIntroKeywordsFeedCandidates(t *testing.T) {
	sp := &scriptedProvider{}
	g := New(remote(sp), config.GenerationConfig{})

	out, err := g.GenerateAll(context.Background(), speaker, models.GenerationRequest{
		IntroCount: 2, IntroLength: models.LengthMedium, KeywordCount: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bluetooth Speaker", "遠端", "防水", "熱銷"}, out.Keywords)
	assert.Equal(t, 2, sp.calls, "sub-calls are issued once each")
}

func TestGenerateAllValidation(t *testing.T) {
	g := New(templateOnly(), config.GenerationConfig{})

	tests := []struct {
		name    string
		product models.ProductInfo
		req     models.GenerationRequest
		code    string
	}{
		{"no name", models.ProductInfo{}, models.DefaultGenerationRequest(), CodeProductRequired},
		{"too many titles", speaker, models.GenerationRequest{TitleCount: 11, TitleLength: models.LengthLong}, CodeInvalidCount},
		{"negative intros", speaker, models.GenerationRequest{IntroCount: -1}, CodeInvalidCount},
		{"bad tier", speaker, models.GenerationRequest{TitleCount: 1, TitleLength: "HUGE"}, CodeInvalidLength},
		{"too many keywords", speaker, models.GenerationRequest{KeywordCount: 21}, CodeInvalidKeywords},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.GenerateAll(context.Background(), tt.product, tt.req)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.code, ve.Code)
		})
	}
}
