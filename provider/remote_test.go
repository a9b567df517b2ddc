package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/fetcher"
	"ai-marketing/llm"
	"ai-marketing/models"
	"ai-marketing/quota"
)

type fakeCompleter struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(ctx context.Context, prompt, systemInstruction, model string) (llm.Completion, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return llm.Completion{}, f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return llm.Completion{Text: reply, Model: model}, nil
}

type fakePages struct {
	doc fetcher.Document
	err error
}

func (f fakePages) FetchDocument(ctx context.Context, url string) (fetcher.Document, error) {
	return f.doc, f.err
}

type denyAll struct{}

func (denyAll) WaitAndReserve(ctx context.Context) (bool, error) { return false, nil }

func TestRemoteGenerateProductCopy(t *testing.T) {
	c := &fakeCompleter{replies: []string{"```json\n{\"title\":\" 藍牙喇叭 防水 \",\"content\":\"重低音\",\"keywords\":[\"防水\"]}\n```"}}
	p := NewRemoteProvider(c, RemoteOptions{Model: "gpt-4"})

	out, err := p.GenerateProductCopy(context.Background(), CopyRequest{
		Product: speaker,
		Kind:    models.KindTitle,
		Length:  models.LengthLong,
		Index:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "藍牙喇叭 防水", out.Title)
	assert.Equal(t, []string{"防水"}, out.Keywords)

	require.Len(t, c.prompts, 1)
	assert.Contains(t, c.prompts[0], "SEO")
	assert.Contains(t, c.prompts[0], "第 3 個版本")
}

func TestRemoteErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		kind  ErrorKind
	}{
		{name: "missing key", err: llm.ErrMissingAPIKey, kind: KindCredential},
		{name: "http error", err: &llm.HTTPError{StatusCode: 500}, kind: KindTransport},
		{name: "timeout", err: context.DeadlineExceeded, kind: KindTransport},
		{name: "not json", reply: "抱歉，我無法回答", kind: KindParse},
		{name: "empty object", reply: "{}", kind: KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeCompleter{replies: []string{tt.reply}, errs: []error{tt.err}}
			p := NewRemoteProvider(c, RemoteOptions{})

			_, err := p.GenerateProductCopy(context.Background(), CopyRequest{Product: speaker, Kind: models.KindIntro})
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestRemoteQuotaExhaustedIsTransport(t *testing.T) {
	c := &fakeCompleter{}
	p := NewRemoteProvider(c, RemoteOptions{Limiter: denyAll{}})

	_, err := p.AnalyzeAudience(context.Background(), "藍牙喇叭", "")
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, quota.ErrQuotaExhausted))
	assert.Zero(t, c.calls)
}

func TestRemoteAppliesTimeout(t *testing.T) {
	p := NewRemoteProvider(blockingCompleter{}, RemoteOptions{Timeout: 10 * time.Millisecond})

	start := time.Now()
	_, err := p.GenerateProductCopy(context.Background(), CopyRequest{Product: speaker, Kind: models.KindTitle})
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Less(t, time.Since(start), time.Second)
}

type blockingCompleter struct{}

func (blockingCompleter) Name() string { return "blocking" }

func (blockingCompleter) Complete(ctx context.Context, _, _, _ string) (llm.Completion, error) {
	<-ctx.Done()
	return llm.Completion{}, ctx.Err()
}

func TestRemoteAnalyzeProductFromURL(t *testing.T) {
	c := &fakeCompleter{replies: []string{`{"name":"藍牙喇叭 X1","price":"1,290","attributes":{"material":"鋁合金"}}`}}
	pages := fakePages{doc: fetcher.Document{Text: "藍牙喇叭 X1 防水", Image: "https://img.example.com/x1.jpg", Description: "防水喇叭"}}
	p := NewRemoteProvider(c, RemoteOptions{Fetcher: pages})

	info, err := p.AnalyzeProductFromURL(context.Background(), "https://shop.example.com/x1")
	require.NoError(t, err)
	assert.Equal(t, "藍牙喇叭 X1", info.Name)
	assert.Equal(t, 1290.0, info.Price)
	assert.Equal(t, "鋁合金", info.Material())
	assert.Equal(t, []string{"https://img.example.com/x1.jpg"}, info.Images)
	assert.Equal(t, "防水喇叭", info.Description)
	assert.Contains(t, c.prompts[0], "藍牙喇叭 X1 防水")
}

func TestRemoteAnalyzeProductFetchFailure(t *testing.T) {
	c := &fakeCompleter{}
	pages := fakePages{err: &fetcher.FetchError{URL: "https://shop.example.com/x1", StatusCode: 502}}
	p := NewRemoteProvider(c, RemoteOptions{Fetcher: pages})

	_, err := p.AnalyzeProductFromURL(context.Background(), "https://shop.example.com/x1")
	assert.True(t, errors.Is(err, ErrFetch))
	assert.Zero(t, c.calls, "no model call after fetch failure")
}

func TestRemoteAnalyzeAudience(t *testing.T) {
	c := &fakeCompleter{replies: []string{`{
		"suggestedAudiences": [{"name": "戶外族", "size": "LARGE", "relevanceScore": 87.6, "suggestedPlatforms": ["instagram"]}],
		"demographics": {"ageRange": ["25-34"]},
		"keywords": ["露營"]
	}`}}
	p := NewRemoteProvider(c, RemoteOptions{})

	a, err := p.AnalyzeAudience(context.Background(), "藍牙喇叭", "防水")
	require.NoError(t, err)
	assert.Equal(t, "藍牙喇叭", a.ProductName)
	require.Len(t, a.SuggestedAudiences, 1)
	assert.Equal(t, models.AudienceLarge, a.SuggestedAudiences[0].Size)
	assert.Equal(t, 88, a.SuggestedAudiences[0].RelevanceScore)
}

func TestInvokeWrapsResult(t *testing.T) {
	ok := Invoke(NewTemplateProvider(), false, "op", func(p Provider) (string, error) { return "v", nil })
	assert.True(t, ok.OK())
	assert.Equal(t, models.SourceTemplate, ok.Source)

	bad := Invoke(NewTemplateProvider(), true, "op", func(p Provider) (string, error) { return "", errors.New("boom") })
	assert.False(t, bad.OK())
	assert.Equal(t, KindTransport, bad.Err.Kind)
}
