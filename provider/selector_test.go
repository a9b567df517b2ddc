package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-marketing/config"
	"ai-marketing/llm"
)

func TestSelectFallsBackToTemplateWithoutCredentials(t *testing.T) {
	creds := []config.Credential{{Provider: "openrouter"}, {Provider: "openai"}}

	sel := Select(context.Background(), creds, Deps{})

	assert.False(t, sel.Remote)
	assert.Equal(t, "template", sel.Name)
	_, ok := sel.Provider.(*TemplateProvider)
	assert.True(t, ok)
}

func TestSelectPrefersFirstPresentCredential(t *testing.T) {
	creds := []config.Credential{
		{Provider: "openrouter", APIKey: "sk-or-123456789", BaseURL: "https://openrouter.ai/api/v1", Model: "openai/gpt-4o-mini"},
		{Provider: "openai", APIKey: "sk-123456789", BaseURL: "https://api.openai.com/v1", Model: "gpt-4"},
	}

	sel := Select(context.Background(), creds, Deps{})

	require.True(t, sel.Remote)
	assert.Equal(t, "openrouter", sel.Name)
	assert.Equal(t, "openrouter", sel.Provider.Name())
}

func TestSelectSkipsCandidatesThatFailToBuild(t *testing.T) {
	creds := []config.Credential{
		{Provider: "openrouter", APIKey: "k1"},
		{Provider: "openai", APIKey: "k2"},
	}
	factory := func(ctx context.Context, c config.Credential, d Deps) (llm.Completer, error) {
		if c.Provider == "openrouter" {
			return nil, errors.New("bad base url")
		}
		return &fakeCompleter{}, nil
	}

	sel := SelectWith(context.Background(), creds, Deps{}, factory)
	assert.True(t, sel.Remote)
	assert.Equal(t, "openai", sel.Name)

	none := SelectWith(context.Background(), creds[:1], Deps{}, factory)
	assert.False(t, none.Remote)
	assert.Contains(t, none.Reason, "bad base url")
}

func TestDescribeKeyMasks(t *testing.T) {
	assert.Equal(t, "not set", describeKey(""))
	assert.Equal(t, "set (****)", describeKey("short"))
	assert.Equal(t, "set (sk-or-...)", describeKey("sk-or-v1-abcdef"))
}
