package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), UserPrompt("", "first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), UserPrompt("", "second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"subject":"Go"}`)})
	req := UserPrompt("", "Outline Go.")
	req.Schema = testSchema()

	_, err := mock.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RespondFunc(t *testing.T) {
	mock := NewMockProviderFunc(func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"echo":%q}`, req.Messages[0].Content))}
	})

	resp, err := mock.Generate(context.Background(), UserPrompt("sys", "hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"echo":"hello"}` {
		t.Fatalf("unexpected content %s", resp.Content)
	}
	if mock.CallCount() != 1 || mock.Calls[0].System != "sys" {
		t.Fatalf("call not recorded: %+v", mock.Calls)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeOutline)
	if p := PurposeFrom(ctx); p != "outline" {
		t.Fatalf("expected 'outline', got %q", p)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ErrRateLimit{}, "rate_limit"},
		{fmt.Errorf("wrapped: %w", &ErrInvalidResponse{Err: errors.New("x")}), "invalid_response"},
		{&ErrMaxTokensExceeded{}, "max_tokens"},
		{&ErrProviderUnavailable{}, "unavailable"},
		{context.DeadlineExceeded, "timeout"},
		{errors.New("other"), "error"},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// memRepo is an in-memory store.EventRepo.
type memRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (m *memRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.events = append(m.events, data)
	return m.err
}

func (m *memRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *memRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *memRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStats, error) { return nil, nil }

func (m *memRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) { return nil, nil }

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &memRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), PurposeOutline)
	if _, err := p.Generate(ctx, UserPrompt("sys", "Outline Go.")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != ProviderMock || e.Model != "mock" || e.Purpose != "outline" {
		t.Fatalf("unexpected identity: %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 7 {
		t.Fatalf("unexpected metrics: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\nsys") || !strings.Contains(e.RequestBody, "[user]\nOutline Go.") {
		t.Fatalf("unexpected request body: %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Fatalf("unexpected response body: %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &memRepo{}
	var buf bytes.Buffer
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})
	p := WithLogging(mock, repo, log.New(&buf))

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit to pass through, got %T", err)
	}

	e := repo.events[0]
	if e.Success || e.ErrorKind != "rate_limit" || !strings.Contains(e.ErrorMessage, "slow down") {
		t.Fatalf("unexpected event: %+v", e)
	}
	if !strings.Contains(buf.String(), "llm request failed") {
		t.Fatalf("expected warning in log, got %q", buf.String())
	}
}

func TestLoggingProvider_LedgerErrorDoesNotFailCall(t *testing.T) {
	repo := &memRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("ledger failure leaked into call: %v", err)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected mock model, got %q", p.ModelID())
	}
	if _, ok := p.(*LoggingProvider); !ok {
		t.Fatalf("expected logging wrapper, got %T", p)
	}

	_, err = NewProvider(context.Background(), Config{Provider: ProviderGroq}, nil, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	p, err = NewProvider(context.Background(), Config{Provider: ProviderGroq, Groq: GroqConfig{APIKey: "gsk"}}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected groq model %q", p.ModelID())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		wantErr       bool
		notConfigured bool
	}{
		{"groq without key", Config{Provider: ProviderGroq}, true, true},
		{"groq with key", Config{Provider: ProviderGroq, Groq: GroqConfig{APIKey: "gsk"}}, false, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, false, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true, true},
		{"gemini without key", Config{Provider: ProviderGemini}, true, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false, false},
		{"unknown provider", Config{Provider: "unknown"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrNotConfigured) != tt.notConfigured {
				t.Fatalf("errors.Is(ErrNotConfigured) = %v, want %v", !tt.notConfigured, tt.notConfigured)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYPLAN_LLM_PROVIDER", "STUDYPLAN_LLM_TIMEOUT",
		"STUDYPLAN_GROQ_API_KEY", "STUDYPLAN_GROQ_MODEL", "STUDYPLAN_GROQ_BASE_URL", "GROQ_MODEL",
		"STUDYPLAN_OPENAI_API_KEY", "STUDYPLAN_OPENAI_MODEL", "STUDYPLAN_OPENAI_BASE_URL",
		"STUDYPLAN_ANTHROPIC_API_KEY", "STUDYPLAN_ANTHROPIC_MODEL",
		"STUDYPLAN_GEMINI_API_KEY", "STUDYPLAN_GEMINI_MODEL",
		"GROQ_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderGroq || cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 30 {
		t.Fatalf("expected 30s timeout, got %s", cfg.Timeout)
	}

	t.Setenv("STUDYPLAN_LLM_PROVIDER", "openai")
	t.Setenv("STUDYPLAN_OPENAI_API_KEY", "sk-test")
	t.Setenv("STUDYPLAN_LLM_TIMEOUT", "45s")
	t.Setenv("GROQ_MODEL", "llama3-8b-8192")

	cfg = ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("unexpected provider config: %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 45 {
		t.Fatalf("expected 45s timeout, got %s", cfg.Timeout)
	}
	if cfg.Groq.Model != "llama3-8b-8192" {
		t.Fatalf("expected GROQ_MODEL to be honored, got %q", cfg.Groq.Model)
	}

	t.Setenv("STUDYPLAN_LLM_TIMEOUT", "10")
	if got := ConfigFromEnv().Timeout.Seconds(); got != 10 {
		t.Fatalf("expected bare seconds to parse, got %v", got)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with empty environment")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o-key" {
		t.Fatalf("expected openai to win over gemini, got %+v", cfg)
	}

	t.Setenv("GROQ_API_KEY", "gsk-key")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != ProviderGroq || cfg.Groq.APIKey != "gsk-key" {
		t.Fatalf("expected groq first, got %+v", cfg)
	}
}

func TestResolveConfig(t *testing.T) {
	clearLLMEnv(t)

	if _, err := ResolveConfig(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, err := ResolveConfig()
	if err != nil || cfg.Provider != ProviderAnthropic {
		t.Fatalf("expected discovered anthropic config, got %+v (%v)", cfg, err)
	}

	// An explicit provider choice is not overridden by discovery.
	t.Setenv("STUDYPLAN_LLM_PROVIDER", "gemini")
	if _, err := ResolveConfig(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured for explicit gemini without key, got %v", err)
	}

	t.Setenv("STUDYPLAN_LLM_PROVIDER", "mock")
	cfg, err = ResolveConfig()
	if err != nil || cfg.ModelName() != "mock" {
		t.Fatalf("expected mock config, got %+v (%v)", cfg, err)
	}
}
