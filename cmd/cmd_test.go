package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnuSaha545/ai-study-planner-agent/internal/client"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/config"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/server"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/store"
	"github.com/AnuSaha545/ai-study-planner-agent/internal/workflow"
)

// execute runs the root command. Flags keep their values between runs, so
// every test passes the flags it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSplitSubjects(t *testing.T) {
	assert.Equal(t, []string{"Math", "Physics"}, splitSubjects(" Math, ,Physics ,"))
	assert.Empty(t, splitSubjects(" , "))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "studyplan (devel)\n", out)
}

func TestPlan_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")

	out, err := execute(t, "plan", "-s", "Math, Physics", "--hours", "2", "--days", "2",
		"--start", "", "--local", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Fetching study plan for: Math, Physics")
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "Saved to: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var res workflow.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Len(t, res.Plan, 2)
}

func TestPlan_Remote(t *testing.T) {
	ts := httptest.NewServer(server.New(server.Options{}).Handler())
	defer ts.Close()

	out, err := execute(t, "plan", "-s", "Biology", "--hours", "3", "--days", "1",
		"--start", "07:00", "--local=false", "-o", "", "--api-url", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "07:00 - 08:00")
	assert.Contains(t, out, "LEARNING RESOURCES")
}

func TestPlan_RemoteValidation(t *testing.T) {
	ts := httptest.NewServer(server.New(server.Options{}).Handler())
	defer ts.Close()

	_, err := execute(t, "plan", "-s", "Biology", "--hours", "20", "--days", "6",
		"--start", "", "--local=false", "-o", "", "--api-url", ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid input")
}

func TestPlan_RemoteZeroDaysIsRejected(t *testing.T) {
	ts := httptest.NewServer(server.New(server.Options{}).Handler())
	defer ts.Close()

	_, err := execute(t, "plan", "-s", "Biology", "--hours", "3", "--days", "0",
		"--start", "", "--local=false", "-o", "", "--api-url", ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days_per_week must be at least 1")

	_, err = execute(t, "plan", "-s", "Biology", "--hours", "3", "--days", "0",
		"--start", "", "--local", "-o", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days per week")
}

func TestPlan_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(server.New(server.Options{}).Handler())
	url := ts.URL
	ts.Close()

	_, err := execute(t, "plan", "-s", "Biology", "--hours", "3", "--days", "6",
		"--start", "", "--local=false", "-o", "", "--api-url", url)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrConnection)
	assert.Contains(t, err.Error(), "studyplan serve")
}

func TestPlan_NoSubjects(t *testing.T) {
	_, err := execute(t, "plan", "-s", " , ", "--local")
	assert.EqualError(t, err, "at least one subject is required")
}

func TestSlots(t *testing.T) {
	out, err := execute(t, "slots", "--start", "07:00", "--hours", "3", "--slot", "60", "--break", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "09:20 - 10:20")
}

func TestSlots_InvalidStart(t *testing.T) {
	_, err := execute(t, "slots", "--start", "7am", "--hours", "3", "--slot", "60", "--break", "10")
	assert.Error(t, err)
}

func TestSlots_HoursOverADay(t *testing.T) {
	for _, hours := range []string{"24.01", "1e15"} {
		_, err := execute(t, "slots", "--start", "07:00", "--hours", hours, "--slot", "60", "--break", "10")
		assert.Error(t, err, hours)
		assert.Contains(t, err.Error(), "at most 24", hours)
	}
}

func TestResolveDBPath(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	dir := t.TempDir()
	t.Setenv("STUDYPLAN_DB", filepath.Join(dir, "env.db"))

	cmd := &cobra.Command{}
	cmd.Flags().String("db", "", "")

	cfg = config.Default()
	cfg.DBPath = filepath.Join(dir, "configured", "plan.db")
	p, err := resolveDBPath(cmd)
	require.NoError(t, err)
	assert.Equal(t, cfg.DBPath, p)
	assert.DirExists(t, filepath.Join(dir, "configured"))

	flagPath := filepath.Join(dir, "flag", "plan.db")
	require.NoError(t, cmd.Flags().Set("db", flagPath))
	p, err = resolveDBPath(cmd)
	require.NoError(t, err)
	assert.Equal(t, flagPath, p)
}

func TestLLMList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	repo := st.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "outline",
		InputTokens: 120, OutputTokens: 300, LatencyMs: 850, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "groq", Model: "llama-3.1-8b-instant", Purpose: "summary",
		Success: false, ErrorKind: "rate_limit", ErrorMessage: "429",
	}))
	require.NoError(t, st.Close())

	out, err := execute(t, "llm", "list", "--db", dbPath, "-n", "10", "-p", "outline")
	require.NoError(t, err)
	assert.Contains(t, out, "llama-3.1-8b-instant")
	assert.Contains(t, out, "outline")
	assert.NotContains(t, out, "rate_limit")

	out, err = execute(t, "llm", "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage by Purpose")
	assert.Contains(t, out, "Estimated Cost (USD)")

	out, err = execute(t, "llm", "view", "2", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "[rate_limit] 429")
	assert.Contains(t, out, "(not captured)")
}

func TestLLMList_Empty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")

	out, err := execute(t, "llm", "list", "--db", dbPath, "-n", "10", "-p", "")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM calls recorded.")
}
