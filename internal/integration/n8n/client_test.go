package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/backoffice/internal/config"
)

func TestTriggerReportPostsPayloadWithAPIKey(t *testing.T) {
	var received ReportTrigger
	var gotKey, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-N8N-API-KEY")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(config.N8NConfig{
		WebhookURL:     server.URL,
		APIKey:         "secret-key",
		TimeoutSeconds: 5,
	})
	require.True(t, client.Configured())

	err := client.TriggerReport(context.Background(), ReportTrigger{
		ScheduleID:     "sched_001",
		AccountID:      "cli_001",
		AccountName:    "Imobiliária Central",
		Frequency:      "semanal",
		RecipientEmail: "dono@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "sched_001", received.ScheduleID)
	assert.Equal(t, "semanal", received.Frequency)
	assert.NotEmpty(t, received.TriggeredAt, "triggered_at is stamped when absent")
}

func TestTriggerReportNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("workflow disabled"))
	}))
	defer server.Close()

	client := NewClient(config.N8NConfig{WebhookURL: server.URL, TimeoutSeconds: 5})

	err := client.TriggerReport(context.Background(), ReportTrigger{ScheduleID: "sched_001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "workflow disabled")
}

func TestTriggerReportUnconfigured(t *testing.T) {
	client := NewClient(config.N8NConfig{})

	assert.False(t, client.Configured())
	assert.Error(t, client.TriggerReport(context.Background(), ReportTrigger{}))
}
