package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crimson-hq/crimson/pkg/config"
)

func newTestCollector() *Collector {
	return NewCollector(config.MetricsConfig{
		Enabled:   true,
		Namespace: "crimson",
	}, nil)
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("metrics endpoint returned %d", rec.Code)
	}
	return rec.Body.String()
}

func TestCollector_RecordsRequests(t *testing.T) {
	c := newTestCollector()

	c.RecordRequest("/api/chat", "POST", "200", 150*time.Millisecond)
	c.RecordRequest("/api/chat", "POST", "200", 250*time.Millisecond)
	c.RecordRequest("/api/chat", "POST", "503", 50*time.Millisecond)

	body := scrape(t, c)
	if !strings.Contains(body, `crimson_http_requests_total{method="POST",path="/api/chat",status="200"} 2`) {
		t.Errorf("request counter missing:\n%s", body)
	}
	if !strings.Contains(body, "crimson_http_request_duration_seconds") {
		t.Error("duration histogram missing")
	}
}

func TestCollector_RecordsProviderAttempts(t *testing.T) {
	c := newTestCollector()

	c.RecordProviderAttempt("groq", false, 100*time.Millisecond)
	c.RecordProviderAttempt("ollama", true, 2*time.Second)
	c.UpdateAvailability("groq", true)
	c.UpdateAvailability("openai", false)

	body := scrape(t, c)
	if !strings.Contains(body, `crimson_provider_attempts_total{outcome="failure",provider="groq"} 1`) {
		t.Errorf("failure counter missing:\n%s", body)
	}
	if !strings.Contains(body, `crimson_provider_attempts_total{outcome="success",provider="ollama"} 1`) {
		t.Error("success counter missing")
	}
	if !strings.Contains(body, `crimson_provider_available{provider="groq"} 1`) {
		t.Error("availability gauge missing")
	}
	if !strings.Contains(body, `crimson_provider_available{provider="openai"} 0`) {
		t.Error("unavailability gauge missing")
	}
}

func TestCollector_RecordsChatTurnsAndHistory(t *testing.T) {
	c := newTestCollector()

	c.RecordChatTurn("success", "groq")
	c.RecordChatTurn("all_failed", "")
	c.SetHistoryLength(6)

	body := scrape(t, c)
	if !strings.Contains(body, `crimson_chat_turns_total{backend="groq",outcome="success"} 1`) {
		t.Error("chat turn counter missing")
	}
	if !strings.Contains(body, "crimson_history_length 6") {
		t.Error("history length gauge missing")
	}
}

func TestCollector_DisabledIsNoop(t *testing.T) {
	c := NewCollector(config.MetricsConfig{Enabled: false}, nil)

	c.RecordRequest("/api/chat", "POST", "200", time.Millisecond)
	c.RecordChatTurn("success", "groq")

	body := scrape(t, c)
	if strings.Contains(body, `status="200"`) {
		t.Error("disabled collector recorded a request")
	}
}
