package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestConfigureEnvFromHoneycombKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDataset, "")

	if !ConfigureEnv() {
		t.Fatal("ConfigureEnv should report an exporter destination when an API key is set")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != defaultEndpoint {
		t.Errorf("endpoint = %q, want %q", got, defaultEndpoint)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=dungeongen"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureEnvWithoutDestination(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv(EnvAPIKey, "")

	if ConfigureEnv() {
		t.Error("ConfigureEnv should report no destination without key or endpoint")
	}
}

func TestTracersProduceSpans(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "op")
	span.End()
	_, span = NoopTracer().Start(context.Background(), "op")
	if span.IsRecording() {
		t.Error("no-op tracer should not record")
	}
	span.End()
}
