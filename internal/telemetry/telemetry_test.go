package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestConfigureHoneycomb(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureHoneycomb("secret", "")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=" + defaultDataset
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureHoneycombWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "keep")

	ConfigureHoneycomb("", "custom")

	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "keep" {
		t.Errorf("headers = %q, want untouched", got)
	}
}

func TestTracersWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()

	_, span = NoopTracer().Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("noop tracer produced a valid span context")
	}
	span.End()
}
