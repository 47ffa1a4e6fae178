package telemetry_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/internal/infrastructure/telemetry"
	"github.com/ktp-forked-repos/ibantools/pkg/observability"
)

func TestRecorder_ExportsCounters(t *testing.T) {
	m, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: "iband-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	rec, err := telemetry.NewRecorder(m.Meter("iband"))
	require.NoError(t, err)

	ctx := context.Background()
	rec.RecordValidation(ctx, port.OpValidateIBAN, "NL", true)
	rec.RecordValidation(ctx, port.OpValidateIBAN, "NL", false)
	rec.RecordPublishFailure(ctx, "identifier.iban.validated")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "identifier_validations_total{")
	assert.Contains(t, text, `operation="validate_iban"`)
	assert.Contains(t, text, `outcome="invalid"`)
	assert.Contains(t, text, "identifier_events_publish_failures_total{")
}

func TestNoopRecorder(t *testing.T) {
	var r port.MetricsRecorder = telemetry.NoopRecorder{}
	r.RecordValidation(context.Background(), port.OpGetCountry, "", true)
	r.RecordPublishFailure(context.Background(), "x")
}
