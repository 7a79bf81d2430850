package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) (*bytes.Buffer, Logger) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithContext_AddsCorrelationID(t *testing.T) {
	buf, l := captureLogger(t)
	ctx, id := WithCorrelationID(context.Background())

	l.WithContext(ctx).Info("reporting: week kpis")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "reporting: week kpis")
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger(t)

	l.WithFields(Fields{"week": 3, "sku": "ABC"}).Info("filtered")

	assert.Contains(t, buf.String(), "week=3")
	assert.NotContains(t, buf.String(), "sku=")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	l.WithFields(Fields{"week": 3, "sku": "ABC"}).WithField("listing", "Mug").Info("kept")

	assert.Contains(t, buf.String(), "sku=ABC")
	assert.Contains(t, buf.String(), "listing=Mug")
}
