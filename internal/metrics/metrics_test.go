package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsSkippedByReason(t *testing.T) {
	before := testutil.ToFloat64(RecordsSkipped.WithLabelValues(ReasonNoSprite))

	RecordsSkipped.WithLabelValues(ReasonNoSprite).Inc()
	RecordsSkipped.WithLabelValues(ReasonNoSprite).Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(RecordsSkipped.WithLabelValues(ReasonNoSprite)))
}

func TestSubtreesDowngradedByComponent(t *testing.T) {
	pricing := testutil.ToFloat64(SubtreesDowngraded.WithLabelValues(ComponentPricing))
	icon := testutil.ToFloat64(SubtreesDowngraded.WithLabelValues(ComponentIcon))

	SubtreesDowngraded.WithLabelValues(ComponentPricing).Inc()

	assert.Equal(t, pricing+1, testutil.ToFloat64(SubtreesDowngraded.WithLabelValues(ComponentPricing)))
	assert.Equal(t, icon, testutil.ToFloat64(SubtreesDowngraded.WithLabelValues(ComponentIcon)))
}

func TestWriteTextfile(t *testing.T) {
	RecordsResolved.Inc()

	path := filepath.Join(t.TempDir(), "catalog.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), MetricNameRecordsResolved))
}
