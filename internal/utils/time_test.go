package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

func TestLocalDateJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		var d util.LocalDate
		require.NoError(t, json.Unmarshal([]byte(`"2025-01-31"`), &d))
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.January, d.Month())

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `"2025-01-31"`, string(out))
	})

	t.Run("ZeroIsNull", func(t *testing.T) {
		out, err := json.Marshal(util.LocalDate{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("RejectsDateTime", func(t *testing.T) {
		var d util.LocalDate
		assert.Error(t, json.Unmarshal([]byte(`"2025-01-31T10:00:00"`), &d))
	})
}

func TestLocalDateScan(t *testing.T) {
	cases := map[string]interface{}{
		"time":     time.Date(2024, 6, 1, 15, 30, 0, 0, time.FixedZone("X", 3600)),
		"string":   "2024-06-01",
		"bytes":    []byte("2024-06-01 00:00:00+00:00"),
		"rfc3339":  "2024-06-01T00:00:00Z",
		"datetime": "2024-06-01 08:00:00",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			var d util.LocalDate
			require.NoError(t, d.Scan(value))
			assert.Equal(t, "2024-06-01", d.String())
		})
	}

	t.Run("Nil", func(t *testing.T) {
		d := util.NewLocalDate(2024, 1, 1)
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("Unsupported", func(t *testing.T) {
		var d util.LocalDate
		assert.Error(t, d.Scan(42))
	})
}
