package payload_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/payload"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type samplePatch struct {
	Title    payload.Opt[string]
	Status   payload.Opt[string]
	Progress payload.Opt[int]
	Target   payload.Opt[util.LocalDate]
	Skills   payload.Opt[[]string]
	Owner    payload.Opt[int64]
}

var sampleFields = payload.Fields[samplePatch]{
	payload.String("title", func(p *samplePatch) *payload.Opt[string] { return &p.Title }),
	payload.String("status", func(p *samplePatch) *payload.Opt[string] { return &p.Status }).
		Default("Pending").
		NotNull().
		Check(payload.NotBlank),
	payload.Int("progress", func(p *samplePatch) *payload.Opt[int] { return &p.Progress }).
		Aliases("progress", "progressPercentage").
		Default(0).
		Check(payload.Between(0, 100)),
	payload.Date("targetDate", func(p *samplePatch) *payload.Opt[util.LocalDate] { return &p.Target }).
		Aliases("target_date", "targetDate", "endDate"),
	payload.Strings("skills", func(p *samplePatch) *payload.Opt[[]string] { return &p.Skills }),
	payload.Ref("owner", func(p *samplePatch) *payload.Opt[int64] { return &p.Owner }, "ownerId").
		Aliases("owner_id", "ownerId", "owner"),
}

func decode(t *testing.T, raw map[string]any) samplePatch {
	t.Helper()
	p, err := sampleFields.Decode(raw)
	require.NoError(t, err)
	return p
}

func TestDecodeAliases(t *testing.T) {
	t.Run("EveryAliasYieldsTheSameDate", func(t *testing.T) {
		for _, key := range []string{"target_date", "targetDate", "endDate"} {
			p := decode(t, map[string]any{key: "2025-01-01"})
			require.True(t, p.Target.Present(), key)
			assert.Equal(t, "2025-01-01", p.Target.Value.String(), key)
		}
	})

	t.Run("FirstAliasWins", func(t *testing.T) {
		p := decode(t, map[string]any{"endDate": "2025-03-03", "target_date": "2025-01-01"})
		assert.Equal(t, "2025-01-01", p.Target.Value.String())
	})

	t.Run("EarlierEmptyAliasShadowsLaterOnes", func(t *testing.T) {
		p := decode(t, map[string]any{"target_date": "", "targetDate": "2025-01-01"})
		assert.False(t, p.Target.Set)
	})

	t.Run("LaterAliasIgnoredEvenWhenMalformed", func(t *testing.T) {
		p := decode(t, map[string]any{"progress": 10, "progressPercentage": "abc"})
		assert.Equal(t, 10, p.Progress.Value)
	})
}

func TestDecodeIntegers(t *testing.T) {
	cases := map[string]any{
		"native":     40,
		"int64":      int64(40),
		"float":      float64(40),
		"jsonNumber": json.Number("40"),
		"string":     "40",
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			p := decode(t, map[string]any{"progress": v})
			assert.Equal(t, payload.Some(40), p.Progress)
		})
	}

	t.Run("UnparsableStringIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"progress": "forty"})
		require.ErrorIs(t, err, apperror.ErrMalformedField)

		var appErr *apperror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "progress", appErr.Field)
	})

	t.Run("FractionIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"progress": 12.5})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})

	t.Run("OutOfRangeFailsValidation", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"progress": 101})
		assert.ErrorIs(t, err, apperror.ErrValidationFailed)
	})
}

func TestDecodeDates(t *testing.T) {
	t.Run("EmptyStringIsMissing", func(t *testing.T) {
		p := decode(t, map[string]any{"targetDate": ""})
		assert.False(t, p.Target.Set)
	})

	t.Run("NullIsExplicitClear", func(t *testing.T) {
		p := decode(t, map[string]any{"targetDate": nil})
		assert.True(t, p.Target.Set)
		assert.True(t, p.Target.Null)
	})

	t.Run("WrongFormatIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"targetDate": "01/02/2025"})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})

	t.Run("NonStringIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"targetDate": 20250101})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})
}

func TestDecodeStrings(t *testing.T) {
	t.Run("NotBlankRejectsEmpty", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"status": ""})
		assert.ErrorIs(t, err, apperror.ErrValidationFailed)
	})

	t.Run("NotNullRejectsNull", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"status": nil})
		assert.ErrorIs(t, err, apperror.ErrValidationFailed)
	})

	t.Run("WrongTypeIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"title": 12})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})

	t.Run("ListFromArrayOrCSV", func(t *testing.T) {
		p := decode(t, map[string]any{"skills": []any{"go", "sql"}})
		assert.Equal(t, []string{"go", "sql"}, p.Skills.Value)

		p = decode(t, map[string]any{"skills": " go, sql ,,"})
		assert.Equal(t, []string{"go", "sql"}, p.Skills.Value)
	})

	t.Run("ListWithNonStringIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"skills": []any{"go", 1}})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})
}

func TestDecodeRefs(t *testing.T) {
	cases := map[string]map[string]any{
		"snake":         {"owner_id": 7},
		"camel":         {"ownerId": "7"},
		"nested":        {"owner": map[string]any{"ownerId": json.Number("7")}},
		"nestedPlainId": {"owner": map[string]any{"id": 7}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			p := decode(t, raw)
			assert.Equal(t, payload.Some(int64(7)), p.Owner)
		})
	}

	t.Run("NestedWithoutIdIsNull", func(t *testing.T) {
		p := decode(t, map[string]any{"owner": map[string]any{"name": "x"}})
		assert.True(t, p.Owner.Null)
	})

	t.Run("NonPositiveIdIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"owner_id": 0})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})

	t.Run("GarbageIdIsMalformed", func(t *testing.T) {
		_, err := sampleFields.Decode(map[string]any{"ownerId": "abc"})
		assert.ErrorIs(t, err, apperror.ErrMalformedField)
	})
}

func TestApplyDefaults(t *testing.T) {
	p := decode(t, map[string]any{"progress": nil})
	sampleFields.ApplyDefaults(&p)

	assert.Equal(t, payload.Some("Pending"), p.Status)
	assert.Equal(t, payload.Some(0), p.Progress)
	assert.False(t, p.Title.Set)

	p = decode(t, map[string]any{"status": "Done", "progress": 80})
	sampleFields.ApplyDefaults(&p)
	assert.Equal(t, "Done", p.Status.Value)
	assert.Equal(t, 80, p.Progress.Value)

	assert.Equal(t, map[string]any{"status": "Pending", "progress": 0}, sampleFields.Defaults())
}

func TestOverride(t *testing.T) {
	raw := map[string]any{"owner": map[string]any{"id": 1}, "ownerId": 2, "title": "x"}
	out := sampleFields.Override(raw, "owner", int64(9))

	assert.Equal(t, map[string]any{"owner_id": int64(9), "title": "x"}, out)
	assert.Contains(t, raw, "ownerId")
}

func TestOptApply(t *testing.T) {
	title := "old"
	payload.Opt[string]{}.Apply(&title)
	assert.Equal(t, "old", title)

	payload.Some("new").Apply(&title)
	assert.Equal(t, "new", title)

	payload.Null[string]().Apply(&title)
	assert.Equal(t, "", title)

	var rating *int
	payload.Some(3).ApplyPtr(&rating)
	require.NotNil(t, rating)
	assert.Equal(t, 3, *rating)

	payload.Null[int]().ApplyPtr(&rating)
	assert.Nil(t, rating)
}

func TestFromJSON(t *testing.T) {
	raw, err := payload.FromJSON(strings.NewReader(`{"progress": 50, "title": "t"}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("50"), raw["progress"])

	raw, err = payload.FromJSON(strings.NewReader(``))
	require.NoError(t, err)
	assert.Empty(t, raw)

	_, err = payload.FromJSON(strings.NewReader(`[1,2]`))
	assert.ErrorIs(t, err, apperror.ErrMalformedField)

	_, err = payload.FromJSON(strings.NewReader(`{bad`))
	assert.ErrorIs(t, err, apperror.ErrMalformedField)
}
