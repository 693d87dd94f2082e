package reasoning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/errors"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestExtract_ErrorShortCircuits(t *testing.T) {
	report := Extract(RawResult{Error: "timeout"}, "1010-01", "owl-mini", 250*time.Millisecond)

	assert.False(t, report.Valid)
	assert.Equal(t, "timeout", report.ErrorMessage)
	assert.Equal(t, "1010-01", report.MasterCode)
	assert.Equal(t, "owl-mini", report.ReasonerType)
	assert.Equal(t, 250*time.Millisecond, report.Elapsed)

	assert.NotNil(t, report.Issues)
	assert.NotNil(t, report.InferredTriples)
	assert.NotNil(t, report.InferredSubclasses)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.InferredTriples)
	assert.Empty(t, report.InferredSubclasses)
	assert.Nil(t, report.Hierarchy)
}

func TestExtract_ErrorWinsOverOtherFields(t *testing.T) {
	raw := RawResult{
		Error: "reasoner crashed",
		Valid: boolPtr(true),
		Triples: []RawTriple{
			{Subject: "s", Predicate: "p", Object: "o"},
		},
	}

	report := Extract(raw, "1010-01", "owl-mini", 0)

	assert.False(t, report.Valid)
	assert.Equal(t, "reasoner crashed", report.ErrorMessage)
	assert.Empty(t, report.InferredTriples)
}

func TestExtract_NormalizesReplyTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		stamp    any
		expected int64
	}{
		{"rfc3339 string", "2023-01-15T12:30:45Z", 1673785845000},
		{"json number milliseconds", float64(1673785845123), 1673785845123},
		{"json number seconds", float64(1673785845), 1673785845000},
		{"absent", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Extract(RawResult{Timestamp: tt.stamp}, "1010-01", "owl-mini", 0)
			assert.Equal(t, tt.expected, report.ReasonedAt)
			assert.Positive(t, report.ReceivedAt)
			if tt.expected == 0 {
				assert.Zero(t, report.ReasonerLag())
			} else {
				assert.Positive(t, report.ReasonerLag())
			}
		})
	}
}

func TestExtract_TimestampSetOnErrorReports(t *testing.T) {
	report := Extract(RawResult{Error: "timeout", Timestamp: "2023-01-15T12:30:45Z"}, "1010-01", "owl-mini", 0)

	assert.False(t, report.Valid)
	assert.Equal(t, int64(1673785845000), report.ReasonedAt)
	assert.Positive(t, report.ReceivedAt)
}

func TestExtract_ValidDefaultsTrue(t *testing.T) {
	report := Extract(RawResult{}, "1010-01", "owl-mini", 0)

	assert.True(t, report.Valid)
	assert.Empty(t, report.ErrorMessage)
	assert.NotNil(t, report.Issues)
	assert.NotNil(t, report.InferredTriples)
	assert.NotNil(t, report.InferredSubclasses)
}

func TestExtract_ExplicitValidityRespected(t *testing.T) {
	report := Extract(RawResult{Valid: boolPtr(false)}, "1010-01", "owl-mini", 0)
	assert.False(t, report.Valid)

	report = Extract(RawResult{Valid: boolPtr(true)}, "1010-01", "owl-mini", 0)
	assert.True(t, report.Valid)
}

func TestExtract_MapsLists(t *testing.T) {
	raw := RawResult{
		Valid: boolPtr(false),
		Issues: []RawIssue{
			{Type: "cardinality", Description: "more than one bore size"},
		},
		Triples: []RawTriple{
			{Subject: "urn:item:1010-01", Predicate: vocabulary.RdfType, Object: vocabulary.ClassLargeBoreCylinder},
			{Subject: "urn:item:1010-01", Predicate: vocabulary.RdfType, Object: vocabulary.ClassHydraulicCylinder},
		},
		Subclasses: []RawSubclass{
			{Subclass: vocabulary.ClassLargeBoreCylinder, Superclass: vocabulary.ClassHydraulicCylinder},
		},
	}

	report := Extract(raw, "1010-01", "pellet", 0)

	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, ValidationIssue{Type: "cardinality", Description: "more than one bore size"}, report.Issues[0])

	require.Len(t, report.InferredTriples, 2)
	assert.Equal(t, InferredTriple{
		Subject:   "urn:item:1010-01",
		Predicate: vocabulary.RdfType,
		Object:    vocabulary.ClassLargeBoreCylinder,
	}, report.InferredTriples[0])

	require.Len(t, report.InferredSubclasses, 1)
	assert.Equal(t, SubclassPair{
		Subclass:   vocabulary.ClassLargeBoreCylinder,
		Superclass: vocabulary.ClassHydraulicCylinder,
	}, report.InferredSubclasses[0])
}

func TestExtract_Hierarchy(t *testing.T) {
	raw := RawResult{
		Hierarchy: &RawHierarchy{
			Code: "1010-01",
			URI:  "urn:item:1010-01",
			InferredProperties: map[string]string{
				"boreClass": "Large",
			},
			Components: []RawHierarchyComponent{
				{
					Code:          "BRL11120-STD",
					URI:           "urn:item:BRL11120-STD",
					Name:          "Cylinder barrel",
					Spec:          "120mm bore",
					Quantity:      1,
					EffectiveDate: "2024-01-01",
					ExpiryDate:    "2026-12-31",
					InferredProperties: map[string]string{
						"material": "steel",
					},
				},
				{
					Code: "SEL11120-PSS",
					URI:  "urn:item:SEL11120-PSS",
				},
			},
		},
	}

	report := Extract(raw, "1010-01", "owl-mini", 0)

	require.NotNil(t, report.Hierarchy)
	assert.Equal(t, "1010-01", report.Hierarchy.Code)
	assert.Equal(t, "urn:item:1010-01", report.Hierarchy.URI)
	assert.Equal(t, map[string]string{"boreClass": "Large"}, report.Hierarchy.InferredProperties)

	require.Len(t, report.Hierarchy.Components, 2)
	barrel := report.Hierarchy.Components[0]
	assert.Equal(t, "BRL11120-STD", barrel.Code)
	assert.Equal(t, "Cylinder barrel", barrel.Name)
	assert.Equal(t, float64(1), barrel.Quantity)
	assert.Equal(t, "2024-01-01", barrel.EffectiveDate)
	assert.Equal(t, "2026-12-31", barrel.ExpiryDate)
	assert.Equal(t, map[string]string{"material": "steel"}, barrel.InferredProperties)

	// Absent optional fields stay zero and property maps are never nil.
	seal := report.Hierarchy.Components[1]
	assert.Empty(t, seal.Name)
	assert.Zero(t, seal.Quantity)
	assert.Empty(t, seal.EffectiveDate)
	assert.NotNil(t, seal.InferredProperties)
	assert.Empty(t, seal.InferredProperties)
}

func TestDecodeResult(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, raw RawResult)
	}{
		{
			name: "error only",
			data: `{"error":"timeout"}`,
			check: func(t *testing.T, raw RawResult) {
				assert.Equal(t, "timeout", raw.Error)
				assert.Nil(t, raw.Valid)
			},
		},
		{
			name: "validation reply",
			data: `{"valid":false,"validationIssues":[{"type":"cardinality","description":"dup"}]}`,
			check: func(t *testing.T, raw RawResult) {
				require.NotNil(t, raw.Valid)
				assert.False(t, *raw.Valid)
				require.Len(t, raw.Issues, 1)
				assert.Equal(t, "cardinality", raw.Issues[0].Type)
			},
		},
		{
			name: "unknown keys ignored",
			data: `{"valid":true,"engine":"pellet","warnings":[]}`,
			check: func(t *testing.T, raw RawResult) {
				require.NotNil(t, raw.Valid)
				assert.True(t, *raw.Valid)
			},
		},
		{
			name: "camelCase hierarchy dates",
			data: `{"bomHierarchy":{"code":"1010-01","uri":"u","components":[{"code":"c","uri":"cu","effectiveDate":"2024-01-01","expiryDate":"2026-12-31"}]}}`,
			check: func(t *testing.T, raw RawResult) {
				require.NotNil(t, raw.Hierarchy)
				require.Len(t, raw.Hierarchy.Components, 1)
				assert.Equal(t, "2024-01-01", raw.Hierarchy.Components[0].EffectiveDate)
				assert.Equal(t, "2026-12-31", raw.Hierarchy.Components[0].ExpiryDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := DecodeResult([]byte(tt.data))
			require.NoError(t, err)
			tt.check(t, raw)
		})
	}
}

func TestDecodeResult_MalformedJSON(t *testing.T) {
	_, err := DecodeResult([]byte(`{"valid":`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestReport_InferredClasses(t *testing.T) {
	report := Report{
		InferredTriples: []InferredTriple{
			{Subject: "urn:item:1010-01", Predicate: vocabulary.RdfType, Object: vocabulary.ClassLargeBoreCylinder},
			{Subject: "urn:item:1010-01", Predicate: "rdf:type", Object: vocabulary.ClassHeavyDutyCylinder},
			{Subject: "urn:item:1010-01", Predicate: vocabulary.PropHasBoreSize, Object: "120"},
			{Subject: "urn:item:other", Predicate: vocabulary.RdfType, Object: vocabulary.ClassShortStrokeCylinder},
		},
	}

	classes := report.InferredClasses("urn:item:1010-01")
	assert.Equal(t, []string{vocabulary.ClassLargeBoreCylinder, vocabulary.ClassHeavyDutyCylinder}, classes)

	assert.Empty(t, report.InferredClasses("urn:item:unknown"))
	assert.NotNil(t, report.InferredClasses("urn:item:unknown"))
}
