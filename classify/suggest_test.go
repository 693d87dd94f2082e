package classify

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuntinLin/bom-owl-sub002/metric"
	"github.com/JuntinLin/bom-owl-sub002/vocabulary"
)

func suggestionCodes(list []ComponentSuggestion) []string {
	codes := make([]string, 0, len(list))
	for _, s := range list {
		codes = append(codes, s.Code)
	}
	return codes
}

func findSuggestion(t *testing.T, list []ComponentSuggestion, code string) ComponentSuggestion {
	t.Helper()
	for _, s := range list {
		if s.Code == code {
			return s
		}
	}
	t.Fatalf("suggestion %s not found in %v", code, suggestionCodes(list))
	return ComponentSuggestion{}
}

func TestGenerateSuggestions_LargeHeavyDuty(t *testing.T) {
	suggestions := quietEngine().GenerateSuggestions(map[string]string{
		SpecBore:   "120",
		SpecSeries: "11",
	})

	// Every conditional rule fires: bore>80, bore>100 and series 11.
	require.Len(t, suggestions, 16)

	corrosion := findSuggestion(t, suggestions, "BRL11120-CRS")
	assert.Equal(t, vocabulary.ClassBarrel, corrosion.Category)
	assert.Equal(t, 0.9, corrosion.Compatibility)

	reinforced := findSuggestion(t, suggestions, "PST11120-HDR")
	assert.Equal(t, vocabulary.ClassPiston, reinforced.Category)
	assert.Equal(t, 0.95, reinforced.Compatibility)

	buffer := findSuggestion(t, suggestions, "SEL11120-BFR")
	assert.Equal(t, vocabulary.ClassBufferSeal, buffer.Category)
	assert.Equal(t, 0.8, buffer.Compatibility)

	tieRods := findSuggestion(t, suggestions, "FST11120-TRD")
	assert.Equal(t, vocabulary.ClassTieRod, tieRods.Category)
	assert.Equal(t, 8, tieRods.Quantity)
	assert.Equal(t, 1.0, tieRods.Compatibility)
}

func TestGenerateSuggestions_RodSizedByDerivedDiameter(t *testing.T) {
	suggestions := quietEngine().GenerateSuggestions(map[string]string{
		SpecBore:   "120",
		SpecSeries: "11",
	})

	// floor(120 * 0.6) = 72.
	rod := findSuggestion(t, suggestions, "ROD1172-STD")
	assert.Equal(t, vocabulary.ClassPistonRod, rod.Category)
	chrome := findSuggestion(t, suggestions, "ROD1172-CHR")
	assert.Equal(t, 0.95, chrome.Compatibility)
	bushing := findSuggestion(t, suggestions, "BSH1172-ROD")
	assert.Equal(t, vocabulary.ClassRodBushing, bushing.Category)
	guide := findSuggestion(t, suggestions, "BSH1172-GDE")
	assert.Equal(t, 0.8, guide.Compatibility)
}

func TestGenerateSuggestions_SmallStandard(t *testing.T) {
	suggestions := quietEngine().GenerateSuggestions(map[string]string{
		SpecBore:   "40",
		SpecSeries: "10",
	})

	// No conditional rule fires at bore 40, series 10.
	require.Len(t, suggestions, 12)

	codes := suggestionCodes(suggestions)
	assert.NotContains(t, codes, "BRL1040-CRS")
	assert.NotContains(t, codes, "PST1040-HDR")
	assert.NotContains(t, codes, "SEL1040-BFR")
	assert.NotContains(t, codes, "BSH1024-GDE")

	// floor(40 * 0.6) = 24.
	findSuggestion(t, suggestions, "ROD1024-STD")

	tieRods := findSuggestion(t, suggestions, "FST1040-TRD")
	assert.Equal(t, 4, tieRods.Quantity)
}

func TestGenerateSuggestions_TieRodQuantityLadder(t *testing.T) {
	tests := []struct {
		bore int
		want int
	}{
		{30, 4},
		{50, 4},
		{51, 6},
		{100, 6},
		{101, 8},
		{150, 8},
		{151, 12},
		{300, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tieRodQuantity(tt.bore), "bore %d", tt.bore)
	}
}

func TestGenerateSuggestions_Deterministic(t *testing.T) {
	specs := map[string]string{SpecBore: "90", SpecSeries: "12", SpecStroke: "400"}
	e := quietEngine()

	first := e.GenerateSuggestions(specs)
	second := e.GenerateSuggestions(specs)

	assert.Equal(t, first, second)
}

func TestGenerateSuggestions_RequiresBoreAndSeries(t *testing.T) {
	tests := []struct {
		name  string
		specs map[string]string
	}{
		{"empty", map[string]string{}},
		{"missing series", map[string]string{SpecBore: "80"}},
		{"missing bore", map[string]string{SpecSeries: "10"}},
		{"non-numeric bore", map[string]string{SpecBore: "8O", SpecSeries: "10"}},
	}

	e := quietEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := e.GenerateSuggestions(tt.specs)
			assert.NotNil(t, suggestions)
			assert.Empty(t, suggestions)
		})
	}
}

func TestGenerateSuggestions_WellFormed(t *testing.T) {
	suggestions := quietEngine().GenerateSuggestions(map[string]string{
		SpecBore:   "120",
		SpecSeries: "11",
	})

	for _, s := range suggestions {
		assert.NotEmpty(t, s.Category, "code %s", s.Code)
		assert.NotEmpty(t, s.Name, "code %s", s.Code)
		assert.NotEmpty(t, s.Description, "code %s", s.Code)
		assert.Regexp(t, `^[A-Z]{3}11\d+-[A-Z]{3}$`, s.Code)
		assert.GreaterOrEqual(t, s.Quantity, 1, "code %s", s.Code)
		assert.GreaterOrEqual(t, s.Compatibility, 0.0, "code %s", s.Code)
		assert.LessOrEqual(t, s.Compatibility, 1.0, "code %s", s.Code)
	}
}

func TestGenerateSuggestions_Metrics(t *testing.T) {
	m := metric.NewMetrics()
	e := New(WithLogger(quietLogger()), WithMetrics(m))

	suggestions := e.GenerateSuggestions(map[string]string{
		SpecBore:   "120",
		SpecSeries: "11",
	})

	assert.Equal(t, float64(len(suggestions)), testutil.ToFloat64(m.SuggestionsGenerated))
}
