package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name string
		a    map[string]string
		b    map[string]string
		want float64
	}{
		{
			name: "identical full specifications score 1",
			a:    map[string]string{"bore": "100", "stroke": "200", "series": "10", "rodEndType": "Y", "installationType": "FA"},
			b:    map[string]string{"bore": "100", "stroke": "200", "series": "10", "rodEndType": "Y", "installationType": "FA"},
			want: 1.0,
		},
		{
			// bore closeness 50/100 = 0.5, stroke exact, series mismatch;
			// compared weight 0.30+0.25+0.20 = 0.75.
			name: "partial overlap weights the shared dimensions",
			a:    map[string]string{"bore": "100", "stroke": "200", "series": "10"},
			b:    map[string]string{"bore": "50", "stroke": "200", "series": "11"},
			want: (0.30*0.5 + 0.25*1.0) / 0.75,
		},
		{
			name: "enumeration mismatch scores zero for that dimension",
			a:    map[string]string{"series": "10"},
			b:    map[string]string{"series": "11"},
			want: 0,
		},
		{
			name: "dimensions missing on one side are not compared",
			a:    map[string]string{"bore": "100", "series": "10"},
			b:    map[string]string{"bore": "100"},
			want: 1.0,
		},
		{
			name: "no shared dimensions scores zero",
			a:    map[string]string{"bore": "100"},
			b:    map[string]string{"stroke": "200"},
			want: 0,
		},
		{
			name: "non-numeric bore skips the dimension",
			a:    map[string]string{"bore": "abc", "series": "10"},
			b:    map[string]string{"bore": "100", "series": "10"},
			want: 1.0,
		},
		{
			name: "empty maps score zero",
			a:    map[string]string{},
			b:    map[string]string{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scorer.Score(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScorer_ScoreCommutes(t *testing.T) {
	scorer := NewScorer()
	a := map[string]string{"bore": "80", "stroke": "300", "series": "11"}
	b := map[string]string{"bore": "120", "stroke": "250", "series": "10"}
	assert.InDelta(t, scorer.Score(a, b), scorer.Score(b, a), 1e-9)
}

func TestScorer_ScoreBounded(t *testing.T) {
	scorer := NewScorer()
	pairs := []map[string]string{
		{"bore": "1", "stroke": "10000", "series": "13"},
		{"bore": "500", "stroke": "10", "series": "10", "rodEndType": "P"},
		{"bore": "0", "stroke": "0"},
	}
	for _, a := range pairs {
		for _, b := range pairs {
			score := scorer.Score(a, b)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}
