package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_PerFieldContributions(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   int
	}{
		{
			name:   "exact match contributes 100",
			query:  "maria santos silva",
			fields: []string{"Maria Santos Silva"},
			want:   100,
		},
		{
			name:   "prefix match contributes 50",
			query:  "maria",
			fields: []string{"Maria Santos Silva"},
			want:   50,
		},
		{
			name:   "substring match contributes 20",
			query:  "santos",
			fields: []string{"Maria Santos Silva"},
			want:   20,
		},
		{
			name:   "no match contributes 0",
			query:  "xyz",
			fields: []string{"Maria Santos Silva"},
			want:   0,
		},
		{
			name:   "score sums across fields",
			query:  "car",
			fields: []string{"Cardiologia", "Carlos Lima", "dor no peito"},
			want:   100, // two prefix matches, one miss
		},
		{
			name:   "exact plus substring",
			query:  "cardiologia",
			fields: []string{"Cardiologia", "Consulta de Cardiologia"},
			want:   120,
		},
		{
			name:   "empty fields are skipped",
			query:  "ana",
			fields: []string{"", "Ana Beatriz Costa", ""},
			want:   50,
		},
		{
			name:   "matching is case-insensitive",
			query:  "CARDIOLOGIA",
			fields: []string{"cardiologia"},
			want:   100,
		},
		{
			name:   "no fields yields zero",
			query:  "maria",
			fields: nil,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.query, tt.fields))
		})
	}
}

func TestScore_MultiFieldRanksAboveSingleField(t *testing.T) {
	multi := Score("silva", []string{"Maria Silva", "silva@example.com"})
	single := Score("silva", []string{"Maria Silva", "maria@example.com"})
	assert.Greater(t, multi, single)
}
