package scoring

import (
	"testing"

	"github.com/webfacts/presencescore/internal/model"
)

func TestScoreHourlyRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  *model.RawFindings
		o    *model.ManualOverrides
		want model.Score
	}{
		{
			name: "no own rates yields no data",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
			},
			o:    &model.ManualOverrides{},
			want: model.NoData(),
		},
		{
			name: "no regional rates yields no data",
			raw:  &model.RawFindings{},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierJourneyman: 55},
				},
			},
			want: model.NoData(),
		},
		{
			name: "premium positioning enters the top band",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierJourneyman: 55},
				},
			},
			want: model.NewScore(85),
		},
		{
			name: "market-level positioning lands mid band",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
				},
			},
			want: model.NewScore(72),
		},
		{
			name: "below-market positioning is scored down",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierJourneyman: 35},
				},
			},
			want: model.NewScore(50),
		},
		{
			name: "reviewer regional rates replace market data",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 100},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates:      map[model.RateTier]float64{model.RateTierJourneyman: 55},
					RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
				},
			},
			want: model.NewScore(85),
		},
		{
			name: "tiers without a counterpart are ignored",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierHelper: 30},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierMaster: 80},
				},
			},
			want: model.NoData(),
		},
		{
			name: "far above regional average is capped at 100",
			raw: &model.RawFindings{
				RegionalRates: map[model.RateTier]float64{model.RateTierJourneyman: 50},
			},
			o: &model.ManualOverrides{
				Rates: &model.RatesOverride{
					OwnRates: map[model.RateTier]float64{model.RateTierJourneyman: 150},
				},
			},
			want: model.NewScore(100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ScoreHourlyRates(tt.raw, tt.o)
			if got != tt.want {
				t.Errorf("ScoreHourlyRates() = %v, want %v", got, tt.want)
			}
		})
	}
}
