package scoring

import (
	"testing"

	"github.com/webfacts/presencescore/internal/model"
)

func TestScoreWorkplaceReputation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  *model.RawFindings
		o    *model.ManualOverrides
		want model.Score
	}{
		{
			name: "no data anywhere",
			raw:  &model.RawFindings{},
			want: model.NoData(),
		},
		{
			name: "well-rated claimed employer profile",
			raw: &model.RawFindings{
				Workplace: &model.WorkplaceFindings{
					Rating:         4.0,
					ReviewCount:    25,
					ProfileClaimed: true,
				},
			},
			// rating 56 + volume 15 + claimed 10
			want: model.NewScore(81),
		},
		{
			name: "rating above scale is clamped",
			raw: &model.RawFindings{
				Workplace: &model.WorkplaceFindings{Rating: 9.5},
			},
			want: model.NewScore(70),
		},
		{
			name: "manual corrections only",
			raw:  &model.RawFindings{},
			o: &model.ManualOverrides{
				Workplace: &model.WorkplaceOverride{
					Rating:         model.Ptr(5.0),
					ReviewCount:    model.Ptr(60),
					ProfileClaimed: model.Ptr(true),
				},
			},
			want: model.NewScore(100),
		},
		{
			name: "empty manual record stays automated only",
			raw: &model.RawFindings{
				Workplace: &model.WorkplaceFindings{Rating: 4.0},
			},
			o:    &model.ManualOverrides{Workplace: &model.WorkplaceOverride{}},
			want: model.NewScore(56),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ScoreWorkplaceReputation(tt.raw, tt.o)
			if got != tt.want {
				t.Errorf("ScoreWorkplaceReputation() = %v, want %v", got, tt.want)
			}
		})
	}
}
