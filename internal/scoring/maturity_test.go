package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaturityTierBoundaries(t *testing.T) {
	cases := []struct {
		pct   float64
		level int
		label string
	}{
		{0, 1, "BASIC"},
		{12.5, 1, "BASIC"},
		{25, 1, "BASIC"},
		{25.1, 2, "RISK-INFORMED"},
		{50, 2, "RISK-INFORMED"},
		{50.1, 3, "REPEATABLE"},
		{75, 3, "REPEATABLE"},
		{75.1, 4, "MANAGED"},
		{90, 4, "MANAGED"},
		{90.1, 5, "ADAPTIVE"},
		{100, 5, "ADAPTIVE"},
	}
	for _, tc := range cases {
		m := maturityForPercentage(tc.pct)
		assert.Equal(t, tc.level, m.Level, "pct %.1f", tc.pct)
		assert.Equal(t, tc.label, m.Label, "pct %.1f", tc.pct)
	}
}

func TestMaturityTiersAreExhaustive(t *testing.T) {
	// Every percentage in [0,100] maps to exactly one tier and the tier
	// sequence is monotonically non-decreasing.
	prev := 0
	for pct := 0.0; pct <= 100.0; pct += 0.25 {
		m := maturityForPercentage(pct)
		assert.GreaterOrEqual(t, m.Level, 1)
		assert.LessOrEqual(t, m.Level, 5)
		assert.GreaterOrEqual(t, m.Level, prev)
		assert.NotEmpty(t, m.Label)
		assert.NotEmpty(t, m.Characteristics)
		assert.NotEmpty(t, m.NextStep)
		prev = m.Level
	}
}

func TestGapAnalysisEffortBuckets(t *testing.T) {
	cases := []struct {
		total, max int
		effort     string
	}{
		{48, 48, "Low - Tuning required"},
		{44, 48, "Low - Tuning required"},              // gap 4 = 8.3%
		{43, 48, "Medium - Dedicated project required"}, // gap 5 = 10.4%
		{34, 48, "Medium - Dedicated project required"}, // gap 14 = 29.2%
		{33, 48, "High - Strategic transformation required"}, // gap 15 = 31.3%
		{0, 48, "High - Strategic transformation required"},
	}
	for _, tc := range cases {
		g := gapAnalysis(tc.total, tc.max)
		assert.Equal(t, tc.total, g.CurrentPoints)
		assert.Equal(t, tc.max, g.TargetPoints)
		assert.Equal(t, tc.max-tc.total, g.GapPoints)
		assert.Equal(t, tc.effort, g.EstimatedEffort, "total %d/%d", tc.total, tc.max)
	}
}

func TestGapAnalysisEmptySchema(t *testing.T) {
	g := gapAnalysis(0, 0)
	assert.Equal(t, 0, g.GapPoints)
	assert.Equal(t, "Low - Tuning required", g.EstimatedEffort)
}
