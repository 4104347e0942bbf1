package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

func TestComputeInsightsEmpty(t *testing.T) {
	got := ComputeInsights(nil, nil, testNow)

	assert.Equal(t, 0, got.TotalGifts)
	assert.Equal(t, 0.0, got.AverageSignificance)
	assert.Equal(t, 0, got.FightFrequency)
	assert.Nil(t, got.LastGiftDate)
	assert.Nil(t, got.DaysSinceLastGift)
	assert.Equal(t, model.MoodNeutral, got.AverageMood)
	assert.Equal(t, model.TrendStable, got.MoodTrend)
	assert.Equal(t, []string{RecLogMood}, got.Recommendations)
}

func TestComputeInsightsSingleOldGift(t *testing.T) {
	sig := Significance(&model.Ratings{Cost: 10, Romanticism: 10, Scale: 10}, model.DefaultFormula())
	require.InDelta(t, 10.0, sig, 1e-9)

	events := []model.Event{gift(daysAgo(15), true, &sig)}
	got := ComputeInsights(events, nil, testNow)

	assert.Equal(t, 1, got.TotalGifts)
	require.NotNil(t, got.DaysSinceLastGift)
	assert.Equal(t, 15, *got.DaysSinceLastGift)
	require.NotNil(t, got.LastGiftDate)
	assert.True(t, got.LastGiftDate.Equal(daysAgo(15)))
	assert.InDelta(t, 10.0, got.AverageSignificance, 1e-9)
	assert.Contains(t, got.Recommendations, GiftGapRecommendation(15))
	assert.NotContains(t, got.Recommendations, RecSignificance)
}

func TestComputeInsightsGiftGapBoundary(t *testing.T) {
	sig := 8.0
	got := ComputeInsights([]model.Event{gift(daysAgo(14), true, &sig)}, nil, testNow)
	require.NotNil(t, got.DaysSinceLastGift)
	assert.Equal(t, 14, *got.DaysSinceLastGift)
	assert.NotContains(t, got.Recommendations, GiftGapRecommendation(14))
}

func TestComputeInsightsDaysSinceFloors(t *testing.T) {
	sig := 8.0
	date := testNow.Add(-(20*24*time.Hour + 23*time.Hour))
	got := ComputeInsights([]model.Event{gift(date, true, &sig)}, nil, testNow)
	require.NotNil(t, got.DaysSinceLastGift)
	assert.Equal(t, 20, *got.DaysSinceLastGift)
}

func TestComputeInsightsGiftScopes(t *testing.T) {
	high, low := 9.0, 3.0
	events := []model.Event{
		gift(daysAgo(60), true, &high), // all-time only
		gift(daysAgo(2), true, &low),
		gift(daysAgo(1), true, nil), // counts as 0
		gift(daysAgo(0), false, &high), // not completed
	}
	got := ComputeInsights(events, nil, testNow)

	assert.Equal(t, 3, got.TotalGifts)
	assert.InDelta(t, 1.5, got.AverageSignificance, 1e-9)
	require.NotNil(t, got.LastGiftDate)
	assert.True(t, got.LastGiftDate.Equal(daysAgo(1)))
	assert.Equal(t, 1, *got.DaysSinceLastGift)
	assert.Contains(t, got.Recommendations, RecSignificance)
}

func TestComputeInsightsOnlyOldGifts(t *testing.T) {
	sig := 9.0
	got := ComputeInsights([]model.Event{gift(daysAgo(45), true, &sig)}, nil, testNow)

	assert.Equal(t, 1, got.TotalGifts)
	assert.Equal(t, 0.0, got.AverageSignificance)
	assert.Equal(t, []string{GiftGapRecommendation(45), RecLogMood}, got.Recommendations)
}

func TestComputeInsightsNoRecentGiftsSkipsSignificanceAdvice(t *testing.T) {
	got := ComputeInsights([]model.Event{fight(daysAgo(2))}, nil, testNow)
	assert.Equal(t, 0.0, got.AverageSignificance)
	assert.NotContains(t, got.Recommendations, RecSignificance)

	zero := 0.0
	got = ComputeInsights([]model.Event{gift(daysAgo(2), true, &zero)}, nil, testNow)
	assert.Contains(t, got.Recommendations, RecSignificance)
}

func TestComputeInsightsFights(t *testing.T) {
	three := []model.Event{fight(daysAgo(1)), fight(daysAgo(5)), fight(daysAgo(29))}
	got := ComputeInsights(three, nil, testNow)
	assert.Equal(t, 3, got.FightFrequency)
	assert.Contains(t, got.Recommendations, RecConflict)

	two := append([]model.Event{fight(daysAgo(31)), fight(daysAgo(90))}, three[:2]...)
	got = ComputeInsights(two, nil, testNow)
	assert.Equal(t, 2, got.FightFrequency)
	assert.NotContains(t, got.Recommendations, RecConflict)
}

func TestComputeInsightsFightCompletionIgnored(t *testing.T) {
	f := fight(daysAgo(3))
	f.Completed = true
	events := []model.Event{f, fight(daysAgo(4)), fight(daysAgo(5))}
	assert.Equal(t, 3, ComputeInsights(events, nil, testNow).FightFrequency)
}

func TestComputeInsightsWindowBoundary(t *testing.T) {
	moods := []model.MoodEntry{
		moodAt(testNow.Add(-Window), model.MoodHappy),                 // inclusive
		moodAt(testNow.Add(-Window-time.Millisecond), model.MoodSad), // outside
	}
	got := ComputeInsights(nil, moods, testNow)
	assert.Equal(t, model.MoodHappy, got.AverageMood)
}

func TestComputeInsightsMoodMode(t *testing.T) {
	tests := []struct {
		name  string
		moods []model.Mood
		want  model.Mood
	}{
		{"single", []model.Mood{model.MoodCalm}, model.MoodCalm},
		{"clear winner", []model.Mood{model.MoodSad, model.MoodHappy, model.MoodHappy}, model.MoodHappy},
		{"tie goes to later first occurrence", []model.Mood{model.MoodHappy, model.MoodSad}, model.MoodSad},
		{"tie not alphabetical", []model.Mood{model.MoodSad, model.MoodHappy, model.MoodHappy, model.MoodSad}, model.MoodHappy},
		{"earlier max survives", []model.Mood{model.MoodRomantic, model.MoodRomantic, model.MoodCalm, model.MoodAnxious}, model.MoodRomantic},
		{"three way tie", []model.Mood{model.MoodExcited, model.MoodCalm, model.MoodAnxious}, model.MoodAnxious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []model.MoodEntry
			for i, m := range tt.moods {
				entries = append(entries, moodAt(daysAgo(i), m))
			}
			assert.Equal(t, tt.want, ComputeInsights(nil, entries, testNow).AverageMood)
		})
	}
}

func TestComputeInsightsEnoughMoodsAndGoodGifts(t *testing.T) {
	var moods []model.MoodEntry
	for i := 0; i < 7; i++ {
		moods = append(moods, moodAt(daysAgo(i), model.MoodHappy))
	}
	sig := 7.5
	got := ComputeInsights([]model.Event{gift(daysAgo(3), true, &sig)}, moods, testNow)

	assert.Empty(t, got.Recommendations)
	assert.NotNil(t, got.Recommendations)
	assert.Equal(t, model.MoodHappy, got.AverageMood)
	assert.Equal(t, model.TrendStable, got.MoodTrend)
}

func TestComputeInsightsRecommendationOrder(t *testing.T) {
	sig := 1.0
	events := []model.Event{
		gift(daysAgo(20), true, &sig),
		fight(daysAgo(1)), fight(daysAgo(2)), fight(daysAgo(3)),
	}
	got := ComputeInsights(events, nil, testNow)
	assert.Equal(t, []string{GiftGapRecommendation(20), RecConflict, RecSignificance, RecLogMood}, got.Recommendations)
}

func TestDaysSinceFutureDate(t *testing.T) {
	assert.Equal(t, -1, DaysSince(testNow.Add(time.Hour), testNow))
}
