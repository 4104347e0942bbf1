package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// Insights are computed fresh on every call over a trailing window:
//   - 30 days ending at now, lower bound inclusive
//   - gift totals and the last gift are all-time, averages are windowed
//   - mood trend is fixed at "stable"
//   - recommendations are independent and uncapped
//   - the low-significance advice needs at least one completed gift in the
//     window, so an empty journal only asks for mood entries

// Window is the length of the rolling insights window.
const Window = 30 * 24 * time.Hour

const (
	giftGapDays          = 14
	fightThreshold       = 2
	lowSignificance      = 5.0
	minMoodEntriesLogged = 7
)

// Fixed recommendation texts.
const (
	// RecConflict follows more than two fights in the window.
	RecConflict = "Several fights over the last month. It may be worth talking things through."

	// RecSignificance follows a low average significance of recent gifts.
	RecSignificance = "Try making your gifts more romantic or larger in scale."

	// RecLogMood follows fewer than seven mood entries in the window.
	RecLogMood = "Log your mood more often for more accurate insights."
)

// GiftGapRecommendation is the message for a long gap since the last gift.
func GiftGapRecommendation(days int) string {
	return fmt.Sprintf("It has been %d days since the last gift. Time to surprise your partner!", days)
}

// ComputeInsights aggregates events and mood entries relative to now.
func ComputeInsights(events []model.Event, moods []model.MoodEntry, now time.Time) model.Insights {
	windowStart := now.Add(-Window)
	inWindow := func(t time.Time) bool { return !t.Before(windowStart) }

	var recentMoods []model.MoodEntry
	for _, m := range moods {
		if inWindow(m.Date) {
			recentMoods = append(recentMoods, m)
		}
	}

	var (
		totalGifts  int
		recentGifts int
		sigSum      float64
		lastGift    *model.Event
		fights      int
	)
	for i := range events {
		e := &events[i]
		switch {
		case e.Type == model.EventGift && e.Completed:
			totalGifts++
			if lastGift == nil || e.Date.After(lastGift.Date) {
				lastGift = e
			}
			if inWindow(e.Date) {
				recentGifts++
				if e.Significance != nil {
					sigSum += *e.Significance
				}
			}
		case e.Type == model.EventFight:
			if inWindow(e.Date) {
				fights++
			}
		}
	}

	avgSignificance := 0.0
	if recentGifts > 0 {
		avgSignificance = sigSum / float64(recentGifts)
	}

	out := model.Insights{
		AverageMood:         dominantMood(recentMoods),
		MoodTrend:           model.TrendStable,
		TotalGifts:          totalGifts,
		AverageSignificance: avgSignificance,
		FightFrequency:      fights,
		Recommendations:     []string{},
	}
	if lastGift != nil {
		d := lastGift.Date
		days := DaysSince(d, now)
		out.LastGiftDate = &d
		out.DaysSinceLastGift = &days
	}

	if out.DaysSinceLastGift != nil && *out.DaysSinceLastGift > giftGapDays {
		out.Recommendations = append(out.Recommendations, GiftGapRecommendation(*out.DaysSinceLastGift))
	}
	if fights > fightThreshold {
		out.Recommendations = append(out.Recommendations, RecConflict)
	}
	if recentGifts > 0 && avgSignificance < lowSignificance {
		out.Recommendations = append(out.Recommendations, RecSignificance)
	}
	if len(recentMoods) < minMoodEntriesLogged {
		out.Recommendations = append(out.Recommendations, RecLogMood)
	}
	return out
}

// DaysSince returns the whole days elapsed from t to now, floored on the
// millisecond difference.
func DaysSince(t, now time.Time) int {
	const dayMillis = 24 * 60 * 60 * 1000
	return int(math.Floor(float64(now.UnixMilli()-t.UnixMilli()) / dayMillis))
}

type moodCount struct {
	mood  model.Mood
	count int
}

// dominantMood returns the most frequent mood. Counts are kept in
// first-occurrence order and reduced left to right, keeping the accumulator
// only while its count is strictly greater; on a tie the later mood wins.
func dominantMood(entries []model.MoodEntry) model.Mood {
	var counts []moodCount
	index := make(map[model.Mood]int)
	for _, e := range entries {
		i, ok := index[e.Mood]
		if !ok {
			i = len(counts)
			index[e.Mood] = i
			counts = append(counts, moodCount{mood: e.Mood})
		}
		counts[i].count++
	}
	if len(counts) == 0 {
		return model.MoodNeutral
	}

	best := counts[0]
	for _, c := range counts[1:] {
		if !(best.count > c.count) {
			best = c
		}
	}
	return best.mood
}
