package records

import "github.com/kupikrutcher/relationship-app/internal/model"

func cloneSlice[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneEvent(e model.Event) model.Event {
	e.Description = clonePtr(e.Description)
	e.Mood = clonePtr(e.Mood)
	e.Ratings = clonePtr(e.Ratings)
	e.Significance = clonePtr(e.Significance)
	e.FightDetails = clonePtr(e.FightDetails)
	return e
}

func cloneWish(w model.Wish) model.Wish {
	w.Description = clonePtr(w.Description)
	w.Category = clonePtr(w.Category)
	w.FulfilledDate = clonePtr(w.FulfilledDate)
	return w
}

func cloneReminder(r model.Reminder) model.Reminder {
	r.LastDone = clonePtr(r.LastDone)
	return r
}

func cloneMood(m model.MoodEntry) model.MoodEntry {
	m.Notes = clonePtr(m.Notes)
	return m
}

func cloneSettings(s model.Settings) model.Settings {
	s.AvatarPhoto = clonePtr(s.AvatarPhoto)
	return s
}
