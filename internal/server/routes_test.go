package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kupikrutcher/relationship-app/internal/engine"
	"github.com/kupikrutcher/relationship-app/internal/model"
)

const giftBody = `{"date":"2026-06-14T10:00:00Z","type":"gift","title":"Necklace","ratings":{"cost":8,"romanticism":6,"scale":2},"completed":true}`

func TestAddEvent(t *testing.T) {
	srv := testServer(t)

	w := do(t, srv, "POST", "/api/events", giftBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	e := decode[model.Event](t, w)
	assert.Equal(t, "id-1", e.ID)
	require.NotNil(t, e.Significance)
	assert.InDelta(t, 5.8, *e.Significance, 1e-9)

	list := decode[[]model.Event](t, do(t, srv, "GET", "/api/events", ""))
	require.Len(t, list, 1)
	assert.Equal(t, "Necklace", list[0].Title)
}

func TestAddEventValidation(t *testing.T) {
	srv := testServer(t)

	w := do(t, srv, "POST", "/api/events", `{"date":"2026-06-14T10:00:00Z","type":"fight","title":"Dishes","ratings":{"cost":1,"romanticism":1,"scale":1}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "validation failed", resp.Error)
	var fields []string
	for _, f := range resp.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"ratings", "fightDetails"}, fields)

	w = do(t, srv, "POST", "/api/events", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, decode[[]model.Event](t, do(t, srv, "GET", "/api/events", "")))
}

func TestListEventsByDay(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/events", giftBody)
	do(t, srv, "POST", "/api/events", `{"date":"2026-06-20T10:00:00Z","type":"date","title":"Picnic"}`)

	w := do(t, srv, "GET", "/api/events?day=2026-06-20", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]model.Event](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Picnic", list[0].Title)

	w = do(t, srv, "GET", "/api/events?day=20.06.2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/events", `{"date":"2026-06-20T10:00:00Z","type":"date","title":"Picnic"}`)

	w := do(t, srv, "PATCH", "/api/events/id-1", `{"completed":true,"title":"Picnic in the park"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	e := decode[model.Event](t, w)
	assert.True(t, e.Completed)
	assert.Equal(t, "Picnic in the park", e.Title)

	w = do(t, srv, "PATCH", "/api/events/missing", `{"completed":true}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, srv, "PATCH", "/api/events/id-1", `{"type":"party"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, srv, "DELETE", "/api/events/id-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, srv, "DELETE", "/api/events/id-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, decode[[]model.Event](t, do(t, srv, "GET", "/api/events", "")))
}

func TestUpdateEventKeepsFightRatingsExclusive(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/events", `{"date":"2026-06-10T20:00:00Z","type":"fight","title":"Dishes","fightDetails":{"reason":"dishes","notes":""}}`)
	do(t, srv, "POST", "/api/events", giftBody)

	w := do(t, srv, "PATCH", "/api/events/id-1", `{"ratings":{"cost":5,"romanticism":5,"scale":5}}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	body := decode[errorResponse](t, w)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "ratings", body.Fields[0].Field)

	w = do(t, srv, "PATCH", "/api/events/id-2", `{"type":"fight"}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = do(t, srv, "PATCH", "/api/events/id-2", `{"fightDetails":{"reason":"late","notes":""}}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	events := decode[[]model.Event](t, do(t, srv, "GET", "/api/events", ""))
	require.Len(t, events, 2)
	byID := map[string]model.Event{}
	for _, e := range events {
		byID[e.ID] = e
	}
	assert.Equal(t, model.EventFight, byID["id-1"].Type)
	assert.Nil(t, byID["id-1"].Ratings)
	assert.Nil(t, byID["id-1"].Significance)
	assert.Equal(t, model.EventGift, byID["id-2"].Type)
	assert.Nil(t, byID["id-2"].FightDetails)
	assert.NotNil(t, byID["id-2"].Ratings)

	w = do(t, srv, "PATCH", "/api/events/id-1", `{"fightDetails":{"reason":"dishes","notes":"sorted out"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "sorted out", decode[model.Event](t, w).FightDetails.Notes)
}

func TestWishes(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/wishes", `{"title":"Kindle","category":"books"}`)
	do(t, srv, "POST", "/api/wishes", `{"title":"Scarf"}`)

	w := do(t, srv, "POST", "/api/wishes/id-1/fulfill", "")
	require.Equal(t, http.StatusOK, w.Code)
	wish := decode[model.Wish](t, w)
	assert.True(t, wish.Fulfilled)
	require.NotNil(t, wish.FulfilledDate)
	assert.True(t, wish.FulfilledDate.Equal(testNow))

	open := decode[[]model.Wish](t, do(t, srv, "GET", "/api/wishes?fulfilled=false", ""))
	require.Len(t, open, 1)
	assert.Equal(t, "Scarf", open[0].Title)

	done := decode[[]model.Wish](t, do(t, srv, "GET", "/api/wishes?fulfilled=true", ""))
	require.Len(t, done, 1)
	assert.Equal(t, "Kindle", done[0].Title)

	assert.Len(t, decode[[]model.Wish](t, do(t, srv, "GET", "/api/wishes", "")), 2)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, "GET", "/api/wishes?fulfilled=maybe", "").Code)

	w = do(t, srv, "PATCH", "/api/wishes/id-2", `{"description":"red wool"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, decode[model.Wish](t, w).Description)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, "POST", "/api/wishes", `{"title":"  "}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, "POST", "/api/wishes/missing/fulfill", "").Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, "DELETE", "/api/wishes/id-2", "").Code)
	assert.Len(t, decode[[]model.Wish](t, do(t, srv, "GET", "/api/wishes", "")), 1)
}

func TestReminders(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/events", giftBody)

	w := do(t, srv, "POST", "/api/reminders", `{"eventType":"gift","frequencyDays":14}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rem := decode[model.Reminder](t, w)
	assert.True(t, rem.Enabled)

	do(t, srv, "POST", "/api/reminders", `{"eventType":"date","frequencyDays":7,"enabled":false}`)

	reports := decode[[]engine.ReminderReport](t, do(t, srv, "GET", "/api/reminders/status", ""))
	require.Len(t, reports, 2)
	require.NotNil(t, reports[0].Status)
	assert.False(t, reports[0].Status.NeedsReminder)
	assert.Equal(t, "13 days left", reports[0].Status.Message)
	assert.Nil(t, reports[1].Status)

	w = do(t, srv, "PATCH", "/api/reminders/id-2", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[model.Reminder](t, w).Enabled)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, "POST", "/api/reminders", `{"eventType":"fight","frequencyDays":7}`).Code)
	assert.Equal(t, http.StatusNoContent, do(t, srv, "DELETE", "/api/reminders/id-2", "").Code)
	assert.Len(t, decode[[]model.Reminder](t, do(t, srv, "GET", "/api/reminders", "")), 1)
}

func TestMoods(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/moods", `{"date":"2026-06-10T09:00:00Z","mood":"calm"}`)
	do(t, srv, "POST", "/api/moods", `{"date":"2026-06-14T09:00:00Z","mood":"happy","notes":"sunny"}`)
	do(t, srv, "POST", "/api/moods", `{"date":"2026-06-12T09:00:00Z","mood":"sad"}`)

	recent := decode[[]model.MoodEntry](t, do(t, srv, "GET", "/api/moods?limit=2", ""))
	require.Len(t, recent, 2)
	assert.Equal(t, model.MoodHappy, recent[0].Mood)
	assert.Equal(t, model.MoodSad, recent[1].Mood)

	assert.Len(t, decode[[]model.MoodEntry](t, do(t, srv, "GET", "/api/moods", "")), 3)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, "GET", "/api/moods?limit=-1", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, "POST", "/api/moods", `{"date":"2026-06-14T09:00:00Z","mood":"grumpy"}`).Code)

	w := do(t, srv, "PATCH", "/api/moods/id-1", `{"mood":"romantic"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.MoodRomantic, decode[model.MoodEntry](t, w).Mood)
	assert.Equal(t, http.StatusNoContent, do(t, srv, "PATCH", "/api/moods/missing", `{"mood":"calm"}`).Code)
}

func TestSettings(t *testing.T) {
	srv := testServer(t)

	st := decode[model.Settings](t, do(t, srv, "GET", "/api/settings", ""))
	assert.Equal(t, model.DefaultSettings(), st)

	w := do(t, srv, "PATCH", "/api/settings", `{"partnerName":"Alex","significanceFormula":{"costWeight":1,"romanticismWeight":0,"scaleWeight":0}}`)
	require.Equal(t, http.StatusOK, w.Code)
	st = decode[model.Settings](t, w)
	assert.Equal(t, "Alex", st.PartnerName)
	assert.False(t, st.IsPremium)
	assert.Equal(t, model.Formula{CostWeight: 1}, st.SignificanceFormula)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, "PATCH", "/api/settings", `{"partnerName":""}`).Code)
}

func TestInsights(t *testing.T) {
	srv := testServer(t)
	do(t, srv, "POST", "/api/events", `{"date":"2026-05-01T10:00:00Z","type":"gift","title":"Book","ratings":{"cost":2,"romanticism":2,"scale":2},"completed":true}`)

	w := do(t, srv, "GET", "/api/insights", "")
	require.Equal(t, http.StatusOK, w.Code)

	ins := decode[model.Insights](t, w)
	assert.Equal(t, 1, ins.TotalGifts)
	require.NotNil(t, ins.DaysSinceLastGift)
	assert.Equal(t, 45, *ins.DaysSinceLastGift)
	assert.Contains(t, ins.Recommendations, engine.GiftGapRecommendation(45))
	assert.Contains(t, ins.Recommendations, engine.RecLogMood)
}
