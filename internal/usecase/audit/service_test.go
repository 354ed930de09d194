package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

func sampleMeetings() []entities.Meeting {
	return []entities.Meeting{
		{
			ID: 1, Title: "Platform architecture review", Description: "kubernetes migration",
			Date: "2025-03-03", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60,
			MeetingType: entities.MeetingTypeArchitecture,
			Attendees:   []string{"staff-eng@corp.com"},
		},
		{
			ID: 2, Title: "Weekly status", Description: "",
			Date: "2025-03-03", StartTime: "09:00", EndTime: "09:30", DurationMinutes: 30,
			MeetingType: entities.MeetingTypeStatusUpdate,
		},
		{
			ID: 3, Title: "Daily standup", Description: "",
			Date: "2025-03-04", StartTime: "09:15", EndTime: "09:30", DurationMinutes: 15,
			MeetingType: entities.MeetingTypeStandup, Recurring: true,
		},
	}
}

func TestAudit_SortsAscendingByScore(t *testing.T) {
	svc := NewService(zap.NewNop())

	results, summary := svc.Audit(sampleMeetings())

	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].AlignmentScore, results[i].AlignmentScore)
	}

	// Output is a permutation of the input
	seen := map[int]bool{}
	for _, r := range results {
		seen[r.Entry.ID] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)

	assert.Equal(t, 3, summary.TotalMeetings)
	assert.Equal(t, summary.TotalMeetings-summary.NeedsAttention >= 0, true)
}

func TestAudit_StableOnTies(t *testing.T) {
	svc := NewService(zap.NewNop())

	// Identical meetings score identically; input order must survive.
	m := entities.Meeting{Title: "Weekly status", MeetingType: entities.MeetingTypeStatusUpdate}
	a, b, c := m, m, m
	a.ID, b.ID, c.ID = 10, 11, 12

	results, _ := svc.Audit([]entities.Meeting{a, b, c})

	require.Len(t, results, 3)
	assert.Equal(t, []int{10, 11, 12}, []int{results[0].Entry.ID, results[1].Entry.ID, results[2].Entry.ID})
}

func TestAudit_EmptyCollection(t *testing.T) {
	svc := NewService(zap.NewNop())

	results, summary := svc.Audit(nil)

	assert.Empty(t, results)
	assert.Equal(t, 0, summary.TotalMeetings)
	assert.Equal(t, 0, summary.HealthScore)
}

func TestDailyBriefing(t *testing.T) {
	svc := NewService(zap.NewNop())

	briefing, err := svc.DailyBriefing(sampleMeetings(), "2025-03-03")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", briefing.Date)
	assert.Equal(t, 2, briefing.TotalMeetings)
	assert.Equal(t, 1.5, briefing.TotalHours)

	// Sorted by start time, not score
	require.Len(t, briefing.Meetings, 2)
	assert.Equal(t, "09:00", briefing.Meetings[0].Entry.StartTime)
	assert.Equal(t, "10:00", briefing.Meetings[1].Entry.StartTime)

	// The architecture meeting scores High (95*.30+85*.35+90*.20+100*.15 = 91)
	assert.Equal(t, 1.0, briefing.StrategicHours)
	assert.Equal(t, 66, briefing.StrategicPercentage)
}

func TestDailyBriefing_HourRoundingTies(t *testing.T) {
	svc := NewService(zap.NewNop())

	// 45 + 90 = 135 minutes = 2.25 hours; ties round to even: 2.2.
	meetings := []entities.Meeting{
		{ID: 1, Title: "Board deck prep", Date: "2025-03-10", StartTime: "09:00", DurationMinutes: 45, MeetingType: entities.MeetingTypeBoardPrep},
		{ID: 2, Title: "Roadmap planning", Date: "2025-03-10", StartTime: "10:00", DurationMinutes: 90, MeetingType: entities.MeetingTypeStrategicPlanning},
	}

	briefing, err := svc.DailyBriefing(meetings, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2.2, briefing.TotalHours)

	// 105 minutes = 1.75 hours; the even neighbor is 1.8.
	briefing, err = svc.DailyBriefing([]entities.Meeting{
		{ID: 3, Title: "Hiring sync", Date: "2025-03-11", StartTime: "09:00", DurationMinutes: 105, MeetingType: entities.MeetingTypeHiring},
	}, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 1.8, briefing.TotalHours)
}

func TestDailyBriefing_NoMeetingsOnDate(t *testing.T) {
	svc := NewService(zap.NewNop())

	briefing, err := svc.DailyBriefing(sampleMeetings(), "2025-12-25")
	require.NoError(t, err)

	assert.Equal(t, 0, briefing.TotalMeetings)
	assert.Equal(t, 0.0, briefing.TotalHours)
	assert.Equal(t, 0, briefing.StrategicPercentage)
	assert.Empty(t, briefing.Meetings)
}

func TestDailyBriefing_InvalidDate(t *testing.T) {
	svc := NewService(zap.NewNop())

	_, err := svc.DailyBriefing(sampleMeetings(), "03/04/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestAvailableDates(t *testing.T) {
	svc := NewService(zap.NewNop())

	dates := svc.AvailableDates(sampleMeetings())

	assert.Equal(t, []string{"2025-03-03", "2025-03-04"}, dates)
}
