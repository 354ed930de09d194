package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

const sampleCSV = `id,title,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description,recurring
1,Weekly Eng Standup,2025-03-03,09:00,09:30,30,sarah@corp.example,sarah@corp.example;dev1@corp.example,standup,Daily sync on sprint progress,true
2,Q2 Architecture Review,2025-03-03,14:00,15:30,90,cto@corp.example,cto@corp.example;staff.eng@corp.example,architecture,Migration to multi-region infrastructure,false
`

func TestParseCSV(t *testing.T) {
	meetings, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	first := meetings[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Weekly Eng Standup", first.Title)
	assert.Equal(t, "2025-03-03", first.Date)
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "09:30", first.EndTime)
	assert.Equal(t, 30, first.DurationMinutes)
	assert.Equal(t, "sarah@corp.example", first.Organizer)
	assert.Equal(t, []string{"sarah@corp.example", "dev1@corp.example"}, first.Attendees)
	assert.Equal(t, entities.MeetingTypeStandup, first.MeetingType)
	assert.True(t, first.Recurring)
	assert.Equal(t, entities.MeetingSourceCSV, first.Source)

	assert.Equal(t, entities.MeetingTypeArchitecture, meetings[1].MeetingType)
	assert.False(t, meetings[1].Recurring)
}

func TestParseCSVColumnOrderIndependent(t *testing.T) {
	reordered := `title,id,recurring,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description
Planning,7,false,2025-03-04,10:00,11:00,60,ceo@corp.example,ceo@corp.example,strategic_planning,Quarterly roadmap
`
	meetings, err := ParseCSV(strings.NewReader(reordered))
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, 7, meetings[0].ID)
	assert.Equal(t, "Planning", meetings[0].Title)
}

func TestParseCSVMissingColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("id,title\n1,Standup\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestParseCSVInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad id", "x,Standup,2025-03-03,09:00,09:30,30,a@b.c,a@b.c,standup,desc,true", "invalid id"},
		{"bad date", "1,Standup,03/03/2025,09:00,09:30,30,a@b.c,a@b.c,standup,desc,true", "invalid date"},
		{"bad start", "1,Standup,2025-03-03,9am,09:30,30,a@b.c,a@b.c,standup,desc,true", "invalid start_time"},
		{"bad duration", "1,Standup,2025-03-03,09:00,09:30,half,a@b.c,a@b.c,standup,desc,true", "invalid duration_minutes"},
	}

	header := "id,title,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description,recurring\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseCSVAttendeesTrimmed(t *testing.T) {
	csv := "id,title,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description,recurring\n" +
		"1,Sync,2025-03-03,09:00,09:30,30,a@b.c,\"a@b.c; b@b.c ; c@b.c\",adhoc,desc,false\n"

	meetings, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.c", "b@b.c", "c@b.c"}, meetings[0].Attendees)
}

func TestParseCSVEmptyBody(t *testing.T) {
	header := "id,title,date,start_time,end_time,duration_minutes,organizer,attendees,meeting_type,description,recurring\n"
	meetings, err := ParseCSV(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, meetings)
}
