package audit

import (
	"strings"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// okrGroup pairs a display label with the keywords that signal relevance.
type okrGroup struct {
	Label    string
	Keywords []string
}

// The three company OKRs, in fixed order. Matching is plain lowercase
// substring containment over title+description+meeting_type; short
// keywords like "ai" can match inside unrelated words, which is accepted
// for compatibility with the audit's historical behavior.
var okrGroups = []okrGroup{
	{
		Label: "Platform Modernization",
		Keywords: []string{
			"kubernetes", "k8s", "migration", "deployment", "uptime",
			"infrastructure", "platform", "devops", "ci/cd", "architecture",
		},
	},
	{
		Label: "Build World-Class Engineering Team",
		Keywords: []string{
			"hire", "hiring", "interview", "staff engineer", "principal",
			"attrition", "mentorship", "mentor", "career", "growth", "1:1",
		},
	},
	{
		Label: "AI/ML Integration",
		Keywords: []string{
			"ai", "ml", "machine learning", "artificial intelligence",
			"data science", "model", "poc", "search",
		},
	},
}

// FindOKRRelevance returns the labels of every OKR the meeting's text
// touches, in fixed group order. An empty result means no OKR alignment.
func FindOKRRelevance(meeting entities.Meeting) []string {
	searchText := strings.ToLower(meeting.Title + " " + meeting.Description + " " + string(meeting.MeetingType))

	var relevant []string
	for _, group := range okrGroups {
		for _, kw := range group.Keywords {
			if strings.Contains(searchText, kw) {
				relevant = append(relevant, group.Label)
				break
			}
		}
	}
	return relevant
}
