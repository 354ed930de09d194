package audit

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// Base strategic value per meeting type. Types the table does not know
// score 40. Several types are further adjusted by the special cases in
// CalculateAlignmentScore.
var meetingTypeScores = map[entities.MeetingType]int{
	entities.MeetingTypeArchitecture:      95,
	entities.MeetingTypeStrategicPlanning: 90,
	entities.MeetingTypeBoardPrep:         90,
	entities.MeetingTypeOneOnOne:          85,
	entities.MeetingTypeHiring:            80,
	entities.MeetingTypeInterview:         75,
	entities.MeetingTypeIncidentReview:    85,
	entities.MeetingTypeExternal:          70,
	entities.MeetingTypeDesignReview:      60,
	entities.MeetingTypeSprintCeremony:    30,
	entities.MeetingTypeStandup:           25,
	entities.MeetingTypeStatusUpdate:      20,
	entities.MeetingTypeVendorDemo:        40,
	entities.MeetingTypeAdhoc:             35,
	entities.MeetingTypePrep:              50,
	entities.MeetingTypeStrategic:         80,
}

const defaultTypeScore = 40

// Indicator terms for seniority heuristics.
var (
	juniorIndicators = []string{"junior", "intern", "new hire", "onboarding", "coffee chat"}
	seniorIndicators = []string{"staff", "principal", "director", "vp", "cto", "ceo", "cfo", "board", "investor"}
)

// Time-allocation buckets for the fourth scoring factor.
var (
	strategicTypes  = []entities.MeetingType{entities.MeetingTypeArchitecture, entities.MeetingTypeStrategicPlanning, entities.MeetingTypeBoardPrep, entities.MeetingTypeHiring}
	enablementTypes = []entities.MeetingType{entities.MeetingTypeOneOnOne, entities.MeetingTypeInterview, "mentorship"}
	adminTypes      = []entities.MeetingType{entities.MeetingTypeStandup, entities.MeetingTypeStatusUpdate, entities.MeetingTypePrep, entities.MeetingTypeAdhoc}
)

// Scoring weights: type 30%, OKR 35%, attendee 20%, time category 15%.
const (
	weightType     = 0.30
	weightOKR      = 0.35
	weightAttendee = 0.20
	weightTime     = 0.15
)

// CalculateAlignmentScore produces the 0-100 alignment score for one
// meeting, the human-readable flags raised along the way, the resulting
// recommendation and the OKRs the meeting touches. The same record always
// produces the same output.
func CalculateAlignmentScore(meeting entities.Meeting) (int, []string, entities.Recommendation, []string) {
	flags := []string{}
	textLower := strings.ToLower(meeting.Title + " " + meeting.Description)
	attendeesLower := strings.ToLower(strings.Join(meeting.Attendees, " "))

	// Factor 1: meeting type
	typeScore, ok := meetingTypeScores[meeting.MeetingType]
	if !ok {
		typeScore = defaultTypeScore
	}

	// Factor 2: OKR alignment
	okrRelevance := FindOKRRelevance(meeting)
	var okrScore int
	if len(okrRelevance) > 0 {
		okrScore = 70 + len(okrRelevance)*15
		if okrScore > 100 {
			okrScore = 100
		}
	} else {
		okrScore = 30
		flags = append(flags, "No clear OKR alignment detected")
	}

	// Factor 3: attendee and seniority appropriateness
	attendeeScore := 60
	isJunior := containsAny(textLower, juniorIndicators)
	isSenior := false
	for _, ind := range seniorIndicators {
		if strings.Contains(textLower, ind) || strings.Contains(attendeesLower, ind) {
			isSenior = true
			break
		}
	}

	if isJunior && !isSenior {
		attendeeScore = 25
		flags = append(flags, fmt.Sprintf("CTO attending junior-level activity: '%s'", meeting.Title))
	} else if isSenior {
		attendeeScore = 90
	}

	// Special case: junior design reviews
	if meeting.MeetingType == entities.MeetingTypeDesignReview && isJunior {
		typeScore = 20
		flags = append(flags, "Design review should be delegated to Engineering Manager")
	}

	// Special case: junior interviews
	if meeting.MeetingType == entities.MeetingTypeInterview && isJunior {
		typeScore = 25
		flags = append(flags, "Interview for junior role - delegate to hiring manager")
	}

	// Special case: vendor demos, routed by deal size
	if meeting.MeetingType == entities.MeetingTypeVendorDemo {
		if strings.Contains(textLower, "25k") || strings.Contains(textLower, "10k") {
			typeScore = 20
			flags = append(flags, "Vendor demo for tool under $50K threshold - delegate")
		} else if strings.Contains(textLower, "200k") || strings.Contains(textLower, "100k") {
			typeScore = 70 // worth attending
		}
	}

	// Special case: status updates should be async
	if meeting.MeetingType == entities.MeetingTypeStatusUpdate {
		flags = append(flags, "Status updates should be asynchronous - consider declining")
		typeScore = 15
	}

	// Special case: sprint ceremonies
	if meeting.MeetingType == entities.MeetingTypeSprintCeremony {
		flags = append(flags, "Sprint ceremony - CTO attendance rarely necessary")
	}

	// Factor 4: time allocation category
	timeScore := 50
	switch {
	case containsType(strategicTypes, meeting.MeetingType):
		timeScore = 100
	case containsType(enablementTypes, meeting.MeetingType):
		timeScore = 75
	case containsType(adminTypes, meeting.MeetingType):
		timeScore = 30
	}

	finalScore := int(
		float64(typeScore)*weightType +
			float64(okrScore)*weightOKR +
			float64(attendeeScore)*weightAttendee +
			float64(timeScore)*weightTime,
	)

	return finalScore, flags, RecommendationFor(finalScore), okrRelevance
}

// RecommendationFor maps a final score to a recommendation.
func RecommendationFor(score int) entities.Recommendation {
	switch {
	case score >= 70:
		return entities.RecommendationKeep
	case score >= 45:
		return entities.RecommendationDelegate
	default:
		return entities.RecommendationDecline
	}
}

// StrategicValueFor maps a final score to its coarse label.
func StrategicValueFor(score int) entities.StrategicValue {
	switch {
	case score >= 75:
		return entities.StrategicValueHigh
	case score >= 50:
		return entities.StrategicValueMedium
	default:
		return entities.StrategicValueLow
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func containsType(types []entities.MeetingType, t entities.MeetingType) bool {
	for _, mt := range types {
		if mt == t {
			return true
		}
	}
	return false
}
