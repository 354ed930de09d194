// Package audit scores calendar meetings for strategic alignment against
// the company OKRs and rolls the results up into audit reports and daily
// briefings. Everything here is a pure transform over in-memory meeting
// records; callers own I/O and error-to-status mapping.
package audit

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// Service runs the audit pipeline over meeting collections.
type Service struct {
	logger *zap.Logger
}

// NewService constructs an audit service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Score audits a single meeting.
func (s *Service) Score(meeting entities.Meeting) entities.AuditResult {
	score, flags, recommendation, okrRelevance := CalculateAlignmentScore(meeting)
	return entities.AuditResult{
		Entry:          meeting,
		AlignmentScore: score,
		StrategicValue: StrategicValueFor(score),
		Flags:          flags,
		Recommendation: recommendation,
		OKRRelevance:   okrRelevance,
	}
}

// Audit scores every meeting and returns the results sorted ascending by
// alignment score (worst first, so problems surface at the top), with the
// aggregate summary. The sort is stable: ties keep input order.
func (s *Service) Audit(meetings []entities.Meeting) ([]entities.AuditResult, entities.AuditSummary) {
	results := make([]entities.AuditResult, 0, len(meetings))
	for _, m := range meetings {
		results = append(results, s.Score(m))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AlignmentScore < results[j].AlignmentScore
	})

	summary := summarize(results)

	if s.logger != nil {
		s.logger.Info("calendar audit complete",
			zap.Int("total_meetings", summary.TotalMeetings),
			zap.Int("needs_attention", summary.NeedsAttention),
			zap.Int("health_score", summary.HealthScore),
		)
	}

	return results, summary
}

// DailyBriefing audits the meetings on targetDate ("2006-01-02"; empty
// means today) sorted by start time. Hour figures are rounded to one
// decimal; an empty day yields zeroes rather than an error.
func (s *Service) DailyBriefing(meetings []entities.Meeting, targetDate string) (*entities.DailyBriefing, error) {
	if targetDate == "" {
		targetDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, targetDate); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", targetDate, err)
	}

	dayResults := []entities.AuditResult{}
	for _, m := range meetings {
		if m.Date == targetDate {
			dayResults = append(dayResults, s.Score(m))
		}
	}

	// "15:04" strings order correctly as text
	sort.SliceStable(dayResults, func(i, j int) bool {
		return dayResults[i].Entry.StartTime < dayResults[j].Entry.StartTime
	})

	totalMinutes := 0
	strategicMinutes := 0
	for _, r := range dayResults {
		totalMinutes += r.Entry.DurationMinutes
		if r.StrategicValue == entities.StrategicValueHigh {
			strategicMinutes += r.Entry.DurationMinutes
		}
	}

	strategicPct := 0
	if totalMinutes > 0 {
		strategicPct = int(float64(strategicMinutes) / float64(totalMinutes) * 100)
	}

	return &entities.DailyBriefing{
		Date:                targetDate,
		TotalMeetings:       len(dayResults),
		TotalHours:          roundHours(totalMinutes),
		StrategicHours:      roundHours(strategicMinutes),
		StrategicPercentage: strategicPct,
		Meetings:            dayResults,
	}, nil
}

// AvailableDates returns the distinct dates present in the collection,
// sorted ascending.
func (s *Service) AvailableDates(meetings []entities.Meeting) []string {
	seen := make(map[string]struct{})
	dates := []string{}
	for _, m := range meetings {
		if _, ok := seen[m.Date]; !ok {
			seen[m.Date] = struct{}{}
			dates = append(dates, m.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

func summarize(results []entities.AuditResult) entities.AuditSummary {
	total := len(results)
	highValue := 0
	needsAttention := 0
	for _, r := range results {
		if r.StrategicValue == entities.StrategicValueHigh {
			highValue++
		}
		if r.Recommendation != entities.RecommendationKeep {
			needsAttention++
		}
	}

	healthScore := 0
	if total > 0 {
		healthScore = int(float64(highValue) / float64(total) * 100)
	}

	return entities.AuditSummary{
		TotalMeetings:      total,
		HighStrategicValue: highValue,
		NeedsAttention:     needsAttention,
		HealthScore:        healthScore,
	}
}

// roundHours converts minutes to hours rounded to one decimal, ties to
// even: 135 minutes reports as 2.2 hours, not 2.3. Dividing by 6 keeps
// the tie values exactly representable.
func roundHours(minutes int) float64 {
	return math.RoundToEven(float64(minutes)/6) / 10
}
