package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

func TestCheck_CleanMessageScoresHundred(t *testing.T) {
	report := NewChecker().Check("Decision: we ship Friday.\nThe team fixed the login bug.")

	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Issues)
	assert.Equal(t, "Excellent! Your message follows the communication style guidelines well.", report.Summary)
}

func TestCheck_WorkedExample(t *testing.T) {
	// BLUF issue (starts with "i wanted to", no indicator) plus passive
	// voice (three "was ...ed" matches): 100 - 20 - 10 = 70.
	text := "I wanted to update you on the project. It was completed. It was reviewed. It was approved."

	report := NewChecker().Check(text)

	require.Len(t, report.Issues, 2)
	assert.Equal(t, "Structure", report.Issues[0].Category)
	assert.Equal(t, entities.StyleSeverityHigh, report.Issues[0].Severity)
	assert.Equal(t, "Clarity", report.Issues[1].Category)
	assert.Equal(t, "Excessive passive voice detected (3 instances)", report.Issues[1].Issue)
	assert.Equal(t, 70, report.Score)
	assert.Equal(t, "Good structure, but consider the suggestions above for improvement.", report.Summary)
}

func TestCheckBLUF(t *testing.T) {
	c := NewChecker()

	t.Run("context opener without indicator", func(t *testing.T) {
		report := c.Check("As you know, the migration slipped.")
		require.NotEmpty(t, report.Issues)
		assert.Equal(t, "Message doesn't lead with the main point", report.Issues[0].Issue)
	})

	t.Run("indicator anywhere in the first line suppresses the flag", func(t *testing.T) {
		report := c.Check("Following up with a decision: we ship Friday.")
		assert.Empty(t, report.Issues)
	})

	t.Run("only the first line matters", func(t *testing.T) {
		report := c.Check("Ship date moves to Friday.\nAs discussed, the migration slipped.")
		assert.Empty(t, report.Issues)
	})
}

func TestCheckPassiveVoice_ThresholdIsStrict(t *testing.T) {
	c := NewChecker()

	// Exactly two matches: under the "more than 2" threshold.
	report := c.Check("Decision: done. It was completed and it was reviewed.")
	assert.Empty(t, report.Issues)

	report = c.Check("Decision: done. It was completed. It was reviewed. It was approved.")
	require.Len(t, report.Issues, 1)
	assert.Equal(t, entities.StyleSeverityMedium, report.Issues[0].Severity)
}

func TestCheckVagueTerms(t *testing.T) {
	c := NewChecker()

	t.Run("names up to three terms", func(t *testing.T) {
		report := c.Check("Decision: ship. Significant work, substantial risk, considerable cost, many unknowns.")
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "Vague terms found: significant, substantial, considerable...", report.Issues[0].Issue)
	})

	t.Run("single term, no ellipsis", func(t *testing.T) {
		report := c.Check("Decision: ship. We made good progress.")
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "Vague terms found: good progress", report.Issues[0].Issue)
	})
}

func TestCheckActionItems_OnlyForLongMessages(t *testing.T) {
	c := NewChecker()

	long := "Decision made. " + strings.Repeat("The quarterly planning document covers roadmap scope budget headcount and vendor spend in detail. ", 5)
	report := c.Check(long)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Actionability", report.Issues[0].Category)
	assert.Equal(t, entities.StyleSeverityHigh, report.Issues[0].Severity)

	withNextSteps := long + " Next steps: finalize the budget."
	report = c.Check(withNextSteps)
	assert.Empty(t, report.Issues)
}

func TestCheckMetrics_ExtendedOnly(t *testing.T) {
	text := "Status: migration progress is on track."

	assert.Empty(t, NewChecker().Check(text).Issues)

	report := NewExtendedChecker().Check(text)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Data", report.Issues[0].Category)

	// Quantified status passes
	report = NewExtendedChecker().Check("Status: migration 80% done, 3 days remaining.")
	assert.Empty(t, report.Issues)
}

func TestCheckPetPeeves_OneIssuePerPhrase(t *testing.T) {
	report := NewChecker().Check("Decision: meet. Quick sync later today, then we circle back.")

	// "quick sync", "circle back" and the vague term "later"
	require.Len(t, report.Issues, 3)
	assert.Equal(t, "Pet peeve phrase detected: 'quick sync'", report.Issues[1].Issue)
	assert.Equal(t, "Pet peeve phrase detected: 'circle back'", report.Issues[2].Issue)
	assert.Equal(t, 80, report.Score)
}

func TestCheckOverApologizing_FirstMatchWins(t *testing.T) {
	report := NewChecker().Check("Sorry for the delay, and sorry again for the confusion. Decision: ship.")

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Over-apologizing detected", report.Issues[0].Issue)
	assert.Equal(t, entities.StyleSeverityLow, report.Issues[0].Severity)
}

func TestScoreClampsAtZero(t *testing.T) {
	// Pile up enough issues to drive the raw score below zero.
	text := "As you know, things moved. " +
		"It was delayed. It was blocked. It was reworked. " +
		"Significant effort, substantial scope, many risks. " +
		"Sorry to bother you; quick sync while touching base, just checking in, " +
		"let me ping you and loop you in so we can circle back. " +
		"Sorry again for all the noise around this whole situation today. " +
		strings.Repeat("More context about the situation without any concrete ownership at all. ", 4)

	report := NewChecker().Check(text)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, "This message needs significant revision to align with communication guidelines.", report.Summary)
}

func TestCheck_Deterministic(t *testing.T) {
	text := "I wanted to update you. It was completed. It was reviewed. It was approved."

	first := NewChecker().Check(text)
	second := NewChecker().Check(text)

	assert.Equal(t, first, second)
}
