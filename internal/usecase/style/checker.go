// Package style checks prose against the executive's communication style
// rulebook: lead with the conclusion, quantify, assign owners, skip the
// filler phrases. Each check contributes issues independently; the score
// starts at 100 and loses 20/10/5 points per high/medium/low issue.
package style

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// Checker runs the fixed list of style checks over a message. Extended
// mode additionally expects metrics in status-like messages and accepts
// @mentions and deadlines as action-item signals.
type Checker struct {
	extended bool
}

// NewChecker constructs a checker with the standard rule set.
func NewChecker() *Checker {
	return &Checker{}
}

// NewExtendedChecker constructs a checker that also runs the metrics
// check and the wider action-item patterns.
func NewExtendedChecker() *Checker {
	return &Checker{extended: true}
}

// Check runs every style check in fixed order and returns the scored
// report. The text is assumed non-empty; rejecting blank input is the
// caller's concern.
func (c *Checker) Check(text string) *entities.StyleReport {
	issues := []entities.StyleIssue{}

	if issue := c.checkBLUF(text); issue != nil {
		issues = append(issues, *issue)
	}
	issues = append(issues, c.checkPassiveVoice(text)...)
	issues = append(issues, c.checkVagueTerms(text)...)
	if issue := c.checkActionItems(text); issue != nil {
		issues = append(issues, *issue)
	}
	if c.extended {
		if issue := c.checkMetrics(text); issue != nil {
			issues = append(issues, *issue)
		}
	}
	issues = append(issues, c.checkPetPeeves(text)...)
	issues = append(issues, c.checkOverApologizing(text)...)

	score := scoreIssues(issues)

	return &entities.StyleReport{
		Score:   score,
		Issues:  issues,
		Summary: summaryFor(score),
	}
}

// checkBLUF flags messages whose first line opens with context instead of
// the conclusion, unless a BLUF marker like "decision:" appears anywhere
// in that line.
func (c *Checker) checkBLUF(text string) *entities.StyleIssue {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return nil
	}
	firstLine := strings.ToLower(lines[0])

	hasBLUF := false
	for _, ind := range blufIndicators {
		if strings.Contains(firstLine, ind) {
			hasBLUF = true
			break
		}
	}

	startsWithContext := false
	for _, cs := range contextStarters {
		if strings.HasPrefix(firstLine, cs) {
			startsWithContext = true
			break
		}
	}

	if !hasBLUF && startsWithContext {
		return &entities.StyleIssue{
			Category:   "Structure",
			Issue:      "Message doesn't lead with the main point",
			Suggestion: "Start with the conclusion, decision, or ask. Add context after.",
			Severity:   entities.StyleSeverityHigh,
		}
	}
	return nil
}

// checkPassiveVoice flags excessive passive voice. Stops at the first
// pattern over the threshold, so at most one issue is emitted.
func (c *Checker) checkPassiveVoice(text string) []entities.StyleIssue {
	issues := []entities.StyleIssue{}
	lower := strings.ToLower(text)

	for _, pattern := range passivePatterns {
		matches := pattern.FindAllString(lower, -1)
		if len(matches) > 2 {
			issues = append(issues, entities.StyleIssue{
				Category:   "Clarity",
				Issue:      fmt.Sprintf("Excessive passive voice detected (%d instances)", len(matches)),
				Suggestion: "Use active voice to maintain accountability. E.g., 'The team completed...' instead of 'It was completed...'",
				Severity:   entities.StyleSeverityMedium,
			})
			break
		}
	}
	return issues
}

// checkVagueTerms emits a single issue naming up to three matched terms.
func (c *Checker) checkVagueTerms(text string) []entities.StyleIssue {
	lower := strings.ToLower(text)

	found := []string{}
	for _, term := range vagueTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	if len(found) == 0 {
		return nil
	}

	named := found
	ellipsis := ""
	if len(found) > 3 {
		named = found[:3]
		ellipsis = "..."
	}

	return []entities.StyleIssue{{
		Category:   "Specificity",
		Issue:      fmt.Sprintf("Vague terms found: %s%s", strings.Join(named, ", "), ellipsis),
		Suggestion: "Replace with specific numbers. E.g., 'significant improvement' → '35% improvement'",
		Severity:   entities.StyleSeverityMedium,
	}}
}

// checkActionItems expects messages longer than 50 words to name next
// steps.
func (c *Checker) checkActionItems(text string) *entities.StyleIssue {
	lower := strings.ToLower(text)

	hasActionItems := false
	for _, pattern := range actionPatterns {
		if pattern.MatchString(lower) {
			hasActionItems = true
			break
		}
	}
	if !hasActionItems && c.extended {
		for _, pattern := range extendedActionPatterns {
			if pattern.MatchString(lower) {
				hasActionItems = true
				break
			}
		}
	}

	if len(strings.Fields(text)) > 50 && !hasActionItems {
		return &entities.StyleIssue{
			Category:   "Actionability",
			Issue:      "No clear action items or next steps detected",
			Suggestion: "Add a 'Next Steps' section with specific actions, owners, and deadlines",
			Severity:   entities.StyleSeverityHigh,
		}
	}
	return nil
}

// checkMetrics expects status-like messages to quantify their claims.
func (c *Checker) checkMetrics(text string) *entities.StyleIssue {
	hasMetrics := false
	for _, pattern := range metricPatterns {
		if pattern.MatchString(text) {
			hasMetrics = true
			break
		}
	}

	lower := strings.ToLower(text)
	isStatusMessage := false
	for _, ind := range statusIndicators {
		if strings.Contains(lower, ind) {
			isStatusMessage = true
			break
		}
	}

	if isStatusMessage && !hasMetrics {
		return &entities.StyleIssue{
			Category:   "Data",
			Issue:      "Status update lacks quantified metrics",
			Suggestion: "Include specific numbers: completion %, time spent, items remaining, etc.",
			Severity:   entities.StyleSeverityMedium,
		}
	}
	return nil
}

// checkPetPeeves emits one low issue per banned phrase present.
func (c *Checker) checkPetPeeves(text string) []entities.StyleIssue {
	issues := []entities.StyleIssue{}
	lower := strings.ToLower(text)

	for _, term := range petPeeves {
		if strings.Contains(lower, term) {
			issues = append(issues, entities.StyleIssue{
				Category:   "Tone",
				Issue:      fmt.Sprintf("Pet peeve phrase detected: '%s'", term),
				Suggestion: "Be direct. Instead of 'quick sync', state the specific topic and ask.",
				Severity:   entities.StyleSeverityLow,
			})
		}
	}
	return issues
}

// checkOverApologizing emits at most one issue; first pattern wins.
func (c *Checker) checkOverApologizing(text string) []entities.StyleIssue {
	issues := []entities.StyleIssue{}
	lower := strings.ToLower(text)

	for _, pattern := range apologyPatterns {
		if pattern.MatchString(lower) {
			issues = append(issues, entities.StyleIssue{
				Category:   "Tone",
				Issue:      "Over-apologizing detected",
				Suggestion: "Reduce apologies. If something needs addressing, state it directly and move to the solution.",
				Severity:   entities.StyleSeverityLow,
			})
			break
		}
	}
	return issues
}

func scoreIssues(issues []entities.StyleIssue) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case entities.StyleSeverityHigh:
			score -= 20
		case entities.StyleSeverityMedium:
			score -= 10
		default:
			score -= 5
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func summaryFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent! Your message follows the communication style guidelines well."
	case score >= 70:
		return "Good structure, but consider the suggestions above for improvement."
	case score >= 50:
		return "Several areas need attention. Review the issues and apply the suggestions."
	default:
		return "This message needs significant revision to align with communication guidelines."
	}
}
