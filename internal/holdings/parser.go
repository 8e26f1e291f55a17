package holdings

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/handiism/marc-holdings/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// yearGroupPattern matches "year: volume? (issue-list)".
	yearGroupPattern = regexp.MustCompile(`(\d{4}):\s?(\d+)?\s*\((.*?)\)`)

	// continuationPattern matches a further ", volume? (issue-list)" of the
	// same year, anchored at the end of the previous group.
	continuationPattern = regexp.MustCompile(`^\s*,\s*(\d+)?\s*\((.*?)\)`)

	whitespacePattern = regexp.MustCompile(`\s+`)

	// chronologySeparators splits a caption such as "Mar-Apr" or "Jan/Feb".
	chronologySeparators = regexp.MustCompile(`[\s\-/.]+`)

	bracketStripper = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
)

// seasonCodes is checked top to bottom; every matching entry is replaced.
var seasonCodes = []struct {
	name string
	code string
}{
	{"spring", "21"},
	{"spr", "21"},
	{"summer", "22"},
	{"sum", "22"},
	{"autumn", "23"},
	{"autum", "23"},
	{"aut", "23"},
	{"winter", "24"},
	{"win", "24"},
}

// chronologyTerms are the words a parenthesized issue list may consist of to
// be read as a month caption rather than a list of issues.
var chronologyTerms = map[string]struct{}{}

func init() {
	months := []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december", "sept",
	}
	for _, m := range months {
		chronologyTerms[m] = struct{}{}
		chronologyTerms[m[:3]] = struct{}{}
	}
	for _, s := range seasonCodes {
		chronologyTerms[s.name] = struct{}{}
	}
}

// yearGroup is one "year: volume? (issue-list)" occurrence.
type yearGroup struct {
	Year      string
	Volume    string
	IssueList string
}

// issueDescriptor is the normalized form of one issue token.
type issueDescriptor struct {
	Number string
	Month  string
}

// ParseStatement extracts every issue of a holdings statement, in source order.
//
// Year groups are scanned left to right. A group's parenthesized content is
// split on commas, and each token is classified by its first character:
//   - digit: the token is "number month?", split on the first whitespace run
//   - '[': the whole token is a month or season
//   - anything else: the token is dropped
//
// When the content is a bare month caption such as "Jan" or "Spring", the
// group describes a single issue and its leading digits are the issue number.
//
// A statement without any year group yields nil.
//
// Example:
//
//	issues := ParseStatement("1999: (Spring), (Summer)")
//	// [{Year:1999 Month:21} {Year:1999 Month:22}]
func ParseStatement(text string) []model.Issue {
	var issues []model.Issue
	for _, group := range splitYearGroups(text) {
		issues = append(issues, group.issues()...)
	}
	return issues
}

// splitYearGroups finds all non-overlapping year groups of text, including
// the comma-separated continuations that share a group's year.
func splitYearGroups(text string) []yearGroup {
	var groups []yearGroup

	rest := text
	for {
		loc := yearGroupPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			return groups
		}

		year := submatch(rest, loc, 1)
		groups = append(groups, yearGroup{
			Year:      year,
			Volume:    submatch(rest, loc, 2),
			IssueList: submatch(rest, loc, 3),
		})
		rest = rest[loc[1]:]

		for {
			cont := continuationPattern.FindStringSubmatchIndex(rest)
			if cont == nil {
				break
			}
			groups = append(groups, yearGroup{
				Year:      year,
				Volume:    submatch(rest, cont, 1),
				IssueList: submatch(rest, cont, 2),
			})
			rest = rest[cont[1]:]
		}
	}
}

// submatch returns capture group n of a FindStringSubmatchIndex result, or ""
// when the group did not participate in the match.
func submatch(s string, loc []int, n int) string {
	if loc[2*n] < 0 {
		return ""
	}
	return s[loc[2*n]:loc[2*n+1]]
}

// issues converts the group into tuples, dropping unrecognized tokens.
func (g yearGroup) issues() []model.Issue {
	if isChronology(g.IssueList) {
		return []model.Issue{{
			Year:   g.Year,
			Number: g.Volume,
			Month:  cleanIssueMonth(g.IssueList),
		}}
	}

	var issues []model.Issue
	for _, token := range breakIntoIssues(g.IssueList) {
		desc, ok := extractIssue(token)
		if !ok {
			continue
		}
		issues = append(issues, model.Issue{
			Year:   g.Year,
			Volume: g.Volume,
			Number: desc.Number,
			Month:  desc.Month,
		})
	}
	return issues
}

// breakIntoIssues splits an issue list on commas and trims every token.
func breakIntoIssues(list string) []string {
	parts := strings.Split(list, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		tokens = append(tokens, strings.TrimSpace(part))
	}
	return tokens
}

// extractIssue classifies one token. ok is false for dropped tokens.
func extractIssue(token string) (desc issueDescriptor, ok bool) {
	if token == "" {
		return desc, false
	}

	switch {
	case token[0] >= '0' && token[0] <= '9':
		parts := whitespacePattern.Split(token, 2)
		desc.Number = parts[0]
		if len(parts) > 1 {
			desc.Month = parts[1]
		}
	case token[0] == '[':
		desc.Month = token
	default:
		return desc, false
	}

	if desc.Month != "" {
		desc.Month = cleanIssueMonth(desc.Month)
	}
	return desc, true
}

// cleanIssueMonth strips brackets, lower-cases the month and replaces season
// names with their two-digit codes.
//
// Example:
//
//	cleanIssueMonth("[Spring]")  // "21"
//	cleanIssueMonth("Win-Spr")   // "24-21"
//	cleanIssueMonth("Mar-Apr")   // "mar-apr"
func cleanIssueMonth(month string) string {
	month = bracketStripper.Replace(month)
	// Casers are stateful, so each call gets its own.
	month = strings.TrimSpace(cases.Lower(language.English).String(month))

	for _, season := range seasonCodes {
		if strings.Contains(month, season.name) {
			month = strings.ReplaceAll(month, season.name, season.code)
		}
	}
	return month
}

// isChronology reports whether list is a bare month/season caption such as
// "Jan", "Mar-Apr" or "Spring".
func isChronology(list string) bool {
	list = strings.TrimSpace(list)
	if list == "" || !unicode.IsLetter([]rune(list)[0]) {
		return false
	}

	words := 0
	for _, word := range chronologySeparators.Split(strings.ToLower(list), -1) {
		if word == "" {
			continue
		}
		if _, ok := chronologyTerms[word]; !ok {
			return false
		}
		words++
	}
	return words > 0
}
