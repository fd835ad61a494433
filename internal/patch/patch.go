// Package patch inserts the react-i18next translation hook into screen sources.
//
// Matching is a line-oriented regular expression heuristic, not a parse of
// the TypeScript source. The last textual match of an anchor pattern wins,
// so a commented-out import or a hook call inside a template literal can
// become the anchor.
package patch

import (
	"regexp"
	"strings"

	"github.com/teo/biosi-i18n/internal/constants"
)

// Rule describes one guarded insertion: if Marker does not match the
// content, Line is inserted right after the last match of Anchor.
type Rule struct {
	Name   string
	Marker *regexp.Regexp
	Anchor *regexp.Regexp
	Line   string // without line ending; the anchor's ending is reused
}

// ImportRule adds the useTranslation import after the last import line.
var ImportRule = Rule{
	Name:   "import",
	Marker: regexp.MustCompile(regexp.QuoteMeta(constants.ImportMarker)),
	Anchor: regexp.MustCompile(constants.ImportAnchorPattern),
	Line:   constants.ImportLine,
}

// HookRule declares t after the last `const ... = useX();` line.
var HookRule = Rule{
	Name:   "hook",
	Marker: regexp.MustCompile(constants.HookMarkerPattern),
	Anchor: regexp.MustCompile(constants.HookAnchorPattern),
	Line:   constants.HookLine,
}

// Applied reports whether the rule's marker is present.
func (r Rule) Applied(content string) bool {
	return r.Marker.MatchString(content)
}

// Apply returns content with the rule's line inserted. Content is returned
// unchanged when the marker is present or no anchor line exists. The new
// line ends the same way as the anchor line, so CRLF files stay CRLF.
func (r Rule) Apply(content string) string {
	if r.Applied(content) {
		return content
	}
	pos := lastAnchorEnd(r.Anchor, content)
	if pos < 0 {
		return content
	}
	eol := "\n"
	if strings.HasSuffix(content[:pos], "\r\n") {
		eol = "\r\n"
	}
	return content[:pos] + r.Line + eol + content[pos:]
}

// lastAnchorEnd returns the end offset of the last match of re, or -1.
func lastAnchorEnd(re *regexp.Regexp, content string) int {
	matches := re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return -1
	}
	return matches[len(matches)-1][1]
}

// InsertImportIfAbsent adds the useTranslation import unless it is already there.
func InsertImportIfAbsent(content string) string {
	return ImportRule.Apply(content)
}

// InsertHookIfAbsent adds the `const { t } = useTranslation();` declaration
// unless t or i18n is already destructured.
func InsertHookIfAbsent(content string) string {
	return HookRule.Apply(content)
}

// Apply runs the import insertion and then the hook insertion.
func Apply(content string) string {
	return InsertHookIfAbsent(InsertImportIfAbsent(content))
}
