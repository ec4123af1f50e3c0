// Package helptext parses the fixed help-output convention of the inspected binary:
// a "Commands:" section and an "Options:" section whose item lines are indented by
// two spaces, with name and description separated by a further two-space run.
package helptext

import (
	"strings"

	"github.com/temirov/cmdscope/internal/types"
)

const (
	lineSeparator      = "\n"
	twoSpaceSeparator  = "  "
	tokenSegmentLimit  = 3
	tabNoiseSubstring  = "\t"
	aliasNoiseMarker   = "[aliases:"
	markerNotFoundLine = -1
)

// noiseSubstrings lists substrings whose presence disqualifies a help line from extraction.
var noiseSubstrings = []string{tabNoiseSubstring, aliasNoiseMarker}

// ExtractRange returns the tokens of the help lines strictly after the first line
// containing startMarker through the first line containing endMarker, inclusive of
// the end line. A line's token is the second segment of a two-space split; lines
// without a token and noise lines are dropped. The generic help entry sentinels are
// dropped unless includeHelp is true. A missing marker yields an empty result.
func ExtractRange(output string, startMarker string, endMarker string, includeHelp bool) []string {
	helpLines := strings.Split(output, lineSeparator)
	startLineIndex := indexOfLineContaining(helpLines, startMarker)
	endLineIndex := indexOfLineContaining(helpLines, endMarker)
	if startLineIndex == markerNotFoundLine || endLineIndex == markerNotFoundLine {
		return nil
	}
	if endLineIndex < startLineIndex {
		return nil
	}

	var extractedTokens []string
	for lineIndex := startLineIndex + 1; lineIndex <= endLineIndex && lineIndex < len(helpLines); lineIndex++ {
		currentLine := helpLines[lineIndex]
		if isNoiseLine(currentLine) {
			continue
		}
		lineToken := tokenOfLine(currentLine)
		if lineToken == "" {
			continue
		}
		if !includeHelp && isHelpSentinel(lineToken) {
			continue
		}
		extractedTokens = append(extractedTokens, lineToken)
	}
	return extractedTokens
}

// tokenOfLine isolates the meaningful token of a help item line: the segment after
// the first two-space run. Item lines are indented by two spaces, so the first
// segment is empty and the second carries the command or option text.
func tokenOfLine(helpLine string) string {
	lineSegments := strings.SplitN(helpLine, twoSpaceSeparator, tokenSegmentLimit)
	if len(lineSegments) < 2 {
		return ""
	}
	return lineSegments[1]
}

// indexOfLineContaining returns the index of the first line containing the marker,
// or markerNotFoundLine when the marker is absent.
func indexOfLineContaining(helpLines []string, marker string) int {
	for lineIndex, currentLine := range helpLines {
		if strings.Contains(currentLine, marker) {
			return lineIndex
		}
	}
	return markerNotFoundLine
}

// isNoiseLine reports whether the line contains any configured noise substring.
func isNoiseLine(helpLine string) bool {
	for _, noiseSubstring := range noiseSubstrings {
		if strings.Contains(helpLine, noiseSubstring) {
			return true
		}
	}
	return false
}

// isHelpSentinel reports whether the token is one of the generic help entries that
// close the Commands: and Options: sections.
func isHelpSentinel(lineToken string) bool {
	return lineToken == types.CommandsEndSentinel || lineToken == types.OptionsEndSentinel
}
