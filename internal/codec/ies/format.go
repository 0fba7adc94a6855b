package ies

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFormatID is emitted when a document carries no format
// identifier of its own.
const DefaultFormatID = "IESNA:LM-63-2002"

// tiltNone is the only tilt mode the codec models. Tilt tables are not
// supported; files declaring one are rejected at parse time.
const tiltNone = "TILT=NONE"

// Keyword names of the metadata fields the model understands.
const (
	kwTest          = "TEST"
	kwTestLab       = "TESTLAB"
	kwTestDate      = "TESTDATE"
	kwIssueDate     = "ISSUEDATE"
	kwLampPosition  = "LAMPPOSITION"
	kwOther         = "OTHER"
	kwNearField     = "NEARFIELD"
	kwManufacturer  = "MANUFAC"
	kwLuminaire     = "LUMINAIRE"
	kwLumCatalog    = "LUMCAT"
	kwLamp          = "LAMP"
	kwLampCatalog   = "LAMPCAT"
	kwBallast       = "BALLAST"
	kwBallastCat    = "BALLASTCAT"
	kwColorTemp     = "COLORTEMP"
	kwCRI           = "CRI"
	kwOpeningLength = "LUMINOUSOPENINGLENGTH"
	kwOpeningWidth  = "LUMINOUSOPENINGWIDTH"
	kwOpeningHeight = "LUMINOUSOPENINGHEIGHT"
)

// formatNum renders a numeric value truncated (toward zero, never
// rounded) at the third decimal, without trailing zeros. Truncation is
// a format-compatibility requirement: reference tooling diffs output
// byte for byte.
func formatNum(v float64) string {
	t := math.Trunc(v*1000) / 1000
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// formatNums renders a whitespace-joined numeric line.
func formatNums(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNum(v)
	}
	return strings.Join(parts, " ")
}
