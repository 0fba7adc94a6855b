package ies

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec parses and generates LM-63 style photometric files.
type Codec struct{}

// New creates a new codec.
func New() *Codec {
	return &Codec{}
}

// Parse converts raw file text into a typed document. Parsing either
// succeeds completely or fails atomically; no partial document is ever
// returned. Mandatory structural failures wrap domain.ErrFormat,
// declared-versus-actual count disagreements wrap domain.ErrArity.
func (c *Codec) Parse(text, fileName string) (*domain.Document, error) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrFormat)
	}

	var meta domain.Metadata
	i := 0

	// The first non-blank line is the format identifier, stored
	// verbatim. Files that open directly with a keyword or tilt line
	// carry no identifier; generation falls back to the default.
	if !isKeywordLine(lines[i]) && !isTiltLine(lines[i]) {
		meta.Format = domain.NewField(lines[i])
		i++
	}

	for i < len(lines) && isKeywordLine(lines[i]) {
		if err := parseKeyword(lines[i], &meta); err != nil {
			return nil, err
		}
		i++
	}

	if i >= len(lines) || !isTiltLine(lines[i]) {
		return nil, fmt.Errorf("%w: missing tilt line", domain.ErrFormat)
	}
	// Tilt tables are not modeled; the engine assumes no tilt.
	if strings.ReplaceAll(lines[i], " ", "") != tiltNone {
		return nil, fmt.Errorf("%w: unsupported tilt mode %q", domain.ErrFormat, lines[i])
	}
	i++

	// Everything after the tilt line is one flat numeric stream.
	// Candela rows wrap across physical lines in real-world files, so
	// tokenization never assumes one line per row.
	nums, err := parseNumbers(lines[i:])
	if err != nil {
		return nil, err
	}

	photo, err := parsePhotometric(nums)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		FileName:    fileName,
		Metadata:    meta,
		Photometric: *photo,
	}
	return doc, nil
}

// parsePhotometric consumes the flat numeric stream: the ten-number
// main line, the three-number ballast line, both angle sequences and
// the candela grid, re-chunked by the declared row length.
func parsePhotometric(nums []float64) (*domain.PhotometricData, error) {
	if len(nums) < 10 {
		return nil, fmt.Errorf("%w: main numeric line incomplete, found %d of 10 values",
			domain.ErrFormat, len(nums))
	}

	p := &domain.PhotometricData{
		NumberOfLamps:            int(nums[0]),
		LumensPerLamp:            nums[1],
		Multiplier:               nums[2],
		NumberOfVerticalAngles:   int(nums[3]),
		NumberOfHorizontalAngles: int(nums[4]),
		PhotometricType:          domain.PhotometricType(int(nums[5])),
		UnitsType:                domain.UnitsType(int(nums[6])),
		// The format places width before length on the main line.
		Width:  nums[7],
		Length: nums[8],
		Height: nums[9],
	}

	if p.NumberOfLamps < 1 {
		return nil, fmt.Errorf("%w: number of lamps must be at least 1, got %d",
			domain.ErrFormat, p.NumberOfLamps)
	}
	if p.NumberOfVerticalAngles < 1 || p.NumberOfHorizontalAngles < 1 {
		return nil, fmt.Errorf("%w: angle counts must be at least 1, got %d vertical and %d horizontal",
			domain.ErrFormat, p.NumberOfVerticalAngles, p.NumberOfHorizontalAngles)
	}
	if p.UnitsType != domain.UnitsFeet && p.UnitsType != domain.UnitsMeters {
		return nil, fmt.Errorf("%w: unknown units type %d", domain.ErrFormat, int(p.UnitsType))
	}

	if len(nums) < 13 {
		return nil, fmt.Errorf("%w: ballast line incomplete, found %d of 3 values",
			domain.ErrFormat, len(nums)-10)
	}
	p.BallastFactor = nums[10]
	p.BallastLampPhotometricFactor = nums[11]
	p.InputWatts = nums[12]

	rest := nums[13:]
	nV, nH := p.NumberOfVerticalAngles, p.NumberOfHorizontalAngles

	if len(rest) < nV {
		return nil, fmt.Errorf("%w: declared %d vertical angles, found %d",
			domain.ErrArity, nV, len(rest))
	}
	p.VerticalAngles = append([]float64(nil), rest[:nV]...)
	rest = rest[nV:]

	if len(rest) < nH {
		return nil, fmt.Errorf("%w: declared %d horizontal angles, found %d",
			domain.ErrArity, nH, len(rest))
	}
	p.HorizontalAngles = append([]float64(nil), rest[:nH]...)
	rest = rest[nH:]

	if len(rest) != nH*nV {
		return nil, fmt.Errorf("%w: expected %d candela samples (%d rows of %d), found %d",
			domain.ErrArity, nH*nV, nH, nV, len(rest))
	}
	p.CandelaValues = make([][]float64, nH)
	for row := 0; row < nH; row++ {
		p.CandelaValues[row] = append([]float64(nil), rest[row*nV:(row+1)*nV]...)
	}

	// Stored explicitly so later scaling operations that set it
	// directly stay authoritative.
	p.TotalLumens = float64(p.NumberOfLamps) * p.LumensPerLamp * p.Multiplier

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// parseKeyword maps one [KEYWORD] value line to its metadata field.
// Unrecognized keywords are preserved opaquely in file order.
func parseKeyword(line string, meta *domain.Metadata) error {
	end := strings.Index(line, "]")
	if end < 0 {
		return fmt.Errorf("%w: malformed keyword line %q", domain.ErrFormat, line)
	}
	name := strings.ToUpper(strings.TrimSpace(line[1:end]))
	value := strings.TrimSpace(line[end+1:])
	field := domain.NewField(value)

	switch name {
	case kwTest:
		meta.Test = field
	case kwTestLab:
		meta.TestLab = field
	case kwTestDate:
		meta.TestDate = field
	case kwIssueDate:
		meta.IssueDate = field
	case kwLampPosition:
		meta.LampPosition = field
	case kwOther:
		meta.Other = field
	case kwNearField:
		// Generation appends the projected luminous-opening
		// dimensions; only the descriptor itself is stored.
		meta.NearField = domain.NewField(stripNearFieldDims(value))
	case kwManufacturer:
		meta.Manufacturer = field
	case kwLuminaire:
		meta.Luminaire = field
	case kwLumCatalog:
		meta.LuminaireCatalog = field
	case kwLamp:
		meta.Lamp = field
	case kwLampCatalog:
		meta.LampCatalog = field
	case kwBallast:
		meta.Ballast = field
	case kwBallastCat:
		meta.BallastCatalog = field
	case kwColorTemp:
		// Stored without the unit marker; generation re-adds it.
		meta.ColorTemp = domain.NewField(strings.TrimSuffix(value, "K"))
	case kwCRI:
		meta.CRI = field
	case kwOpeningLength:
		meta.OpeningLength = field
	case kwOpeningWidth:
		meta.OpeningWidth = field
	case kwOpeningHeight:
		meta.OpeningHeight = field
	default:
		meta.Extra = append(meta.Extra, domain.Keyword{Name: name, Value: value})
	}
	return nil
}

// stripNearFieldDims drops the three trailing numeric tokens a
// generated near-field line carries, when present.
func stripNearFieldDims(value string) string {
	tokens := strings.Fields(value)
	if len(tokens) < 4 {
		return value
	}
	for _, tok := range tokens[len(tokens)-3:] {
		if _, err := strconv.ParseFloat(tok, 64); err != nil {
			return value
		}
	}
	return strings.Join(tokens[:len(tokens)-3], " ")
}

// parseNumbers flattens the given lines into one numeric token stream.
func parseNumbers(lines []string) ([]float64, error) {
	tokens := strings.Fields(strings.Join(lines, " "))
	nums := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric token %q", domain.ErrFormat, tok)
		}
		nums[i] = v
	}
	return nums, nil
}

// nonBlankLines splits text into trimmed, non-empty lines.
func nonBlankLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func isKeywordLine(line string) bool {
	return strings.HasPrefix(line, "[")
}

func isTiltLine(line string) bool {
	return strings.HasPrefix(line, "TILT")
}
