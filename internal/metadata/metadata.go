package metadata

import (
	"strings"

	"github.com/jmoren/photorename/internal/exif"
)

// Parsed is the per-file result of metadata extraction, consumed once
// to build the new filename. Empty strings mean the field could not be
// derived.
type Parsed struct {
	Date    string
	Address string
}

// TagSource is the slice of tag access the extractors need.
type TagSource interface {
	DateValue(f exif.DateField) (string, bool)
	Coordinate(a exif.Axis) (exif.Coordinate, bool)
}

// dateFields in priority order. SceneCaptureType is not a timestamp tag
// but the chain has always consulted it last; kept as-is.
var dateFields = []exif.DateField{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.SceneCaptureType,
}

// Date derives a YYYY-MM-DD capture date from the tags. The first
// present field in priority order wins; a present field whose value
// cannot be read as a string yields no date rather than falling through.
func Date(src TagSource) string {
	for _, f := range dateFields {
		val, ok := src.DateValue(f)
		if !ok {
			continue
		}
		return normalizeDate(val)
	}
	return ""
}

// normalizeDate turns an EXIF "YYYY:MM:DD HH:MM:SS" value into
// YYYY-MM-DD.
func normalizeDate(v string) string {
	date, _, _ := strings.Cut(v, " ")
	return strings.ReplaceAll(date, ":", "-")
}

// Decimal converts one axis to signed decimal degrees, negated for the
// S and W hemispheres. ok is false on malformed components or a
// malformed reference.
func Decimal(c exif.Coordinate) (float64, bool) {
	if !c.Valid || !c.RefOK {
		return 0, false
	}
	dec := c.Degrees + c.Minutes/60 + c.Seconds/3600
	if c.Ref == "S" || c.Ref == "W" {
		dec = -dec
	}
	return dec, true
}

// Coordinates resolves both GPS axes to decimal degrees. ok only when
// both axes decode; a missing or malformed tag on either side leaves
// the position unavailable.
func Coordinates(src TagSource) (lat, lon float64, ok bool) {
	latRaw, latPresent := src.Coordinate(exif.Latitude)
	lonRaw, lonPresent := src.Coordinate(exif.Longitude)
	if !latPresent || !lonPresent {
		return 0, 0, false
	}

	lat, latOK := Decimal(latRaw)
	lon, lonOK := Decimal(lonRaw)
	if !latOK || !lonOK {
		return 0, 0, false
	}
	return lat, lon, true
}
