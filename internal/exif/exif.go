// internal/exif/exif.go
package exif

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrium/goheif"
	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// DateField identifies one of the date-bearing tags consulted when
// deriving a capture date.
type DateField int

const (
	DateTimeOriginal DateField = iota
	DateTimeDigitized
	SceneCaptureType
)

// Axis identifies one GPS coordinate axis.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

// Coordinate holds the raw degree/minute/second encoding of one GPS
// axis together with its hemisphere reference.
type Coordinate struct {
	Degrees float64
	Minutes float64
	Seconds float64
	Valid   bool   // all three rational components decoded
	Ref     string // hemisphere letter (N/S/E/W)
	RefOK   bool   // reference tag decoded as a string
}

// Data is the fixed schema of tags the renamer consumes. Tags missing
// from the file report as absent; tags present with a non-string value
// report presence with an empty value.
type Data struct {
	dates  map[DateField]string
	coords map[Axis]Coordinate
}

var dateFieldNames = map[DateField]goexif.FieldName{
	DateTimeOriginal:  goexif.DateTimeOriginal,
	DateTimeDigitized: goexif.DateTimeDigitized,
	SceneCaptureType:  goexif.SceneCaptureType,
}

var gpsFieldNames = map[Axis]struct{ value, ref goexif.FieldName }{
	Latitude:  {goexif.GPSLatitude, goexif.GPSLatitudeRef},
	Longitude: {goexif.GPSLongitude, goexif.GPSLongitudeRef},
}

// Decode reads the EXIF block from r and builds the tag schema.
func Decode(r io.Reader) (*Data, error) {
	x, err := goexif.Decode(r)
	if err != nil {
		return nil, err
	}

	d := &Data{
		dates:  make(map[DateField]string),
		coords: make(map[Axis]Coordinate),
	}

	for field, name := range dateFieldNames {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		val, err := tag.StringVal()
		if err != nil {
			val = "" // present but not string-typed
		}
		d.dates[field] = val
	}

	for axis, names := range gpsFieldNames {
		value, err := x.Get(names.value)
		if err != nil {
			continue
		}
		ref, err := x.Get(names.ref)
		if err != nil {
			continue
		}
		d.coords[axis] = decodeCoordinate(value, ref)
	}

	return d, nil
}

// DecodeFile decodes the EXIF tags of the photo at path. HEIC
// containers carry the EXIF payload in a separate box, extracted first.
func DecodeFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".heic") {
		raw, err := goheif.ExtractExif(f)
		if err != nil {
			return nil, fmt.Errorf("extracting exif from %s: %w", filepath.Base(path), err)
		}
		return Decode(bytes.NewReader(raw))
	}

	return Decode(f)
}

// DateValue returns the raw value of a date tag and whether the tag is
// present in the file.
func (d *Data) DateValue(f DateField) (string, bool) {
	val, ok := d.dates[f]
	return val, ok
}

// Coordinate returns the DMS encoding of one axis. ok is false when
// either the value tag or its hemisphere reference tag is missing.
func (d *Data) Coordinate(a Axis) (Coordinate, bool) {
	c, ok := d.coords[a]
	return c, ok
}

func decodeCoordinate(value, ref *tiff.Tag) Coordinate {
	var c Coordinate

	var comps [3]float64
	valid := true
	for i := range comps {
		rat, err := value.Rat(i)
		if err != nil {
			valid = false
			break
		}
		comps[i], _ = rat.Float64()
	}
	if valid {
		c.Degrees, c.Minutes, c.Seconds = comps[0], comps[1], comps[2]
		c.Valid = true
	}

	if s, err := ref.StringVal(); err == nil {
		c.Ref = strings.TrimSpace(s)
		c.RefOK = true
	}

	return c
}
