package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// AspectMismatch reports a file whose filename declares different pixel
// dimensions than its EXIF metadata.
type AspectMismatch struct {
	File     string
	Declared string // from the filename, e.g. "1920 / 1080"
	Actual   string // from EXIF pixel dimensions
}

// CheckAspects compares the WxH declared in each accepted JPEG filename
// against the EXIF pixel dimensions of the file in dir. Only EXIF headers
// are read, never pixel data. Files that are not JPEGs, carry no EXIF block,
// or lack pixel dimension tags are skipped.
func CheckAspects(dir string, records []Record) ([]AspectMismatch, error) {
	var mismatches []AspectMismatch
	for _, r := range records {
		ext := strings.ToLower(filepath.Ext(r.File))
		if ext != ".jpg" && ext != ".jpeg" {
			continue
		}
		w, h, ok, err := exifDimensions(filepath.Join(dir, r.File))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		dw, dh, ok := declaredDimensions(r.Aspect)
		if !ok {
			continue
		}
		if w != dw || h != dh {
			mismatches = append(mismatches, AspectMismatch{
				File:     r.File,
				Declared: r.Aspect,
				Actual:   fmt.Sprintf("%d / %d", w, h),
			})
		}
	}
	return mismatches, nil
}

// declaredDimensions parses a manifest aspect string back into integers so
// comparison ignores leading zeros in the filename digits.
func declaredDimensions(aspect string) (w, h int, ok bool) {
	parts := strings.Split(aspect, " / ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, werr := strconv.Atoi(parts[0])
	h, herr := strconv.Atoi(parts[1])
	if werr != nil || herr != nil {
		return 0, 0, false
	}
	return w, h, true
}

func exifDimensions(path string) (w, h int, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false, fmt.Errorf("gallery: open image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// No EXIF block is common for exported web images.
		return 0, 0, false, nil
	}
	w, werr := tagInt(x, exif.PixelXDimension)
	h, herr := tagInt(x, exif.PixelYDimension)
	if werr != nil || herr != nil {
		return 0, 0, false, nil
	}
	return w, h, true, nil
}

func tagInt(x *exif.Exif, name exif.FieldName) (int, error) {
	tag, err := x.Get(name)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}
