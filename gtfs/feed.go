package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Feed member names the pipeline consumes.
const (
	FileCalendar      = "calendar.txt"
	FileCalendarDates = "calendar_dates.txt"
	FileTrips         = "trips.txt"
	FileStopTimes     = "stop_times.txt"
)

// Feed gives named access to the text members of a GTFS zip bundle. Member
// lookup is case-insensitive.
type Feed struct {
	files  map[string]*zip.File
	closer io.Closer
}

// OpenFeed opens a GTFS zip on disk.
func OpenFeed(path string) (*Feed, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open feed %s: %w", path, err)
	}
	f := newFeed(&zr.Reader)
	f.closer = zr
	return f, nil
}

// NewFeedFromBytes reads a GTFS zip already held in memory.
func NewFeedFromBytes(b []byte) (*Feed, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	return newFeed(zr), nil
}

// FetchFeed downloads a GTFS zip and opens it. CLI convenience; callers that
// already hold the bytes should use NewFeedFromBytes.
func FetchFeed(url string) (*Feed, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: HTTP %d from %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return NewFeedFromBytes(b)
}

func newFeed(zr *zip.Reader) *Feed {
	files := make(map[string]*zip.File, len(zr.File))
	for _, zf := range zr.File {
		files[strings.ToLower(zf.Name)] = zf
	}
	return &Feed{files: files}
}

// ReadFile returns the full text of a feed member and whether the member is
// present. Absence of a member is not an error; optional files are a normal,
// handled case.
func (f *Feed) ReadFile(name string) (string, bool, error) {
	zf, ok := f.files[strings.ToLower(name)]
	if !ok {
		return "", false, nil
	}
	rc, err := zf.Open()
	if err != nil {
		return "", true, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", true, fmt.Errorf("read %s: %w", name, err)
	}
	return string(b), true, nil
}

// Close releases the underlying zip when the feed was opened from disk.
func (f *Feed) Close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}
