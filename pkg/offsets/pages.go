package offsets

import (
	"errors"
	"fmt"
)

// ErrPageNotFound matches every *PageNotFoundError
var ErrPageNotFound = errors.New("page not found")

// PageNotFoundError reports a page identifier with no matching page start in the document
type PageNotFoundError struct {
	Dialect Dialect
	ID      string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s page with id '%s'", e.Dialect, e.ID)
}

func (e *PageNotFoundError) Is(target error) bool {
	return target == ErrPageNotFound
}

// pageOffset returns the byte offset where the page with the given id starts
func pageOffset(doc []byte, spec *dialectSpec, id string) (int, error) {
	loc := spec.pageStartPattern(id).FindIndex(doc)
	if loc == nil {
		return 0, &PageNotFoundError{Dialect: spec.dialect, ID: id}
	}
	return loc[0], nil
}

// pageRegion resolves the [start, end) byte region covered by a page range.
// Empty ids stand for the document start and end respectively.
func pageRegion(doc []byte, spec *dialectSpec, startID, endID string) (int, int, error) {
	start, end := 0, len(doc)
	var err error
	if startID != "" {
		if start, err = pageOffset(doc, spec, startID); err != nil {
			return 0, 0, err
		}
	}
	if endID != "" {
		if end, err = pageOffset(doc, spec, endID); err != nil {
			return 0, 0, err
		}
	}
	// An end page that precedes the start page selects nothing
	if end < start {
		end = start
	}
	return start, end, nil
}
