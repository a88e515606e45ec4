package dashsearch

import "errors"

var (
	// ErrReservedField is returned when a caller schema or record uses ContentField.
	ErrReservedField = errors.New("dashsearch: field name " + ContentField + " is reserved")

	// ErrEmptyContent is returned when a record or query has no text to embed.
	ErrEmptyContent = errors.New("dashsearch: content is empty")

	// ErrRecordNotFound is returned by GetRecord for an unknown id.
	ErrRecordNotFound = errors.New("dashsearch: record not found")

	// ErrMalformedRecord is returned when a stored document's content field is not a string.
	ErrMalformedRecord = errors.New("dashsearch: malformed stored record")
)
