package types

import "strconv"

// ------------------------------
// Shared Validation
// ------------------------------

// ValidatePublishedFileID checks that id parses as an unsigned 64-bit
// integer, the transport encoding Steam uses for published file ids.
func ValidatePublishedFileID(id string) error {
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return &BadRequestError{Field: "publishedfileid", Value: id}
	}
	return nil
}

// ValidatePublishedFileIDs checks every id, failing on the first offender
// so no request parameters are built from bad input.
func ValidatePublishedFileIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidatePublishedFileID(id); err != nil {
			return err
		}
	}
	return nil
}
