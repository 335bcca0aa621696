package detector

import "errors"

// ErrInvalidLayoutData reports a snapshot element with malformed geometry or
// style. The pipeline fails fast on it and produces no partial result.
var ErrInvalidLayoutData = errors.New("invalid layout data")
