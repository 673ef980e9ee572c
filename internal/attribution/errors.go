package attribution

import "fmt"

// DataIntegrityError marks a record that cannot be attributed: an empty
// journey that owns a conversion, or a conversion with a negative order
// value. It is fatal for the affected record only; callers collect these and
// report them in aggregate instead of aborting the run.
type DataIntegrityError struct {
	CustomerID   string
	ConversionID string
	Reason       string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error for customer %s (conversion %s): %s", e.CustomerID, e.ConversionID, e.Reason)
}
