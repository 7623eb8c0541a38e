package quotation

import "fmt"

// ValidationError reports incomplete or invalid caller input. The caller can
// fix the form and submit again; nothing is retried automatically.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// ConfigurationError reports a selected catalog id that does not resolve.
type ConfigurationError struct {
	Entity string
	ID     int64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s id=%d does not exist in the catalog", e.Entity, e.ID)
}

// DeliveryError reports a failed render or send attempt. ArtifactPath is set
// when the document was already rendered, so it can be resent manually
// without recomputing the price.
type DeliveryError struct {
	Stage        Stage
	ArtifactPath string
	Err          error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed at %s: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
