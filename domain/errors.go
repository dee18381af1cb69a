package domain

import "fmt"

// InvalidArgumentError is raised at the call site for malformed
// outbound arguments, before anything is sent over the wire.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (invalidArgument *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", invalidArgument.Field, invalidArgument.Reason)
}

// DecodeError means the inbound text is not a well-formed JSON envelope.
type DecodeError struct {
	Err error
}

func (decodeError *DecodeError) Error() string {
	return fmt.Sprintf("decode message: %v", decodeError.Err)
}

func (decodeError *DecodeError) Unwrap() error { return decodeError.Err }

// SchemaError means a known channel's payload violated its wire schema
// (missing required field or wrong field type).
type SchemaError struct {
	Channel string
	Field   string
	Err     error
}

func (schemaError *SchemaError) Error() string {
	if schemaError.Err != nil {
		return fmt.Sprintf("channel %s: field %q: %v", schemaError.Channel, schemaError.Field, schemaError.Err)
	}
	return fmt.Sprintf("channel %s: field %q: schema violation", schemaError.Channel, schemaError.Field)
}

func (schemaError *SchemaError) Unwrap() error { return schemaError.Err }
