package ingestx

import (
	"fmt"
	"log/slog"
	"strconv"
)

/*
Errors that can be returned while ingesting payloads.
*/

////////////////////////////////////////////////////////////////////////////////

// IngestionError is implemented by every error of this package and by no
// other type.
type IngestionError interface {
	error
	ingestionError()
}

// ProcessingFailedError is a general failure raised by ingestion code.
type ProcessingFailedError struct {
	Message string
	Caller  CallerInfo
}

// NewProcessingFailedError returns a ProcessingFailedError raised at caller.
func NewProcessingFailedError(message string, caller CallerInfo) error {
	return ProcessingFailedError{Message: message, Caller: caller}
}

// ProcessingFailed formats a ProcessingFailedError located at the function
// calling ProcessingFailed.
func ProcessingFailed(format string, args ...any) error {
	return NewProcessingFailedError(fmt.Sprintf(format, args...), Caller(1))
}

// Error returns a string representation of the error.
func (e ProcessingFailedError) Error() string {
	return fmt.Sprintf("processing failed: %s (%s)", e.Message, e.Caller)
}

// Is returns true if the target error is a ProcessingFailedError.
func (e ProcessingFailedError) Is(target error) bool {
	_, ok := target.(ProcessingFailedError)
	return ok
}

// LogValue implements slog.LogValuer.
func (e ProcessingFailedError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("message", e.Message),
		slog.Any("caller", e.Caller),
	)
}

func (ProcessingFailedError) ingestionError() {}

// DowncastFailedError is returned by Downcast when the runtime type of the
// source does not match the target type.
type DowncastFailedError struct {
	Message string
	Caller  CallerInfo
}

func NewDowncastFailedError(message string, caller CallerInfo) error {
	return DowncastFailedError{Message: message, Caller: caller}
}

// Error returns a string representation of the error.
func (e DowncastFailedError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Caller)
}

// Is returns true if the target error is a DowncastFailedError.
func (e DowncastFailedError) Is(target error) bool {
	_, ok := target.(DowncastFailedError)
	return ok
}

// LogValue implements slog.LogValuer.
func (e DowncastFailedError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("message", e.Message),
		slog.Any("caller", e.Caller),
	)
}

func (DowncastFailedError) ingestionError() {}

// NullPayloadIdentityValueError is returned when a payload has no value for
// the key an ingester uses to identify it.
type NullPayloadIdentityValueError struct {
	Ingester string
	Key      string
}

func NewNullPayloadIdentityValueError(ingester, key string) error {
	return NullPayloadIdentityValueError{Ingester: ingester, Key: key}
}

// Error returns a string representation of the error.
func (e NullPayloadIdentityValueError) Error() string {
	return fmt.Sprintf("%s: null identity value for key %q", e.Ingester, e.Key)
}

// Is returns true if the target error is a NullPayloadIdentityValueError.
func (e NullPayloadIdentityValueError) Is(target error) bool {
	_, ok := target.(NullPayloadIdentityValueError)
	return ok
}

func (NullPayloadIdentityValueError) ingestionError() {}

// PayloadMappingFailedError is returned when an ingester fails to map a
// payload onto its model.
type PayloadMappingFailedError struct {
	Ingester string
	Err      error
}

func NewPayloadMappingFailedError(ingester string, err error) error {
	return PayloadMappingFailedError{Ingester: ingester, Err: err}
}

// Error returns a string representation of the error.
func (e PayloadMappingFailedError) Error() string {
	return fmt.Sprintf("%s: payload mapping failed: %v", e.Ingester, e.Err)
}

// Is returns true if the target error is a PayloadMappingFailedError.
func (e PayloadMappingFailedError) Is(target error) bool {
	_, ok := target.(PayloadMappingFailedError)
	return ok
}

func (e PayloadMappingFailedError) Unwrap() error {
	return e.Err
}

func (PayloadMappingFailedError) ingestionError() {}

// KeyExtractionFailedError is returned by the indexing and grouping
// functions when the key function fails. Index is the position of the
// offending item in the source sequence.
type KeyExtractionFailedError struct {
	Index int
	Err   error
}

func NewKeyExtractionFailedError(index int, err error) error {
	return KeyExtractionFailedError{Index: index, Err: err}
}

// Error returns a string representation of the error.
func (e KeyExtractionFailedError) Error() string {
	return "key extraction failed at item " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

// Is returns true if the target error is a KeyExtractionFailedError.
func (e KeyExtractionFailedError) Is(target error) bool {
	_, ok := target.(KeyExtractionFailedError)
	return ok
}

func (e KeyExtractionFailedError) Unwrap() error {
	return e.Err
}

func (KeyExtractionFailedError) ingestionError() {}
