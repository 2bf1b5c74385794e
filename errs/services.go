package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// External Collaborator Errors (object storage, transactional email)
var (
	ErrStorageUpload      = errors.New("storage upload failed")
	ErrStorageDelete      = errors.New("storage delete failed")
	ErrEmailSend          = errors.New("email send failed")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("timeout")
)

// Configuration & Environment Errors
var (
	ErrConfigMissing = errors.New("configuration missing")
	ErrConfigInvalid = errors.New("configuration invalid")
)

// NewStorageUploadError reports a failed object-storage upload. Catalog state
// is never mutated before the upload succeeds, so this error implies no
// partial writes.
func NewStorageUploadError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorageUpload,
		Details:    fmt.Sprintf("Failed to upload object %s", key),
		Cause:      cause,
	}
}

// NewStorageDeleteError reports a failed object-storage deletion. Callers
// performing best-effort cleanup log this and carry on.
func NewStorageDeleteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrStorageDelete,
		Details:    fmt.Sprintf("Failed to delete object %s", key),
		Cause:      cause,
	}
}

func NewEmailSendError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmailSend,
		Details:    "Failed to send email",
		Cause:      cause,
	}
}

func NewServiceUnavailableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("Service unavailable: %s", service),
		Cause:      cause,
	}
}

func NewConfigMissingError(name string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Missing configuration: %s", name),
		Field:      name,
	}
}

func IsStorageUploadError(err error) bool {
	return errors.Is(err, ErrStorageUpload)
}

func IsStorageDeleteError(err error) bool {
	return errors.Is(err, ErrStorageDelete)
}

func IsEmailSendError(err error) bool {
	return errors.Is(err, ErrEmailSend)
}
