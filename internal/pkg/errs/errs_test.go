package errs_test

import (
	"errors"
	"testing"

	"spotserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("jobId", "123")

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("jobId", "123", cause)

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: jobId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("latitude")

		assert.Equal(t, "latitude", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: latitude", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("latitude", cause)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: latitude (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("serviceId")

		assert.Equal(t, "serviceId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: serviceId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("serviceId", cause)

		assert.Equal(t, "serviceId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: serviceId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("cancel", "Accepted")

		assert.Equal(t, "cancel", err.Operation)
		assert.Equal(t, "Accepted", err.Status)
		assert.Equal(t, "invalid state: cancel is not allowed in status Accepted", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal status")
		err := errs.NewInvalidStateErrorWithCause("accept", "Completed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: accept is not allowed in status Completed (cause: terminal status)",
			err.Error())
	})
}

func TestStatusConflictError(t *testing.T) {
	err := errs.NewStatusConflictError("job", "123", "Pending")

	assert.Equal(t, "job", err.ParamName)
	assert.Equal(t, "123", err.ID)
	assert.Equal(t, "Pending", err.Expected)
	assert.Equal(t, "status conflict: job 123 is no longer in status Pending", err.Error())
	assert.ErrorIs(t, err, errs.ErrStatusConflict)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("job does not belong to requester")

	assert.Equal(t, "access denied: job does not belong to requester", err.Error())
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestInvalidCredentialError(t *testing.T) {
	err := errs.NewInvalidCredentialError("otp")

	assert.Equal(t, "credential is invalid: otp", err.Error())
	assert.ErrorIs(t, err, errs.ErrInvalidCredential)
}

func TestPaymentProviderError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("checkout session rejected")
		err := errs.NewPaymentProviderError(cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "payment provider failed (cause: checkout session rejected)", err.Error())
		assert.ErrorIs(t, err, errs.ErrPaymentProvider)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPaymentProviderError(nil)
		assert.Equal(t, "payment provider failed", err.Error())
	})
}
