// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"fmt"

	"emperror.dev/emperror"
	"emperror.dev/errors"
	"go.uber.org/zap"
)

// NewLogErrorHandler returns an error handler that logs every error at error
// level, flattening the key/value details attached with errors.WithDetails
// into zap fields.
func NewLogErrorHandler(logger *zap.Logger) emperror.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return emperror.ErrorHandlerFunc(func(err error) {
		if err == nil {
			return
		}

		details := errors.GetDetails(err)
		fields := make([]zap.Field, 0, len(details)/2+1)
		for i := 0; i+1 < len(details); i += 2 {
			fields = append(fields, zap.Any(fmt.Sprint(details[i]), details[i+1]))
		}
		fields = append(fields, zap.Error(err))
		logger.Error("auto_resolve stash processing failed", fields...)
	})
}
