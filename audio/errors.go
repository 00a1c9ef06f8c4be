// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidPartition = errors.New("invalid partition")
)
