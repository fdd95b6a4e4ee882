// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig indicates a run file that cannot describe a calculation.
var ErrInvalidConfig = errors.New("config: invalid configuration")
