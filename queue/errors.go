// SPDX-License-Identifier: MIT

package queue

import "errors"

// ErrEmpty is returned by Pop and Peek on an empty queue.
var ErrEmpty = errors.New("queue: empty")
