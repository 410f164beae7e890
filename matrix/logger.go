// SPDX-License-Identifier: MIT

package matrix

import logging "github.com/ipfs/go-log/v2"

// log is the package logger. It emits debug events at operation boundaries
// only (absent inverses, degenerate null spaces); kernels never log.
// Enable with logging.SetLogLevel("matrix", "debug").
var log = logging.Logger("matrix")
