// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
)

const msgServerUnavailable = "No network connection or the server is unavailable"

// humanizeError shows the fixed message of a failed client call, unless the
// call never reached the server.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if unreachable(err) {
		return msgServerUnavailable
	}
	return err.Error()
}

func unreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	var netErr net.Error
	return errors.As(err, &opErr) || errors.As(err, &dnsErr) ||
		(errors.As(err, &netErr) && netErr.Timeout())
}
