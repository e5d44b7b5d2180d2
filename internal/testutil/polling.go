// Package testutil provides polling helpers for testing asynchronous
// behavior (tickers, managers) with consistent timeouts, instead of
// scattering ad-hoc sleeps through the tests.
package testutil

import (
	"fmt"
	"time"
)

// Poll repeatedly checks condition until it reports true or timeout
// expires, sleeping interval between checks. It returns an error on
// timeout.
func Poll(condition func() bool, timeout, interval time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if condition() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for condition (threshold: %v)", timeout)
		}
		time.Sleep(interval)
	}
}

// WaitClosed waits for ch to be closed, returning an error on timeout.
func WaitClosed(ch <-chan struct{}, timeout time.Duration) error {
	select {
	case <-ch:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("timeout waiting for channel close (threshold: %v)", timeout)
	}
}
