package consumer

import "time"

func SetRetryBackoff(initial, maxBackoff time.Duration) func() {
	prevInitial, prevMax := retryInitialBackoff, retryMaxBackoff
	retryInitialBackoff, retryMaxBackoff = initial, maxBackoff
	return func() {
		retryInitialBackoff, retryMaxBackoff = prevInitial, prevMax
	}
}
