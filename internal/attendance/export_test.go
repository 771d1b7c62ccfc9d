package attendance

import "time"

// SetClock fixes the service's notion of today in tests.
func SetClock(svc Service, now func() time.Time) {
	svc.(*service).now = now
}
