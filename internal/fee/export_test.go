package fee

import "time"

// SetClock fixes the service's notion of now in tests.
func SetClock(svc Service, now func() time.Time) {
	svc.(*service).now = now
}
