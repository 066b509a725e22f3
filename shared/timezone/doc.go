// Package timezone keeps the application timezone loaded from APP_TIMEZONE.
//
//	now := timezone.Now()                    // current time in the app timezone
//	appTime := timezone.ToAppTime(someTime)  // convert any time to the app timezone
//	t, err := timezone.Parse("2006-01-02", "2025-02-01")
//
// Only IANA names are accepted ("UTC", "Asia/Jakarta", "Europe/London"); anything else falls back to UTC.
// Calendar dates (availability days, peak rate bounds) are not zoned: see package period.
package timezone
