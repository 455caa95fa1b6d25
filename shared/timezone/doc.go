// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Calendar dates from the booking form:
//     day, err := timezone.ParseDate("2025-06-02", timezone.GetLocation())
//
//  3. Comparing dates regardless of wall clock:
//     today := timezone.StartOfDay(timezone.Now())
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
