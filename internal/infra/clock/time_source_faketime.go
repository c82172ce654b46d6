//go:build e2e || integration

package clock

import (
	"os"
	"time"
)

// FakeTimeEnv names the variable that pins the clock in e2e and integration builds.
const FakeTimeEnv = "TIMEHANDLER_FAKE_TIME"

func now() time.Time {
	if fakeTime := os.Getenv(FakeTimeEnv); fakeTime != "" {
		t, err := time.Parse(time.RFC3339, fakeTime)
		if err != nil {
			panic("failed to parse " + FakeTimeEnv + ": " + err.Error())
		}
		return t
	}
	return time.Now()
}
