package entity

import "time"

// TimestampLayout is the wire and storage format for all action and
// follow-up timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// followUpDays is the fixed follow-up window applied to an action's
// timestamp to schedule the next contact.
const followUpDays = 7

// NowTimestamp returns the current local time in TimestampLayout.
func NowTimestamp() string {
	return time.Now().Format(TimestampLayout)
}

// FollowUpAfter returns ts shifted by the follow-up window. The shift is
// calendar addition and preserves the time of day.
func FollowUpAfter(ts string) (string, error) {
	t, err := time.ParseInLocation(TimestampLayout, ts, time.Local)
	if err != nil {
		return "", &ValidationError{Message: "Invalid timestamp format"}
	}
	return t.AddDate(0, 0, followUpDays).Format(TimestampLayout), nil
}
