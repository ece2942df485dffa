package services

import "time"

// Foods expiring inside this window count as nearly expired. An earlier
// comment in the original service called this three days while the code
// used five; five is the behavior clients depend on.
const nearlyExpiredWindow = 5 * 24 * time.Hour

// isoLayout matches JavaScript's Date.toISOString(), which is what clients
// send for expiryDate. Keeping the same shape keeps lexicographic
// comparison of date strings valid.
const isoLayout = "2006-01-02T15:04:05.000Z"

func isoStamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// expiryWindow returns the closed [now, now+5d] bounds as ISO strings.
func expiryWindow(now time.Time) (from, to string) {
	return isoStamp(now), isoStamp(now.Add(nearlyExpiredWindow))
}
