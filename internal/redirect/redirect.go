// Package redirect computes the post-auth redirect destination.
package redirect

import "strings"

// Resolve returns the absolute URL to send the browser to after a
// completed auth flow. next must be a relative path; anything else is
// replaced with "/" so externally supplied absolute URLs can never
// become the destination.
//
// In development the request origin always wins, since local setups
// sit behind no trustworthy proxy. In production a present
// x-forwarded-host names the public host and is always served over
// https.
func Resolve(origin, forwardedHost, next string, dev bool) string {
	if !strings.HasPrefix(next, "/") {
		next = "/"
	}

	if dev {
		return origin + next
	}

	if forwardedHost != "" {
		return "https://" + forwardedHost + next
	}

	return origin + next
}
