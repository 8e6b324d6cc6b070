package policy

// kidsDenied is the fixed set of content ratings excluded under kids mode.
var kidsDenied = map[string]bool{
	"PG-13":    true,
	"TV-14":    true,
	"TV-MA":    true,
	"R":        true,
	"NR":       true,
	"TV-Y7-FV": true,
	"UR":       true,
}

// KidsAllowed reports whether a title with the given content rating may be
// surfaced under kids mode. An unset rating is allowed.
func KidsAllowed(rating string) bool {
	return !kidsDenied[rating]
}

// KidsDeniedRatings returns the denylist, for building SQL filters.
func KidsDeniedRatings() []string {
	return []string{"PG-13", "TV-14", "TV-MA", "R", "NR", "TV-Y7-FV", "UR"}
}
