package settings

// DB config keys and defaults for settings.
const (
	// SiteNameKey is the DB config key for the site name.
	SiteNameKey = "SITE_NAME"
	// DefaultSiteName is the fallback site name.
	DefaultSiteName = "OCEVAVE"
	// DonationMinAmountKey overrides the minimum accepted donation amount.
	DonationMinAmountKey = "DONATION_MIN_AMOUNT"
	// DefaultDonationMinAmount is the fallback minimum donation amount.
	DefaultDonationMinAmount int64 = 10000
)

// knownKeys lists the keys admins may update.
var knownKeys = map[string]struct{}{
	SiteNameKey:          {},
	DonationMinAmountKey: {},
}

// IsKnownKey reports whether key is an editable setting.
func IsKnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}
