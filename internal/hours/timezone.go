package hours

import "strings"

// DefaultTimezone is returned when no location signal is usable. It is
// exported so callers can detect the fallback by comparison.
const DefaultTimezone = "America/New_York"

const (
	zoneEastern  = "America/New_York"
	zoneCentral  = "America/Chicago"
	zoneMountain = "America/Denver"
	zonePacific  = "America/Los_Angeles"
	zoneAlaska   = "America/Anchorage"
	zoneHawaii   = "Pacific/Honolulu"
)

// metroZones maps "city|state" (lowercased) to a timezone for the major US
// metros present in the dataset. Consulted only when coordinates are absent.
var metroZones = map[string]string{
	"new york|ny":       zoneEastern,
	"brooklyn|ny":       zoneEastern,
	"queens|ny":         zoneEastern,
	"monsey|ny":         zoneEastern,
	"lakewood|nj":       zoneEastern,
	"teaneck|nj":        zoneEastern,
	"boston|ma":         zoneEastern,
	"philadelphia|pa":   zoneEastern,
	"baltimore|md":      zoneEastern,
	"miami|fl":          zoneEastern,
	"miami beach|fl":    zoneEastern,
	"boca raton|fl":     zoneEastern,
	"atlanta|ga":        zoneEastern,
	"chicago|il":        zoneCentral,
	"skokie|il":         zoneCentral,
	"houston|tx":        zoneCentral,
	"dallas|tx":         zoneCentral,
	"austin|tx":         zoneCentral,
	"st louis|mo":       zoneCentral,
	"minneapolis|mn":    zoneCentral,
	"denver|co":         zoneMountain,
	"phoenix|az":        "America/Phoenix",
	"salt lake city|ut": zoneMountain,
	"los angeles|ca":    zonePacific,
	"san francisco|ca":  zonePacific,
	"san diego|ca":      zonePacific,
	"seattle|wa":        zonePacific,
	"portland|or":       zonePacific,
	"las vegas|nv":      zonePacific,
}

// stateZones is the per-state fallback when the metro table misses.
var stateZones = map[string]string{
	"CT": zoneEastern, "DC": zoneEastern, "DE": zoneEastern, "FL": zoneEastern,
	"GA": zoneEastern, "IN": zoneEastern, "KY": zoneEastern, "MA": zoneEastern,
	"MD": zoneEastern, "ME": zoneEastern, "MI": zoneEastern, "NC": zoneEastern,
	"NH": zoneEastern, "NJ": zoneEastern, "NY": zoneEastern, "OH": zoneEastern,
	"PA": zoneEastern, "RI": zoneEastern, "SC": zoneEastern, "VA": zoneEastern,
	"VT": zoneEastern, "WV": zoneEastern,
	"AL": zoneCentral, "AR": zoneCentral, "IA": zoneCentral, "IL": zoneCentral,
	"KS": zoneCentral, "LA": zoneCentral, "MN": zoneCentral, "MO": zoneCentral,
	"MS": zoneCentral, "ND": zoneCentral, "NE": zoneCentral, "OK": zoneCentral,
	"SD": zoneCentral, "TN": zoneCentral, "TX": zoneCentral, "WI": zoneCentral,
	"AZ": "America/Phoenix",
	"CO": zoneMountain, "ID": zoneMountain, "MT": zoneMountain, "NM": zoneMountain,
	"UT": zoneMountain, "WY": zoneMountain,
	"CA": zonePacific, "NV": zonePacific, "OR": zonePacific, "WA": zonePacific,
	"AK": zoneAlaska,
	"HI": zoneHawaii,
}

var stateNames = map[string]string{
	"new york": "NY", "new jersey": "NJ", "california": "CA", "florida": "FL",
	"illinois": "IL", "texas": "TX", "colorado": "CO", "washington": "WA",
	"massachusetts": "MA", "pennsylvania": "PA", "maryland": "MD",
	"georgia": "GA", "arizona": "AZ", "nevada": "NV", "oregon": "OR",
	"connecticut": "CT", "ohio": "OH", "michigan": "MI", "minnesota": "MN",
	"missouri": "MO",
}

// ResolveTimezone picks a timezone identifier for a restaurant location.
// Valid coordinates win; city/state is the second choice; otherwise the
// documented default. The function never fails.
func ResolveTimezone(lat, lng *float64, city, state string) string {
	if lat != nil && lng != nil && validCoordinates(*lat, *lng) {
		return zoneForCoordinates(*lat, *lng)
	}
	if zone := zoneForCityState(city, state); zone != "" {
		return zone
	}
	return DefaultTimezone
}

func validCoordinates(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// zoneForCoordinates uses coarse longitude banding over the continental US,
// with Alaska and Hawaii carved out by latitude. Band edges are tuned so the
// dataset's metros land in the right zone (Austin stays Central, Denver
// Mountain, Las Vegas Pacific).
func zoneForCoordinates(lat, lng float64) string {
	if lat >= 18 && lat <= 23 && lng <= -154 && lng >= -161 {
		return zoneHawaii
	}
	if lat > 50 && lng < -130 {
		return zoneAlaska
	}
	switch {
	case lng >= -85:
		return zoneEastern
	case lng >= -102:
		return zoneCentral
	case lng >= -115:
		return zoneMountain
	default:
		return zonePacific
	}
}

func zoneForCityState(city, state string) string {
	city = strings.ToLower(strings.TrimSpace(city))
	code := normalizeState(state)
	if city == "" && code == "" {
		return ""
	}
	if city != "" && code != "" {
		if zone, ok := metroZones[city+"|"+strings.ToLower(code)]; ok {
			return zone
		}
	}
	if zone, ok := stateZones[code]; ok {
		return zone
	}
	return ""
}

func normalizeState(state string) string {
	trimmed := strings.TrimSpace(state)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	if code, ok := stateNames[strings.ToLower(trimmed)]; ok {
		return code
	}
	return ""
}
