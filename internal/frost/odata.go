package frost

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/frostlab/sensormcp/internal/errortypes"
)

// ResultFormat selects the upstream payload encoding.
type ResultFormat string

// Result formats accepted by the tools and mapped to FROST's $resultFormat.
const (
	FormatJSON    ResultFormat = "json"
	FormatGeoJSON ResultFormat = "geojson"
	FormatCSV     ResultFormat = "csv"
)

// Query describes a SensorThings request in tool-level terms. The zero value
// means "no options". Fields map onto OData system query parameters.
type Query struct {
	Limit   int
	Skip    int
	Filter  string
	Expand  string
	OrderBy string
	Select  string
	Count   bool
	Format  ResultFormat
}

// Values translates the query into OData URL parameters.
func (q Query) Values() url.Values {
	params := url.Values{}

	if q.Limit > 0 {
		params.Set("$top", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		params.Set("$skip", strconv.Itoa(q.Skip))
	}
	if q.Filter != "" {
		params.Set("$filter", q.Filter)
	}
	if q.Expand != "" {
		params.Set("$expand", q.Expand)
	}
	if q.OrderBy != "" {
		params.Set("$orderby", q.OrderBy)
	}
	if q.Select != "" {
		params.Set("$select", q.Select)
	}
	if q.Count {
		params.Set("$count", "true")
	}

	switch q.Format {
	case FormatGeoJSON:
		params.Set("$resultFormat", "GeoJSON")
	case FormatCSV:
		params.Set("$resultFormat", "CSV")
	}

	return params
}

// Encode renders the query string, without a leading "?". Keys are sorted by
// url.Values.Encode, which keeps cache keys stable for identical queries.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// BuildLocationFilter turns a comma-separated geographic spec into an OData
// spatial filter. Two grammars are accepted:
//
//	lat1,lng1,lat2,lng2  - bounding box
//	lat,lng,radius_km    - point with radius
//
// Specs with any other number of parts (including a bare string with no
// comma) are not geographic and yield "". A spec with the right number of
// parts but a non-numeric coordinate is a caller mistake and returns an
// error rather than silently dropping the filter.
func BuildLocationFilter(spec string) (string, error) {
	if spec == "" || !strings.Contains(spec, ",") {
		return "", nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return "", nil
	}

	nums := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", errortypes.ValidationError(err,
				fmt.Sprintf("invalid coordinate %q in location filter %q", strings.TrimSpace(p), spec))
		}
		nums = append(nums, f)
	}

	if len(nums) == 4 {
		lat1, lng1, lat2, lng2 := nums[0], nums[1], nums[2], nums[3]
		return fmt.Sprintf(
			"geo.intersects(location, geography'POLYGON((%v %v, %v %v, %v %v, %v %v, %v %v))')",
			lng1, lat1, lng2, lat1, lng2, lat2, lng1, lat2, lng1, lat1), nil
	}

	lat, lng, radiusKm := nums[0], nums[1], nums[2]
	radiusMeters := radiusKm * 1000
	return fmt.Sprintf(
		"geo.distance(location, geography'POINT(%v %v)') le %v",
		lng, lat, radiusMeters), nil
}

// ContainsNameOrDescription builds a case-insensitive substring filter over
// the name and description properties of an entity.
func ContainsNameOrDescription(term string) string {
	lower := strings.ToLower(term)
	return fmt.Sprintf("contains(tolower(name), '%s') or contains(tolower(description), '%s')", lower, lower)
}

// ContainsField builds a case-insensitive substring filter over an arbitrary
// property path, e.g. "ObservedProperty/name".
func ContainsField(field, term string) string {
	return fmt.Sprintf("contains(tolower(%s), '%s')", field, strings.ToLower(term))
}

// TimeRangeFilter builds a phenomenonTime window filter. Either bound may be
// empty; both empty yields "".
func TimeRangeFilter(start, end string) string {
	switch {
	case start != "" && end != "":
		return fmt.Sprintf("phenomenonTime ge %s and phenomenonTime le %s", start, end)
	case start != "":
		return "phenomenonTime ge " + start
	case end != "":
		return "phenomenonTime le " + end
	}
	return ""
}

// CombineFilters joins non-empty filter clauses with "and".
func CombineFilters(filters ...string) string {
	nonEmpty := filters[:0:0]
	for _, f := range filters {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " and ")
}
