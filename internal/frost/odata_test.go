package frost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostlab/sensormcp/internal/errortypes"
)

func TestQueryValues(t *testing.T) {
	q := Query{
		Limit:   20,
		Skip:    5,
		Filter:  "name eq 'x'",
		Expand:  "Locations,Datastreams",
		OrderBy: "phenomenonTime desc",
		Select:  "name",
		Count:   true,
	}

	v := q.Values()
	assert.Equal(t, "20", v.Get("$top"))
	assert.Equal(t, "5", v.Get("$skip"))
	assert.Equal(t, "name eq 'x'", v.Get("$filter"))
	assert.Equal(t, "Locations,Datastreams", v.Get("$expand"))
	assert.Equal(t, "phenomenonTime desc", v.Get("$orderby"))
	assert.Equal(t, "name", v.Get("$select"))
	assert.Equal(t, "true", v.Get("$count"))
	assert.Empty(t, v.Get("$resultFormat"))
}

func TestQueryValuesZero(t *testing.T) {
	assert.Empty(t, Query{}.Encode())
}

func TestQueryResultFormat(t *testing.T) {
	assert.Equal(t, "GeoJSON", Query{Format: FormatGeoJSON}.Values().Get("$resultFormat"))
	assert.Equal(t, "CSV", Query{Format: FormatCSV}.Values().Get("$resultFormat"))
	assert.Empty(t, Query{Format: FormatJSON}.Values().Get("$resultFormat"))
}

func TestBuildLocationFilter(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{
			name: "bounding box",
			spec: "51.5,-0.1,52.5,0.9",
			want: "geo.intersects(location, geography'POLYGON((-0.1 51.5, 0.9 51.5, 0.9 52.5, -0.1 52.5, -0.1 51.5))')",
		},
		{
			name: "point with radius",
			spec: "51.5,-0.1,10",
			want: "geo.distance(location, geography'POINT(-0.1 51.5)') le 10000",
		},
		{
			name: "spaces are trimmed",
			spec: " 51.5 , -0.1 , 10 ",
			want: "geo.distance(location, geography'POINT(-0.1 51.5)') le 10000",
		},
		{name: "empty", spec: "", want: ""},
		{name: "no comma", spec: "London", want: ""},
		{name: "two parts", spec: "51.5,-0.1", want: ""},
		{name: "five parts", spec: "1,2,3,4,5", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildLocationFilter(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildLocationFilterBadCoordinates(t *testing.T) {
	for _, spec := range []string{"51.5,oops,10", "a,b,c", "51.5,-0.1,52.5,north"} {
		t.Run(spec, func(t *testing.T) {
			got, err := BuildLocationFilter(spec)
			assert.Empty(t, got)
			require.Error(t, err)
			assert.True(t, errortypes.IsValidationError(err))
		})
	}
}

func TestContainsFilters(t *testing.T) {
	assert.Equal(t,
		"contains(tolower(name), 'rain') or contains(tolower(description), 'rain')",
		ContainsNameOrDescription("Rain"))

	assert.Equal(t,
		"contains(tolower(ObservedProperty/name), 'temperature')",
		ContainsField("ObservedProperty/name", "Temperature"))
}

func TestTimeRangeFilter(t *testing.T) {
	assert.Equal(t,
		"phenomenonTime ge 2024-01-01T00:00:00Z and phenomenonTime le 2024-02-01T00:00:00Z",
		TimeRangeFilter("2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z"))
	assert.Equal(t, "phenomenonTime ge 2024-01-01T00:00:00Z", TimeRangeFilter("2024-01-01T00:00:00Z", ""))
	assert.Equal(t, "phenomenonTime le 2024-02-01T00:00:00Z", TimeRangeFilter("", "2024-02-01T00:00:00Z"))
	assert.Empty(t, TimeRangeFilter("", ""))
}

func TestCombineFilters(t *testing.T) {
	assert.Equal(t, "a and b", CombineFilters("a", "", "b"))
	assert.Equal(t, "a", CombineFilters("a"))
	assert.Empty(t, CombineFilters("", ""))
}

func TestEnvelopeTotalCount(t *testing.T) {
	count := int64(120)
	withCount := Envelope[Thing]{Count: &count, Value: make([]Thing, 20)}
	assert.Equal(t, int64(120), withCount.TotalCount())

	withoutCount := Envelope[Thing]{Value: make([]Thing, 3)}
	assert.Equal(t, int64(3), withoutCount.TotalCount())
}
