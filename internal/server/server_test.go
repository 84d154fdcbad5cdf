package server

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/frostlab/sensormcp/internal/frost"
	"github.com/frostlab/sensormcp/internal/tools"
)

var testError = errors.New("test error")

// MockFetcher implements the frost.Fetcher interface for testing
type MockFetcher struct {
	Responses   map[string]string
	Endpoints   []string
	Queries     []frost.Query
	Contexts    []context.Context
	ReturnError bool
}

func (m *MockFetcher) Fetch(ctx context.Context, endpoint string, q frost.Query) ([]byte, error) {
	m.Endpoints = append(m.Endpoints, endpoint)
	m.Queries = append(m.Queries, q)
	m.Contexts = append(m.Contexts, ctx)

	if m.ReturnError {
		return nil, testError
	}

	body, ok := m.Responses[endpoint]
	if !ok {
		return nil, testError
	}
	return []byte(body), nil
}

const searchBody = `{
	"@iot.count": 42,
	"value": [{
		"@iot.id": "bgs-001",
		"name": "Borehole GGA01",
		"description": "Groundwater monitoring borehole",
		"properties": {"site": "Glasgow"},
		"Locations": [{
			"@iot.id": 1,
			"name": "GGA01 site",
			"description": "Site of borehole GGA01",
			"encodingType": "application/geo+json",
			"location": {"type": "Point", "coordinates": [-4.2, 55.8]}
		}],
		"Datastreams": [
			{"@iot.id": 10, "name": "Water temperature", "unitOfMeasurement": {"symbol": "degC"}},
			{"@iot.id": 11, "name": "Water level", "unitOfMeasurement": {"symbol": "m"}},
			{"@iot.id": 12, "name": "Conductivity", "unitOfMeasurement": {"symbol": "uS/cm"}},
			{"@iot.id": 13, "name": "pH", "unitOfMeasurement": {"symbol": "pH"}}
		]
	}]
}`

// TestSearch tests the search tool handler
func TestSearch(t *testing.T) {
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things": searchBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	if err := server.Initialize(); err != nil {
		t.Fatalf("Failed to initialize server: %v", err)
	}

	req := tools.SearchRequest{
		Query: "borehole",
	}

	response, err := server.handleSearch(context.Background(), req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.TotalCount != 42 {
		t.Errorf("Expected total_count 42, got %d", response.TotalCount)
	}
	if len(response.Sensors) != 1 {
		t.Fatalf("Expected 1 sensor, got %d", len(response.Sensors))
	}

	sensor := response.Sensors[0]
	if sensor.Name != "Borehole GGA01" {
		t.Errorf("Expected sensor name 'Borehole GGA01', got '%s'", sensor.Name)
	}
	if sensor.Location == nil || sensor.Location.Name != "GGA01 site" {
		t.Errorf("Expected first location 'GGA01 site', got %+v", sensor.Location)
	}
	if sensor.DatastreamCount != 4 {
		t.Errorf("Expected datastream_count 4, got %d", sensor.DatastreamCount)
	}
	if len(sensor.Datastreams) != 3 {
		t.Errorf("Expected datastream preview capped at 3, got %d", len(sensor.Datastreams))
	}
	if sensor.Datastreams[0].Unit != "degC" {
		t.Errorf("Expected unit symbol 'degC', got '%s'", sensor.Datastreams[0].Unit)
	}

	// Verify the upstream query
	q := mockFetcher.Queries[0]
	if q.Limit != tools.DefaultSearchLimit {
		t.Errorf("Expected default limit %d, got %d", tools.DefaultSearchLimit, q.Limit)
	}
	if q.Expand != "Locations,Datastreams" {
		t.Errorf("Expected Locations,Datastreams expansion, got '%s'", q.Expand)
	}
	if !q.Count {
		t.Error("Expected count to be requested")
	}
	if !strings.Contains(q.Filter, "contains(tolower(name), 'borehole')") {
		t.Errorf("Expected query filter over name, got '%s'", q.Filter)
	}
}

// TestSearchBadLocationFilter tests that a malformed geographic spec is
// rejected before any upstream call
func TestSearchBadLocationFilter(t *testing.T) {
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things": searchBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleSearch(context.Background(), tools.SearchRequest{LocationFilter: "51.5,oops,10"})
	if err != nil {
		t.Fatalf("Handler should not return error: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", response.Status)
	}
	if !strings.Contains(response.Error, "oops") {
		t.Errorf("Expected the bad coordinate in the error, got '%s'", response.Error)
	}
	if len(mockFetcher.Endpoints) != 0 {
		t.Errorf("Expected no upstream calls, got %v", mockFetcher.Endpoints)
	}
}

// TestSearchGeoJSONPassthrough tests that geojson results are not reshaped
func TestSearchGeoJSONPassthrough(t *testing.T) {
	geojson := `{"type":"FeatureCollection","features":[]}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things": geojson},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleSearch(context.Background(), tools.SearchRequest{Format: "geojson"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if string(response.Raw) != geojson {
		t.Errorf("Expected raw GeoJSON passthrough, got '%s'", response.Raw)
	}
	if mockFetcher.Queries[0].Format != frost.FormatGeoJSON {
		t.Errorf("Expected geojson format in upstream query, got '%s'", mockFetcher.Queries[0].Format)
	}
}

const fetchBody = `{
	"@iot.id": "bgs-001",
	"name": "Borehole GGA01",
	"description": "Groundwater monitoring borehole",
	"Locations": [{
		"@iot.id": 1,
		"name": "GGA01 site",
		"description": "Site of borehole GGA01",
		"encodingType": "application/geo+json",
		"location": {"type": "Point", "coordinates": [-4.2, 55.8]}
	}],
	"Datastreams": [{
		"@iot.id": 10,
		"name": "Water temperature",
		"description": "Temperature at sensor depth",
		"unitOfMeasurement": {"name": "degree Celsius", "symbol": "degC", "definition": "ucum:Cel"},
		"ObservedProperty": {"@iot.id": 5, "name": "Temperature", "definition": "qudt:Temperature", "description": "Water temperature"},
		"Sensor": {"@iot.id": 7, "name": "TD-Diver", "description": "Pressure and temperature probe", "metadata": "datasheet.pdf"}
	}]
}`

// TestFetch tests the fetch tool handler
func TestFetch(t *testing.T) {
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things(bgs-001)": fetchBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleFetch(context.Background(), tools.FetchRequest{SensorID: "bgs-001"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.Sensor == nil {
		t.Fatal("Expected sensor detail in response")
	}
	if response.Sensor.Name != "Borehole GGA01" {
		t.Errorf("Expected sensor name 'Borehole GGA01', got '%s'", response.Sensor.Name)
	}
	if len(response.Sensor.Locations) != 1 {
		t.Fatalf("Expected 1 location, got %d", len(response.Sensor.Locations))
	}
	if response.Sensor.Locations[0].EncodingType != "application/geo+json" {
		t.Errorf("Expected encoding type in location detail, got '%s'", response.Sensor.Locations[0].EncodingType)
	}
	if len(response.Sensor.Datastreams) != 1 {
		t.Fatalf("Expected 1 datastream, got %d", len(response.Sensor.Datastreams))
	}

	ds := response.Sensor.Datastreams[0]
	if ds.Unit.Symbol != "degC" {
		t.Errorf("Expected unit symbol 'degC', got '%s'", ds.Unit.Symbol)
	}
	if ds.ObservedProperty.Name != "Temperature" {
		t.Errorf("Expected observed property 'Temperature', got '%s'", ds.ObservedProperty.Name)
	}
	if ds.SensorHardware.Name != "TD-Diver" {
		t.Errorf("Expected sensor hardware 'TD-Diver', got '%s'", ds.SensorHardware.Name)
	}

	// Both expansions are requested by default
	if mockFetcher.Queries[0].Expand != "Locations,Datastreams($expand=ObservedProperty,Sensor)" {
		t.Errorf("Unexpected expansion: '%s'", mockFetcher.Queries[0].Expand)
	}
	if response.Sensor.RecentObservations != nil {
		t.Error("Expected no observations without include_observations")
	}
}

// TestFetchRequiresSensorID tests validation of the fetch request
func TestFetchRequiresSensorID(t *testing.T) {
	mockFetcher := &MockFetcher{}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleFetch(context.Background(), tools.FetchRequest{})
	if err != nil {
		t.Fatalf("Handler should not return error: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", response.Status)
	}
	if response.Error == "" {
		t.Error("Expected non-empty error message")
	}
	if len(mockFetcher.Endpoints) != 0 {
		t.Errorf("Expected no upstream calls, got %v", mockFetcher.Endpoints)
	}
}

// TestFetchObservationsDegrade tests that an observation fetch failure does
// not fail the whole sensor detail
func TestFetchObservationsDegrade(t *testing.T) {
	// The observations endpoint is absent from the mock, so it errors.
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things(bgs-001)": fetchBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleFetch(context.Background(), tools.FetchRequest{
		SensorID:            "bgs-001",
		IncludeObservations: true,
	})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.Sensor.RecentObservations == nil {
		t.Error("Expected empty recent observations, got nil")
	}
	if len(response.Sensor.RecentObservations) != 0 {
		t.Errorf("Expected 0 recent observations, got %d", len(response.Sensor.RecentObservations))
	}
}

const observationsBody = `{
	"@iot.count": 2,
	"value": [
		{
			"@iot.id": 101,
			"result": 9.7,
			"phenomenonTime": "2024-03-02T00:00:00Z",
			"Datastream": {
				"@iot.id": 10,
				"name": "Water temperature",
				"unitOfMeasurement": {"symbol": "degC"},
				"ObservedProperty": {"name": "Temperature"},
				"Thing": {"name": "Borehole GGA01"}
			}
		},
		{
			"@iot.id": 100,
			"result": 9.5,
			"phenomenonTime": "2024-03-01T00:00:00Z"
		}
	]
}`

// TestGetObservations tests the get_observations tool handler
func TestGetObservations(t *testing.T) {
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Datastreams(10)/Observations": observationsBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	req := tools.ObservationsRequest{
		DatastreamID: "10",
		StartTime:    "2024-03-01T00:00:00Z",
		EndTime:      "2024-03-02T00:00:00Z",
	}

	response, err := server.handleGetObservations(context.Background(), req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if len(response.Observations) != 2 {
		t.Fatalf("Expected 2 observations, got %d", len(response.Observations))
	}

	// Newest first: the range runs from the last element to the first.
	if response.TimeRange.Start != "2024-03-01T00:00:00Z" {
		t.Errorf("Expected range start from oldest observation, got '%s'", response.TimeRange.Start)
	}
	if response.TimeRange.End != "2024-03-02T00:00:00Z" {
		t.Errorf("Expected range end from newest observation, got '%s'", response.TimeRange.End)
	}
	if response.Aggregation != "none" {
		t.Errorf("Expected aggregation 'none', got '%s'", response.Aggregation)
	}
	if response.Observations[0].Datastream.SensorName != "Borehole GGA01" {
		t.Errorf("Expected sensor name on observation, got '%s'", response.Observations[0].Datastream.SensorName)
	}

	q := mockFetcher.Queries[0]
	if q.Limit != tools.DefaultObservationsLimit {
		t.Errorf("Expected default limit %d, got %d", tools.DefaultObservationsLimit, q.Limit)
	}
	if q.OrderBy != "phenomenonTime desc" {
		t.Errorf("Expected newest-first ordering, got '%s'", q.OrderBy)
	}
	if !strings.Contains(q.Filter, "phenomenonTime ge 2024-03-01T00:00:00Z") {
		t.Errorf("Expected time window filter, got '%s'", q.Filter)
	}
}

// TestGetObservationsScope tests the endpoint scoping precedence
func TestGetObservationsScope(t *testing.T) {
	testCases := []struct {
		name         string
		datastreamID string
		sensorID     string
		endpoint     string
	}{
		{"Datastream Scope", "10", "", "Datastreams(10)/Observations"},
		{"Sensor Scope", "", "bgs-001", "Things(bgs-001)/Datastreams/Observations"},
		{"Datastream Wins", "10", "bgs-001", "Datastreams(10)/Observations"},
		{"Server Scope", "", "", "Observations"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockFetcher := &MockFetcher{
				Responses: map[string]string{tc.endpoint: `{"value":[]}`},
			}

			server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
			server.Initialize()

			req := tools.ObservationsRequest{
				DatastreamID: tc.datastreamID,
				SensorID:     tc.sensorID,
			}

			response, err := server.handleGetObservations(context.Background(), req)
			if err != nil {
				t.Fatalf("Handler returned error: %v", err)
			}
			if response.Status != "success" {
				t.Errorf("Expected status 'success', got '%s'", response.Status)
			}
			if mockFetcher.Endpoints[0] != tc.endpoint {
				t.Errorf("Expected endpoint '%s', got '%s'", tc.endpoint, mockFetcher.Endpoints[0])
			}
		})
	}
}

// TestGetLocationsDefaultGeoJSON tests that locations default to GeoJSON
// passthrough
func TestGetLocationsDefaultGeoJSON(t *testing.T) {
	geojson := `{"type":"FeatureCollection","features":[]}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Locations": geojson},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetLocations(context.Background(), tools.LocationsRequest{BBox: "55.0,-5.0,56.0,-4.0"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if string(response.Raw) != geojson {
		t.Errorf("Expected raw GeoJSON passthrough, got '%s'", response.Raw)
	}

	q := mockFetcher.Queries[0]
	if q.Format != frost.FormatGeoJSON {
		t.Errorf("Expected geojson as default format, got '%s'", q.Format)
	}
	if !strings.Contains(q.Filter, "geo.intersects") {
		t.Errorf("Expected bounding box filter, got '%s'", q.Filter)
	}
}

// TestGetLocationsBadPoint tests that a malformed point spec is rejected
// before any upstream call
func TestGetLocationsBadPoint(t *testing.T) {
	mockFetcher := &MockFetcher{}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetLocations(context.Background(), tools.LocationsRequest{Point: "55.8,east,10"})
	if err != nil {
		t.Fatalf("Handler should not return error: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", response.Status)
	}
	if response.Error == "" {
		t.Error("Expected non-empty error message")
	}
	if len(mockFetcher.Endpoints) != 0 {
		t.Errorf("Expected no upstream calls, got %v", mockFetcher.Endpoints)
	}
}

// TestGetLocationsJSON tests the shaped JSON listing
func TestGetLocationsJSON(t *testing.T) {
	body := `{
		"@iot.count": 1,
		"value": [{
			"@iot.id": 1,
			"name": "GGA01 site",
			"description": "Site of borehole GGA01",
			"encodingType": "application/geo+json",
			"location": {"type": "Point", "coordinates": [-4.2, 55.8]},
			"Things": [{
				"@iot.id": "bgs-001",
				"name": "Borehole GGA01",
				"description": "Groundwater monitoring borehole",
				"Datastreams": [{"@iot.id": 10, "name": "Water temperature"}]
			}]
		}]
	}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Locations": body},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetLocations(context.Background(), tools.LocationsRequest{Format: "json"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if len(response.Locations) != 1 {
		t.Fatalf("Expected 1 location, got %d", len(response.Locations))
	}

	loc := response.Locations[0]
	if loc.Geometry.Type != "Point" {
		t.Errorf("Expected Point geometry, got '%s'", loc.Geometry.Type)
	}
	if len(loc.Sensors) != 1 {
		t.Fatalf("Expected 1 sensor at location, got %d", len(loc.Sensors))
	}
	if loc.Sensors[0].DatastreamCount != 1 {
		t.Errorf("Expected datastream_count 1, got %d", loc.Sensors[0].DatastreamCount)
	}
}

// TestGetDatastreams tests the get_datastreams tool handler
func TestGetDatastreams(t *testing.T) {
	body := `{
		"@iot.count": 1,
		"value": [{
			"@iot.id": 10,
			"name": "Water temperature",
			"description": "Temperature at sensor depth",
			"unitOfMeasurement": {"name": "degree Celsius", "symbol": "degC", "definition": "ucum:Cel"},
			"ObservedProperty": {"@iot.id": 5, "name": "Temperature"},
			"Thing": {"@iot.id": "bgs-001", "name": "Borehole GGA01"},
			"Sensor": {"@iot.id": 7, "name": "TD-Diver"}
		}]
	}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things(bgs-001)/Datastreams": body},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	req := tools.DatastreamsRequest{
		SensorID:     "bgs-001",
		PropertyName: "temperature",
	}

	response, err := server.handleGetDatastreams(context.Background(), req)
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if len(response.Datastreams) != 1 {
		t.Fatalf("Expected 1 datastream, got %d", len(response.Datastreams))
	}
	if response.Datastreams[0].Sensor.Name != "Borehole GGA01" {
		t.Errorf("Expected owning sensor name, got '%s'", response.Datastreams[0].Sensor.Name)
	}
	if response.Datastreams[0].Hardware.Name != "TD-Diver" {
		t.Errorf("Expected hardware name, got '%s'", response.Datastreams[0].Hardware.Name)
	}

	q := mockFetcher.Queries[0]
	if !strings.Contains(q.Filter, "contains(tolower(ObservedProperty/name), 'temperature')") {
		t.Errorf("Expected property filter, got '%s'", q.Filter)
	}
}

// TestGetObservedProperties tests the get_observed_properties tool handler
func TestGetObservedProperties(t *testing.T) {
	body := `{
		"@iot.count": 1,
		"value": [{
			"@iot.id": 5,
			"name": "Temperature",
			"definition": "qudt:Temperature",
			"description": "Water temperature"
		}]
	}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"ObservedProperties": body},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetObservedProperties(context.Background(), tools.PropertiesRequest{Search: "temp"})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if len(response.Properties) != 1 || response.Properties[0].Name != "Temperature" {
		t.Errorf("Unexpected properties: %+v", response.Properties)
	}

	q := mockFetcher.Queries[0]
	if q.Limit != tools.DefaultPropertiesLimit {
		t.Errorf("Expected default limit %d, got %d", tools.DefaultPropertiesLimit, q.Limit)
	}
	if !strings.Contains(q.Filter, "contains(tolower(name), 'temp')") {
		t.Errorf("Expected search filter, got '%s'", q.Filter)
	}
}

// TestGetAPIInfo tests the get_api_info tool handler
func TestGetAPIInfo(t *testing.T) {
	body := `{
		"value": [{"name": "Things", "url": "https://sensors.bgs.ac.uk/FROST-Server/v1.1/Things"}],
		"serverSettings": {
			"conformance": ["http://www.opengis.net/spec/iot_sensing/1.1/req/datamodel"]
		}
	}`
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"": body},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetAPIInfo(context.Background(), tools.APIInfoRequest{})
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got '%s'", response.Status)
	}
	if response.APIInfo == nil {
		t.Fatal("Expected api_info in response")
	}
	if response.APIInfo.Version != "1.1" {
		t.Errorf("Expected version '1.1', got '%s'", response.APIInfo.Version)
	}
	if len(response.APIInfo.Endpoints) != 1 || response.APIInfo.Endpoints[0].Name != "Things" {
		t.Errorf("Unexpected endpoints: %+v", response.APIInfo.Endpoints)
	}
	if len(response.APIInfo.Capabilities) != 1 {
		t.Errorf("Expected 1 conformance class, got %d", len(response.APIInfo.Capabilities))
	}
}

// TestGetAPIInfoFailure tests the degraded api_info response
func TestGetAPIInfoFailure(t *testing.T) {
	mockFetcher := &MockFetcher{ReturnError: true}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	response, err := server.handleGetAPIInfo(context.Background(), tools.APIInfoRequest{})
	if err != nil {
		t.Fatalf("Handler should not return error: %v", err)
	}

	if response.Status != "error" {
		t.Errorf("Expected status 'error', got '%s'", response.Status)
	}
	if response.BaseURL != frost.DefaultBaseURL {
		t.Errorf("Expected base URL in degraded response, got '%s'", response.BaseURL)
	}
	if response.Message == "" {
		t.Error("Expected descriptive message in degraded response")
	}
}

// TestErrorHandling tests error handling across the tool handlers
func TestErrorHandling(t *testing.T) {
	testCases := []struct {
		name string
		call func(s *MCPSensorToolServer) (string, string)
	}{
		{"Search Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleSearch(context.Background(), tools.SearchRequest{Query: "x"})
			return r.Status, r.Error
		}},
		{"Fetch Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleFetch(context.Background(), tools.FetchRequest{SensorID: "bgs-001"})
			return r.Status, r.Error
		}},
		{"Datastreams Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleGetDatastreams(context.Background(), tools.DatastreamsRequest{})
			return r.Status, r.Error
		}},
		{"Observations Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleGetObservations(context.Background(), tools.ObservationsRequest{})
			return r.Status, r.Error
		}},
		{"Hardware Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleGetSensorsHardware(context.Background(), tools.HardwareRequest{})
			return r.Status, r.Error
		}},
		{"Features Error", func(s *MCPSensorToolServer) (string, string) {
			r, _ := s.handleGetFeaturesOfInterest(context.Background(), tools.FeaturesRequest{})
			return r.Status, r.Error
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockFetcher := &MockFetcher{ReturnError: true}

			server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
			server.Initialize()

			status, errMsg := tc.call(server)

			if status != "error" {
				t.Errorf("Expected status 'error', got '%s'", status)
			}
			if errMsg == "" {
				t.Error("Expected non-empty error message")
			}
		})
	}
}

// TestInvokeForwardsContext tests that the caller's context reaches the
// fetcher, so cancelling a gateway request aborts its upstream calls
func TestInvokeForwardsContext(t *testing.T) {
	mockFetcher := &MockFetcher{
		Responses: map[string]string{"Things": searchBody},
	}

	server := NewSensorToolServer(mockFetcher, frost.DefaultBaseURL)
	server.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := server.Invoke(ctx, tools.ToolSearch, nil); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}

	if len(mockFetcher.Contexts) != 1 {
		t.Fatalf("Expected 1 upstream call, got %d", len(mockFetcher.Contexts))
	}
	if mockFetcher.Contexts[0].Err() != context.Canceled {
		t.Error("Expected the caller's context at the fetcher")
	}
}

// TestInvokeUnknownTool tests dispatch of an unregistered tool name
func TestInvokeUnknownTool(t *testing.T) {
	server := NewSensorToolServer(&MockFetcher{}, frost.DefaultBaseURL)
	server.Initialize()

	if _, err := server.Invoke(context.Background(), "no_such_tool", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Expected ErrUnknownTool, got %v", err)
	}
}

// TestInitializeRequiresFetcher tests that initialization fails without
// dependencies
func TestInitializeRequiresFetcher(t *testing.T) {
	server := NewSensorToolServer(nil, frost.DefaultBaseURL)

	if err := server.Initialize(); err == nil {
		t.Error("Expected initialization to fail without a fetcher")
	}
}
