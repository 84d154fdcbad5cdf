// Package tools defines the tool names and request/response schemas
// exposed by the sensormcp service.
package tools

import "encoding/json"

// Tool names.
const (
	// ToolSearch is the primary sensor discovery tool.
	ToolSearch = "search"

	// ToolSearchSensors is an alias of search kept for client compatibility.
	ToolSearchSensors = "search_sensors"

	// ToolFetch returns full details for one sensor.
	ToolFetch = "fetch"

	// ToolGetSensorDetails is an alias of fetch kept for client compatibility.
	ToolGetSensorDetails = "get_sensor_details"

	// ToolGetDatastreams lists datastreams with filtering.
	ToolGetDatastreams = "get_datastreams"

	// ToolGetObservations lists observations with time filtering.
	ToolGetObservations = "get_observations"

	// ToolGetLocations lists sensor locations with geographic filtering.
	ToolGetLocations = "get_locations"

	// ToolGetObservedProperties lists available measurement types.
	ToolGetObservedProperties = "get_observed_properties"

	// ToolGetSensorsHardware lists physical sensor instruments.
	ToolGetSensorsHardware = "get_sensors_hardware"

	// ToolGetFeaturesOfInterest lists observed features.
	ToolGetFeaturesOfInterest = "get_features_of_interest"

	// ToolGetAPIInfo reports upstream server capabilities.
	ToolGetAPIInfo = "get_api_info"
)

// Default limits, matching the upstream API's sensible page sizes.
const (
	DefaultSearchLimit       = 20
	DefaultObservationsLimit = 50
	DefaultPropertiesLimit   = 50

	// RecentObservationsLimit bounds the observation preview in fetch.
	RecentObservationsLimit = 10

	// DatastreamPreviewLimit bounds the datastream refs in search results.
	DatastreamPreviewLimit = 3
)

// Statuses used in every response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SearchRequest defines the input schema for the search tool.
type SearchRequest struct {
	// Query is matched against sensor names and descriptions.
	Query string `json:"query,omitempty"`

	// Limit is the maximum number of sensors to return (default 20).
	Limit int `json:"limit,omitempty"`

	// Filter is a raw OData $filter expression appended to the query.
	Filter string `json:"filter,omitempty"`

	// LocationFilter is "lat1,lng1,lat2,lng2" (bounding box) or
	// "lat,lng,radius_km" (point with radius).
	LocationFilter string `json:"location_filter,omitempty"`

	// Format is "json" (default), "geojson", or "csv".
	Format string `json:"format,omitempty"`
}

// SensorLocation summarises a sensor's first location.
type SensorLocation struct {
	Name        string          `json:"name"`
	Coordinates json.RawMessage `json:"coordinates"`
	Type        string          `json:"type"`
}

// DatastreamRef is a short datastream reference in search results.
type DatastreamRef struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// SensorSummary is one search result.
type SensorSummary struct {
	ID              any             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Properties      map[string]any  `json:"properties,omitempty"`
	Location        *SensorLocation `json:"location"`
	DatastreamCount int             `json:"datastream_count"`
	Datastreams     []DatastreamRef `json:"datastreams"`
}

// SearchResponse defines the output schema for the search tool.
type SearchResponse struct {
	Status     string          `json:"status"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	TotalCount int64           `json:"total_count,omitempty"`
	Sensors    []SensorSummary `json:"sensors,omitempty"`

	// Raw carries the upstream GeoJSON payload when format=geojson.
	Raw json.RawMessage `json:"raw,omitempty"`

	// CSV carries the upstream CSV payload when format=csv.
	CSV string `json:"csv,omitempty"`
}

// FetchRequest defines the input schema for the fetch tool.
type FetchRequest struct {
	// SensorID is the @iot.id of the Thing to fetch.
	SensorID string `json:"sensor_id"`

	// IncludeDatastreams expands datastreams (default true).
	IncludeDatastreams *bool `json:"include_datastreams,omitempty"`

	// IncludeLocations expands locations (default true).
	IncludeLocations *bool `json:"include_locations,omitempty"`

	// IncludeObservations fetches the most recent observations (default false).
	IncludeObservations bool `json:"include_observations,omitempty"`
}

// LocationDetail is a fully-described sensor location.
type LocationDetail struct {
	ID           any             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Coordinates  json.RawMessage `json:"coordinates"`
	Type         string          `json:"type"`
	EncodingType string          `json:"encoding_type"`
}

// UnitDetail describes a unit of measurement.
type UnitDetail struct {
	Name       string `json:"name,omitempty"`
	Symbol     string `json:"symbol,omitempty"`
	Definition string `json:"definition,omitempty"`
}

// PropertyDetail describes an observed property.
type PropertyDetail struct {
	ID          any    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Definition  string `json:"definition,omitempty"`
	Description string `json:"description,omitempty"`
}

// HardwareDetail describes a physical sensor instrument.
type HardwareDetail struct {
	ID          any    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Metadata    any    `json:"metadata,omitempty"`
}

// DatastreamDetail is a fully-described datastream in fetch results.
type DatastreamDetail struct {
	ID               any            `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Unit             UnitDetail     `json:"unit"`
	ObservedProperty PropertyDetail `json:"observed_property"`
	SensorHardware   HardwareDetail `json:"sensor_hardware"`
}

// ObservationPreview is a recent observation in fetch results.
type ObservationPreview struct {
	ID             any    `json:"id"`
	Result         any    `json:"result"`
	Time           string `json:"time"`
	DatastreamName string `json:"datastream_name,omitempty"`
}

// SensorDetail is the full sensor description returned by fetch.
type SensorDetail struct {
	ID                 any                  `json:"id"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Properties         map[string]any       `json:"properties,omitempty"`
	Locations          []LocationDetail     `json:"locations"`
	Datastreams        []DatastreamDetail   `json:"datastreams"`
	RecentObservations []ObservationPreview `json:"recent_observations,omitempty"`
}

// FetchResponse defines the output schema for the fetch tool.
type FetchResponse struct {
	Status string        `json:"status"`
	Error  string        `json:"error,omitempty"`
	Sensor *SensorDetail `json:"sensor,omitempty"`
}

// DatastreamsRequest defines the input schema for get_datastreams.
type DatastreamsRequest struct {
	// SensorID scopes the listing to one sensor's datastreams.
	SensorID string `json:"sensor_id,omitempty"`

	// PropertyName is matched against observed property names.
	PropertyName string `json:"property_name,omitempty"`

	// UnitName is matched against unit-of-measurement names.
	UnitName string `json:"unit_name,omitempty"`

	// Limit is the maximum number of datastreams to return (default 20).
	Limit int `json:"limit,omitempty"`

	// Filter is a raw OData $filter expression.
	Filter string `json:"filter,omitempty"`
}

// SensorRef is a short reference to the owning sensor.
type SensorRef struct {
	ID   any    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// DatastreamInfo is one get_datastreams result.
type DatastreamInfo struct {
	ID               any            `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Unit             UnitDetail     `json:"unit"`
	ObservedProperty PropertyDetail `json:"observed_property"`
	Sensor           SensorRef      `json:"sensor"`
	Hardware         HardwareDetail `json:"hardware"`
}

// DatastreamsResponse defines the output schema for get_datastreams.
type DatastreamsResponse struct {
	Status      string           `json:"status"`
	Error       string           `json:"error,omitempty"`
	Message     string           `json:"message,omitempty"`
	TotalCount  int64            `json:"total_count,omitempty"`
	Datastreams []DatastreamInfo `json:"datastreams,omitempty"`
}

// ObservationsRequest defines the input schema for get_observations.
type ObservationsRequest struct {
	// DatastreamID scopes to one datastream (takes precedence over SensorID).
	DatastreamID string `json:"datastream_id,omitempty"`

	// SensorID scopes to all datastreams of one sensor.
	SensorID string `json:"sensor_id,omitempty"`

	// StartTime is an ISO timestamp lower bound on phenomenonTime.
	StartTime string `json:"start_time,omitempty"`

	// EndTime is an ISO timestamp upper bound on phenomenonTime.
	EndTime string `json:"end_time,omitempty"`

	// Limit is the maximum number of observations to return (default 50).
	Limit int `json:"limit,omitempty"`

	// Format is "json" (default) or "csv".
	Format string `json:"format,omitempty"`

	// Aggregate is echoed in the response; aggregation happens client-side.
	Aggregate string `json:"aggregate,omitempty"`
}

// ObservationDatastream identifies the datastream an observation belongs to.
type ObservationDatastream struct {
	ID         any        `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Unit       UnitDetail `json:"unit,omitempty"`
	Property   string     `json:"property,omitempty"`
	SensorName string     `json:"sensor_name,omitempty"`
}

// ObservationInfo is one get_observations result.
type ObservationInfo struct {
	ID             any                   `json:"id"`
	Result         any                   `json:"result"`
	PhenomenonTime string                `json:"phenomenon_time"`
	ResultTime     *string               `json:"result_time"`
	Quality        any                   `json:"quality,omitempty"`
	Datastream     ObservationDatastream `json:"datastream"`
}

// TimeRange summarises the covered phenomenon time window.
type TimeRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ObservationsResponse defines the output schema for get_observations.
type ObservationsResponse struct {
	Status       string            `json:"status"`
	Error        string            `json:"error,omitempty"`
	Message      string            `json:"message,omitempty"`
	TotalCount   int64             `json:"total_count,omitempty"`
	TimeRange    *TimeRange        `json:"time_range,omitempty"`
	Aggregation  string            `json:"aggregation,omitempty"`
	Observations []ObservationInfo `json:"observations,omitempty"`
	CSV          string            `json:"csv,omitempty"`
}

// LocationsRequest defines the input schema for get_locations.
type LocationsRequest struct {
	// BBox is "lat1,lng1,lat2,lng2".
	BBox string `json:"bbox,omitempty"`

	// Point is "lat,lng,radius_km".
	Point string `json:"point,omitempty"`

	// Limit is the maximum number of locations to return (default 20).
	Limit int `json:"limit,omitempty"`

	// Format is "geojson" (default) or "json".
	Format string `json:"format,omitempty"`
}

// LocationSensor is a sensor reference in location results.
type LocationSensor struct {
	ID              any    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DatastreamCount int    `json:"datastream_count"`
}

// GeometryInfo is a pass-through GeoJSON geometry.
type GeometryInfo struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LocationInfo is one get_locations result.
type LocationInfo struct {
	ID           any              `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	EncodingType string           `json:"encoding_type"`
	Geometry     GeometryInfo     `json:"geometry"`
	Sensors      []LocationSensor `json:"sensors"`
}

// LocationsResponse defines the output schema for get_locations.
type LocationsResponse struct {
	Status     string          `json:"status"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	TotalCount int64           `json:"total_count,omitempty"`
	Locations  []LocationInfo  `json:"locations,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// PropertiesRequest defines the input schema for get_observed_properties.
type PropertiesRequest struct {
	// Search is matched against property names and descriptions.
	Search string `json:"search,omitempty"`

	// Limit is the maximum number of properties to return (default 50).
	Limit int `json:"limit,omitempty"`
}

// PropertiesResponse defines the output schema for get_observed_properties.
type PropertiesResponse struct {
	Status     string           `json:"status"`
	Error      string           `json:"error,omitempty"`
	Message    string           `json:"message,omitempty"`
	TotalCount int64            `json:"total_count,omitempty"`
	Properties []PropertyDetail `json:"properties,omitempty"`
}

// HardwareRequest defines the input schema for get_sensors_hardware.
type HardwareRequest struct {
	// Manufacturer is matched against instrument names and descriptions.
	Manufacturer string `json:"manufacturer,omitempty"`

	// Model is matched against instrument names and descriptions.
	Model string `json:"model,omitempty"`

	// Limit is the maximum number of instruments to return (default 20).
	Limit int `json:"limit,omitempty"`
}

// HardwareInfo is one get_sensors_hardware result.
type HardwareInfo struct {
	ID           any    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	EncodingType string `json:"encoding_type"`
	Metadata     any    `json:"metadata,omitempty"`
}

// HardwareResponse defines the output schema for get_sensors_hardware.
type HardwareResponse struct {
	Status     string         `json:"status"`
	Error      string         `json:"error,omitempty"`
	Message    string         `json:"message,omitempty"`
	TotalCount int64          `json:"total_count,omitempty"`
	Sensors    []HardwareInfo `json:"sensors,omitempty"`
}

// FeaturesRequest defines the input schema for get_features_of_interest.
type FeaturesRequest struct {
	// Search is matched against feature names and descriptions.
	Search string `json:"search,omitempty"`

	// GeometryType filters by GeoJSON geometry type (e.g. "Point").
	GeometryType string `json:"geometry_type,omitempty"`

	// Limit is the maximum number of features to return (default 20).
	Limit int `json:"limit,omitempty"`
}

// FeatureInfo is one get_features_of_interest result.
type FeatureInfo struct {
	ID           any          `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	EncodingType string       `json:"encoding_type"`
	Geometry     GeometryInfo `json:"geometry"`
}

// FeaturesResponse defines the output schema for get_features_of_interest.
type FeaturesResponse struct {
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	Message    string        `json:"message,omitempty"`
	TotalCount int64         `json:"total_count,omitempty"`
	Features   []FeatureInfo `json:"features,omitempty"`
}

// APIInfoRequest defines the (empty) input schema for get_api_info.
type APIInfoRequest struct{}

// APIEndpoint is one entry point advertised by the upstream server.
type APIEndpoint struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIInfo describes the upstream server.
type APIInfo struct {
	BaseURL       string        `json:"base_url"`
	Version       string        `json:"version"`
	ServerName    string        `json:"server_name"`
	Description   string        `json:"description"`
	Endpoints     []APIEndpoint `json:"endpoints"`
	Capabilities  []string      `json:"capabilities,omitempty"`
	MQTTEndpoints []string      `json:"mqtt_endpoints,omitempty"`
}

// APIInfoResponse defines the output schema for get_api_info. On upstream
// failure BaseURL and Message are still populated so the client learns where
// the server was expected to be.
type APIInfoResponse struct {
	Status  string   `json:"status"`
	Error   string   `json:"error,omitempty"`
	APIInfo *APIInfo `json:"api_info,omitempty"`
	BaseURL string   `json:"base_url,omitempty"`
	Message string   `json:"message,omitempty"`
}
