package frost

import "encoding/json"

// Entity set names on the FROST server.
const (
	SetThings             = "Things"
	SetLocations          = "Locations"
	SetDatastreams        = "Datastreams"
	SetObservations       = "Observations"
	SetObservedProperties = "ObservedProperties"
	SetSensors            = "Sensors"
	SetFeaturesOfInterest = "FeaturesOfInterest"
)

// Envelope is the standard SensorThings collection response: a value array
// plus an optional @iot.count when $count=true was requested.
type Envelope[T any] struct {
	Count *int64 `json:"@iot.count,omitempty"`
	Value []T    `json:"value"`
}

// TotalCount returns @iot.count when the server supplied it, falling back to
// the length of the value array.
func (e Envelope[T]) TotalCount() int64 {
	if e.Count != nil {
		return *e.Count
	}
	return int64(len(e.Value))
}

// GeoJSONGeometry is a minimal GeoJSON geometry as embedded in Locations and
// FeaturesOfInterest. Coordinates stay raw: points and polygons nest
// differently and the tools pass them through untouched.
type GeoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// UnitOfMeasurement describes a datastream's unit.
type UnitOfMeasurement struct {
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	Definition string `json:"definition"`
}

// Thing is a SensorThings Thing: in the BGS deployment, a sensor station.
type Thing struct {
	ID          any            `json:"@iot.id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Properties  map[string]any `json:"properties,omitempty"`
	Locations   []Location     `json:"Locations,omitempty"`
	Datastreams []Datastream   `json:"Datastreams,omitempty"`
}

// Location is a SensorThings Location.
type Location struct {
	ID           any             `json:"@iot.id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	EncodingType string          `json:"encodingType"`
	Location     GeoJSONGeometry `json:"location"`
	Things       []Thing         `json:"Things,omitempty"`
}

// Datastream is a SensorThings Datastream.
type Datastream struct {
	ID                any               `json:"@iot.id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	UnitOfMeasurement UnitOfMeasurement `json:"unitOfMeasurement"`
	ObservedProperty  *ObservedProperty `json:"ObservedProperty,omitempty"`
	Sensor            *SensorHardware   `json:"Sensor,omitempty"`
	Thing             *Thing            `json:"Thing,omitempty"`
}

// ObservedProperty is a SensorThings ObservedProperty: a measured phenomenon.
type ObservedProperty struct {
	ID          any    `json:"@iot.id"`
	Name        string `json:"name"`
	Definition  string `json:"definition"`
	Description string `json:"description"`
}

// SensorHardware is a SensorThings Sensor: the physical instrument. Named to
// avoid colliding with the tool-level use of "sensor" for Things.
type SensorHardware struct {
	ID           any    `json:"@iot.id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	EncodingType string `json:"encodingType"`
	Metadata     any    `json:"metadata,omitempty"`
}

// Observation is a single SensorThings Observation.
type Observation struct {
	ID             any         `json:"@iot.id"`
	Result         any         `json:"result"`
	PhenomenonTime string      `json:"phenomenonTime"`
	ResultTime     *string     `json:"resultTime,omitempty"`
	ResultQuality  any         `json:"resultQuality,omitempty"`
	Datastream     *Datastream `json:"Datastream,omitempty"`
}

// FeatureOfInterest is a SensorThings FeatureOfInterest.
type FeatureOfInterest struct {
	ID           any             `json:"@iot.id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	EncodingType string          `json:"encodingType"`
	Feature      GeoJSONGeometry `json:"feature"`
}

// RootEndpoint is one entry in the server root document's endpoint list.
type RootEndpoint struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RootDocument is the FROST server root resource.
type RootDocument struct {
	Value          []RootEndpoint             `json:"value"`
	ServerSettings map[string]json.RawMessage `json:"serverSettings,omitempty"`
}

// mqttCreateObservationsKey is the conformance-class key the BGS server uses
// to advertise its MQTT observation-creation endpoints.
const mqttCreateObservationsKey = "http://www.opengis.net/spec/iot_sensing/1.1/req/create-observations-via-mqtt/observations-creation"

// Conformance extracts the conformance class list from server settings.
func (r RootDocument) Conformance() []string {
	raw, ok := r.ServerSettings["conformance"]
	if !ok {
		return nil
	}
	var conformance []string
	if err := json.Unmarshal(raw, &conformance); err != nil {
		return nil
	}
	return conformance
}

// MQTTEndpoints extracts the MQTT endpoint list from server settings, if the
// deployment advertises one.
func (r RootDocument) MQTTEndpoints() []string {
	raw, ok := r.ServerSettings[mqttCreateObservationsKey]
	if !ok {
		return nil
	}
	var section struct {
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(raw, &section); err != nil {
		return nil
	}
	return section.Endpoints
}
