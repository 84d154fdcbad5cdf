package server

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/frostlab/sensormcp/internal/errortypes"
	"github.com/frostlab/sensormcp/internal/frost"
	"github.com/frostlab/sensormcp/internal/tools"
)

// handleSearch handles the search MCP tool call (and its search_sensors
// alias). Results carry each sensor's first location and a short datastream
// preview.
func (s *MCPSensorToolServer) handleSearch(ctx context.Context, req tools.SearchRequest) (tools.SearchResponse, error) {
	slog.Info("Processing search request", "query", req.Query, "limit", req.Limit)

	response := tools.SearchResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultSearchLimit
	}

	var queryFilter string
	if req.Query != "" {
		queryFilter = "(" + frost.ContainsNameOrDescription(req.Query) + ")"
	}

	locationFilter, err := frost.BuildLocationFilter(req.LocationFilter)
	if err != nil {
		errortypes.LogError(nil, err)
		return tools.SearchResponse{Status: tools.StatusError, Error: err.Error()}, nil
	}

	q := frost.Query{
		Limit:  limit,
		Expand: "Locations,Datastreams",
		Count:  true,
		Format: frost.ResultFormat(req.Format),
		Filter: frost.CombineFilters(
			queryFilter,
			locationFilter,
			req.Filter,
		),
	}

	// GeoJSON and CSV pass through untouched.
	switch frost.ResultFormat(req.Format) {
	case frost.FormatGeoJSON:
		body, err := s.fetcher.Fetch(ctx, frost.SetThings, q)
		if err != nil {
			return searchError(err, "failed to search sensors"), nil
		}
		response.Raw = body
		return response, nil
	case frost.FormatCSV:
		body, err := s.fetcher.Fetch(ctx, frost.SetThings, q)
		if err != nil {
			return searchError(err, "failed to search sensors"), nil
		}
		response.CSV = string(body)
		return response, nil
	}

	var env frost.Envelope[frost.Thing]
	if err := frost.FetchJSON(ctx, s.fetcher, frost.SetThings, q, &env); err != nil {
		return searchError(err, "failed to search sensors"), nil
	}

	response.Message = fmt.Sprintf("Found %d sensors", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Sensors = make([]tools.SensorSummary, 0, len(env.Value))
	for _, thing := range env.Value {
		response.Sensors = append(response.Sensors, summarizeSensor(thing))
	}

	slog.Info("Successfully searched sensors", "count", len(response.Sensors))
	return response, nil
}

func searchError(err error, message string) tools.SearchResponse {
	err = errortypes.APIError(err, message)
	errortypes.LogError(nil, err)
	return tools.SearchResponse{Status: tools.StatusError, Error: err.Error()}
}

// summarizeSensor shapes one Thing into a search result.
func summarizeSensor(thing frost.Thing) tools.SensorSummary {
	summary := tools.SensorSummary{
		ID:              thing.ID,
		Name:            thing.Name,
		Description:     thing.Description,
		Properties:      thing.Properties,
		DatastreamCount: len(thing.Datastreams),
		Datastreams:     []tools.DatastreamRef{},
	}

	if len(thing.Locations) > 0 {
		loc := thing.Locations[0]
		summary.Location = &tools.SensorLocation{
			Name:        loc.Name,
			Coordinates: loc.Location.Coordinates,
			Type:        loc.Location.Type,
		}
	}

	for _, ds := range thing.Datastreams {
		if len(summary.Datastreams) == tools.DatastreamPreviewLimit {
			break
		}
		summary.Datastreams = append(summary.Datastreams, tools.DatastreamRef{
			ID:   ds.ID,
			Name: ds.Name,
			Unit: ds.UnitOfMeasurement.Symbol,
		})
	}

	return summary
}

// handleFetch handles the fetch MCP tool call (and its get_sensor_details
// alias).
func (s *MCPSensorToolServer) handleFetch(ctx context.Context, req tools.FetchRequest) (tools.FetchResponse, error) {
	slog.Info("Processing fetch request", "sensor_id", req.SensorID)

	response := tools.FetchResponse{
		Status: tools.StatusSuccess,
	}

	if req.SensorID == "" {
		err := errortypes.ValidationError(errors.New("sensor_id cannot be empty"), "invalid fetch request")
		errortypes.LogError(nil, err)
		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	includeDatastreams := req.IncludeDatastreams == nil || *req.IncludeDatastreams
	includeLocations := req.IncludeLocations == nil || *req.IncludeLocations

	var expand string
	if includeLocations {
		expand = "Locations"
	}
	if includeDatastreams {
		if expand != "" {
			expand += ","
		}
		expand += "Datastreams($expand=ObservedProperty,Sensor)"
	}

	endpoint := fmt.Sprintf("Things(%s)", req.SensorID)

	var thing frost.Thing
	if err := frost.FetchJSON(ctx, s.fetcher, endpoint, frost.Query{Expand: expand}, &thing); err != nil {
		err = errortypes.APIError(err, "failed to fetch sensor").
			WithField("sensor_id", req.SensorID)
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	detail := tools.SensorDetail{
		ID:          thing.ID,
		Name:        thing.Name,
		Description: thing.Description,
		Properties:  thing.Properties,
		Locations:   []tools.LocationDetail{},
		Datastreams: []tools.DatastreamDetail{},
	}

	for _, loc := range thing.Locations {
		detail.Locations = append(detail.Locations, tools.LocationDetail{
			ID:           loc.ID,
			Name:         loc.Name,
			Description:  loc.Description,
			Coordinates:  loc.Location.Coordinates,
			Type:         loc.Location.Type,
			EncodingType: loc.EncodingType,
		})
	}

	for _, ds := range thing.Datastreams {
		detail.Datastreams = append(detail.Datastreams, detailDatastream(ds))
	}

	if req.IncludeObservations {
		detail.RecentObservations = s.recentObservations(ctx, req.SensorID)
	}

	response.Sensor = &detail
	slog.Info("Successfully fetched sensor", "sensor_id", req.SensorID,
		"datastreams", len(detail.Datastreams))
	return response, nil
}

// detailDatastream shapes an expanded Datastream for fetch results.
func detailDatastream(ds frost.Datastream) tools.DatastreamDetail {
	detail := tools.DatastreamDetail{
		ID:          ds.ID,
		Name:        ds.Name,
		Description: ds.Description,
		Unit: tools.UnitDetail{
			Name:       ds.UnitOfMeasurement.Name,
			Symbol:     ds.UnitOfMeasurement.Symbol,
			Definition: ds.UnitOfMeasurement.Definition,
		},
	}
	if ds.ObservedProperty != nil {
		detail.ObservedProperty = tools.PropertyDetail{
			ID:          ds.ObservedProperty.ID,
			Name:        ds.ObservedProperty.Name,
			Definition:  ds.ObservedProperty.Definition,
			Description: ds.ObservedProperty.Description,
		}
	}
	if ds.Sensor != nil {
		detail.SensorHardware = tools.HardwareDetail{
			ID:          ds.Sensor.ID,
			Name:        ds.Sensor.Name,
			Description: ds.Sensor.Description,
			Metadata:    ds.Sensor.Metadata,
		}
	}
	return detail
}

// recentObservations fetches the newest observations across a sensor's
// datastreams. Failures degrade to an empty list: the sensor detail is still
// useful without the preview.
func (s *MCPSensorToolServer) recentObservations(ctx context.Context, sensorID string) []tools.ObservationPreview {
	endpoint := fmt.Sprintf("Things(%s)/Datastreams/Observations", sensorID)
	q := frost.Query{
		Limit:   tools.RecentObservationsLimit,
		OrderBy: "phenomenonTime desc",
		Expand:  "Datastream",
	}

	previews := []tools.ObservationPreview{}

	var env frost.Envelope[frost.Observation]
	if err := frost.FetchJSON(ctx, s.fetcher, endpoint, q, &env); err != nil {
		slog.Warn("Failed to fetch recent observations", "sensor_id", sensorID, "error", err)
		return previews
	}

	for _, obs := range env.Value {
		preview := tools.ObservationPreview{
			ID:     obs.ID,
			Result: obs.Result,
			Time:   obs.PhenomenonTime,
		}
		if obs.Datastream != nil {
			preview.DatastreamName = obs.Datastream.Name
		}
		previews = append(previews, preview)
	}

	return previews
}

// handleGetDatastreams handles the get_datastreams MCP tool call.
func (s *MCPSensorToolServer) handleGetDatastreams(ctx context.Context, req tools.DatastreamsRequest) (tools.DatastreamsResponse, error) {
	slog.Info("Processing get_datastreams request", "sensor_id", req.SensorID, "limit", req.Limit)

	response := tools.DatastreamsResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultSearchLimit
	}

	endpoint := frost.SetDatastreams
	if req.SensorID != "" {
		endpoint = fmt.Sprintf("Things(%s)/Datastreams", req.SensorID)
	}

	var propertyFilter, unitFilter string
	if req.PropertyName != "" {
		propertyFilter = frost.ContainsField("ObservedProperty/name", req.PropertyName)
	}
	if req.UnitName != "" {
		unitFilter = frost.ContainsField("unitOfMeasurement/name", req.UnitName)
	}

	q := frost.Query{
		Limit:  limit,
		Expand: "Thing,ObservedProperty,Sensor",
		Count:  true,
		Filter: frost.CombineFilters(propertyFilter, unitFilter, req.Filter),
	}

	var env frost.Envelope[frost.Datastream]
	if err := frost.FetchJSON(ctx, s.fetcher, endpoint, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list datastreams")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	response.Message = fmt.Sprintf("Found %d datastreams", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Datastreams = make([]tools.DatastreamInfo, 0, len(env.Value))
	for _, ds := range env.Value {
		info := tools.DatastreamInfo{
			ID:          ds.ID,
			Name:        ds.Name,
			Description: ds.Description,
			Unit: tools.UnitDetail{
				Name:       ds.UnitOfMeasurement.Name,
				Symbol:     ds.UnitOfMeasurement.Symbol,
				Definition: ds.UnitOfMeasurement.Definition,
			},
		}
		if ds.ObservedProperty != nil {
			info.ObservedProperty = tools.PropertyDetail{
				ID:          ds.ObservedProperty.ID,
				Name:        ds.ObservedProperty.Name,
				Definition:  ds.ObservedProperty.Definition,
				Description: ds.ObservedProperty.Description,
			}
		}
		if ds.Thing != nil {
			info.Sensor = tools.SensorRef{ID: ds.Thing.ID, Name: ds.Thing.Name}
		}
		if ds.Sensor != nil {
			info.Hardware = tools.HardwareDetail{
				ID:          ds.Sensor.ID,
				Name:        ds.Sensor.Name,
				Description: ds.Sensor.Description,
			}
		}
		response.Datastreams = append(response.Datastreams, info)
	}

	slog.Info("Successfully listed datastreams", "count", len(response.Datastreams))
	return response, nil
}

// handleGetObservations handles the get_observations MCP tool call. Scope
// precedence is datastream_id over sensor_id over the whole server.
func (s *MCPSensorToolServer) handleGetObservations(ctx context.Context, req tools.ObservationsRequest) (tools.ObservationsResponse, error) {
	slog.Info("Processing get_observations request",
		"datastream_id", req.DatastreamID, "sensor_id", req.SensorID, "limit", req.Limit)

	response := tools.ObservationsResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultObservationsLimit
	}

	var endpoint string
	switch {
	case req.DatastreamID != "":
		endpoint = fmt.Sprintf("Datastreams(%s)/Observations", req.DatastreamID)
	case req.SensorID != "":
		endpoint = fmt.Sprintf("Things(%s)/Datastreams/Observations", req.SensorID)
	default:
		endpoint = frost.SetObservations
	}

	q := frost.Query{
		Limit:   limit,
		OrderBy: "phenomenonTime desc",
		Expand:  "Datastream($expand=ObservedProperty,Thing)",
		Count:   true,
		Format:  frost.ResultFormat(req.Format),
		Filter:  frost.TimeRangeFilter(req.StartTime, req.EndTime),
	}

	if frost.ResultFormat(req.Format) == frost.FormatCSV {
		body, err := s.fetcher.Fetch(ctx, endpoint, q)
		if err != nil {
			err = errortypes.APIError(err, "failed to list observations")
			errortypes.LogError(nil, err)

			response.Status = tools.StatusError
			response.Error = err.Error()
			return response, nil
		}
		response.CSV = string(body)
		return response, nil
	}

	var env frost.Envelope[frost.Observation]
	if err := frost.FetchJSON(ctx, s.fetcher, endpoint, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list observations")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	observations := make([]tools.ObservationInfo, 0, len(env.Value))
	for _, obs := range env.Value {
		info := tools.ObservationInfo{
			ID:             obs.ID,
			Result:         obs.Result,
			PhenomenonTime: obs.PhenomenonTime,
			ResultTime:     obs.ResultTime,
			Quality:        obs.ResultQuality,
		}
		if ds := obs.Datastream; ds != nil {
			info.Datastream = tools.ObservationDatastream{
				ID:   ds.ID,
				Name: ds.Name,
				Unit: tools.UnitDetail{
					Name:       ds.UnitOfMeasurement.Name,
					Symbol:     ds.UnitOfMeasurement.Symbol,
					Definition: ds.UnitOfMeasurement.Definition,
				},
			}
			if ds.ObservedProperty != nil {
				info.Datastream.Property = ds.ObservedProperty.Name
			}
			if ds.Thing != nil {
				info.Datastream.SensorName = ds.Thing.Name
			}
		}
		observations = append(observations, info)
	}

	response.Message = fmt.Sprintf("Found %d observations", len(observations))
	response.TotalCount = env.TotalCount()
	response.Observations = observations

	// Results are ordered newest first, so the window runs last to first.
	timeRange := &tools.TimeRange{}
	if len(observations) > 0 {
		timeRange.Start = observations[len(observations)-1].PhenomenonTime
		timeRange.End = observations[0].PhenomenonTime
	}
	response.TimeRange = timeRange

	response.Aggregation = req.Aggregate
	if response.Aggregation == "" {
		response.Aggregation = "none"
	}

	slog.Info("Successfully listed observations", "count", len(observations))
	return response, nil
}

// handleGetLocations handles the get_locations MCP tool call. The default
// format is GeoJSON, passed through untouched for mapping clients.
func (s *MCPSensorToolServer) handleGetLocations(ctx context.Context, req tools.LocationsRequest) (tools.LocationsResponse, error) {
	slog.Info("Processing get_locations request", "bbox", req.BBox, "point", req.Point)

	response := tools.LocationsResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultSearchLimit
	}

	format := frost.ResultFormat(req.Format)
	if format == "" {
		format = frost.FormatGeoJSON
	}

	bboxFilter, err := frost.BuildLocationFilter(req.BBox)
	if err != nil {
		errortypes.LogError(nil, err)
		return tools.LocationsResponse{Status: tools.StatusError, Error: err.Error()}, nil
	}
	pointFilter, err := frost.BuildLocationFilter(req.Point)
	if err != nil {
		errortypes.LogError(nil, err)
		return tools.LocationsResponse{Status: tools.StatusError, Error: err.Error()}, nil
	}

	q := frost.Query{
		Limit:  limit,
		Expand: "Things($expand=Datastreams)",
		Count:  true,
		Format: format,
		Filter: frost.CombineFilters(bboxFilter, pointFilter),
	}

	if format == frost.FormatGeoJSON {
		body, err := s.fetcher.Fetch(ctx, frost.SetLocations, q)
		if err != nil {
			err = errortypes.APIError(err, "failed to list locations")
			errortypes.LogError(nil, err)

			response.Status = tools.StatusError
			response.Error = err.Error()
			return response, nil
		}
		response.Raw = body
		return response, nil
	}

	var env frost.Envelope[frost.Location]
	if err := frost.FetchJSON(ctx, s.fetcher, frost.SetLocations, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list locations")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	response.Message = fmt.Sprintf("Found %d locations", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Locations = make([]tools.LocationInfo, 0, len(env.Value))
	for _, loc := range env.Value {
		info := tools.LocationInfo{
			ID:           loc.ID,
			Name:         loc.Name,
			Description:  loc.Description,
			EncodingType: loc.EncodingType,
			Geometry: tools.GeometryInfo{
				Type:        loc.Location.Type,
				Coordinates: loc.Location.Coordinates,
			},
			Sensors: []tools.LocationSensor{},
		}
		for _, thing := range loc.Things {
			info.Sensors = append(info.Sensors, tools.LocationSensor{
				ID:              thing.ID,
				Name:            thing.Name,
				Description:     thing.Description,
				DatastreamCount: len(thing.Datastreams),
			})
		}
		response.Locations = append(response.Locations, info)
	}

	slog.Info("Successfully listed locations", "count", len(response.Locations))
	return response, nil
}

// handleGetObservedProperties handles the get_observed_properties MCP tool call.
func (s *MCPSensorToolServer) handleGetObservedProperties(ctx context.Context, req tools.PropertiesRequest) (tools.PropertiesResponse, error) {
	slog.Info("Processing get_observed_properties request", "search", req.Search)

	response := tools.PropertiesResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultPropertiesLimit
	}

	q := frost.Query{
		Limit: limit,
		Count: true,
	}
	if req.Search != "" {
		q.Filter = frost.ContainsNameOrDescription(req.Search)
	}

	var env frost.Envelope[frost.ObservedProperty]
	if err := frost.FetchJSON(ctx, s.fetcher, frost.SetObservedProperties, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list observed properties")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	response.Message = fmt.Sprintf("Found %d observed properties", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Properties = make([]tools.PropertyDetail, 0, len(env.Value))
	for _, prop := range env.Value {
		response.Properties = append(response.Properties, tools.PropertyDetail{
			ID:          prop.ID,
			Name:        prop.Name,
			Definition:  prop.Definition,
			Description: prop.Description,
		})
	}

	slog.Info("Successfully listed observed properties", "count", len(response.Properties))
	return response, nil
}

// handleGetSensorsHardware handles the get_sensors_hardware MCP tool call.
// Manufacturer and model are both matched against the instrument's name and
// description: the upstream schema has no dedicated fields for them.
func (s *MCPSensorToolServer) handleGetSensorsHardware(ctx context.Context, req tools.HardwareRequest) (tools.HardwareResponse, error) {
	slog.Info("Processing get_sensors_hardware request",
		"manufacturer", req.Manufacturer, "model", req.Model)

	response := tools.HardwareResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultSearchLimit
	}

	var manufacturerFilter, modelFilter string
	if req.Manufacturer != "" {
		manufacturerFilter = frost.ContainsNameOrDescription(req.Manufacturer)
	}
	if req.Model != "" {
		modelFilter = frost.ContainsNameOrDescription(req.Model)
	}

	q := frost.Query{
		Limit:  limit,
		Count:  true,
		Filter: frost.CombineFilters(manufacturerFilter, modelFilter),
	}

	var env frost.Envelope[frost.SensorHardware]
	if err := frost.FetchJSON(ctx, s.fetcher, frost.SetSensors, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list sensor hardware")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	response.Message = fmt.Sprintf("Found %d sensors", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Sensors = make([]tools.HardwareInfo, 0, len(env.Value))
	for _, hw := range env.Value {
		response.Sensors = append(response.Sensors, tools.HardwareInfo{
			ID:           hw.ID,
			Name:         hw.Name,
			Description:  hw.Description,
			EncodingType: hw.EncodingType,
			Metadata:     hw.Metadata,
		})
	}

	slog.Info("Successfully listed sensor hardware", "count", len(response.Sensors))
	return response, nil
}

// handleGetFeaturesOfInterest handles the get_features_of_interest MCP tool call.
func (s *MCPSensorToolServer) handleGetFeaturesOfInterest(ctx context.Context, req tools.FeaturesRequest) (tools.FeaturesResponse, error) {
	slog.Info("Processing get_features_of_interest request", "search", req.Search)

	response := tools.FeaturesResponse{
		Status: tools.StatusSuccess,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = tools.DefaultSearchLimit
	}

	var searchFilter, geometryFilter string
	if req.Search != "" {
		searchFilter = frost.ContainsNameOrDescription(req.Search)
	}
	if req.GeometryType != "" {
		geometryFilter = fmt.Sprintf("feature/type eq '%s'", req.GeometryType)
	}

	q := frost.Query{
		Limit:  limit,
		Count:  true,
		Filter: frost.CombineFilters(searchFilter, geometryFilter),
	}

	var env frost.Envelope[frost.FeatureOfInterest]
	if err := frost.FetchJSON(ctx, s.fetcher, frost.SetFeaturesOfInterest, q, &env); err != nil {
		err = errortypes.APIError(err, "failed to list features of interest")
		errortypes.LogError(nil, err)

		response.Status = tools.StatusError
		response.Error = err.Error()
		return response, nil
	}

	response.Message = fmt.Sprintf("Found %d features of interest", len(env.Value))
	response.TotalCount = env.TotalCount()
	response.Features = make([]tools.FeatureInfo, 0, len(env.Value))
	for _, foi := range env.Value {
		response.Features = append(response.Features, tools.FeatureInfo{
			ID:           foi.ID,
			Name:         foi.Name,
			Description:  foi.Description,
			EncodingType: foi.EncodingType,
			Geometry: tools.GeometryInfo{
				Type:        foi.Feature.Type,
				Coordinates: foi.Feature.Coordinates,
			},
		})
	}

	slog.Info("Successfully listed features of interest", "count", len(response.Features))
	return response, nil
}

// handleGetAPIInfo handles the get_api_info MCP tool call. On upstream
// failure the response still names the configured base URL so the client
// learns where the server was expected to be.
func (s *MCPSensorToolServer) handleGetAPIInfo(ctx context.Context, req tools.APIInfoRequest) (tools.APIInfoResponse, error) {
	slog.Info("Processing get_api_info request")

	var root frost.RootDocument
	if err := frost.FetchJSON(ctx, s.fetcher, "", frost.Query{}, &root); err != nil {
		err = errortypes.APIError(err, "could not retrieve API information")
		errortypes.LogError(nil, err)

		return tools.APIInfoResponse{
			Status:  tools.StatusError,
			Error:   "Could not retrieve API information",
			BaseURL: s.baseURL,
			Message: upstreamServerName + " - " + upstreamDescription,
		}, nil
	}

	info := tools.APIInfo{
		BaseURL:       s.baseURL,
		Version:       upstreamVersion,
		ServerName:    upstreamServerName,
		Description:   upstreamDescription,
		Endpoints:     []tools.APIEndpoint{},
		Capabilities:  root.Conformance(),
		MQTTEndpoints: root.MQTTEndpoints(),
	}
	for _, ep := range root.Value {
		info.Endpoints = append(info.Endpoints, tools.APIEndpoint{Name: ep.Name, URL: ep.URL})
	}

	slog.Info("Successfully retrieved API information", "endpoints", len(info.Endpoints))
	return tools.APIInfoResponse{
		Status:  tools.StatusSuccess,
		APIInfo: &info,
	}, nil
}
