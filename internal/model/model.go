// Package model contains the request, document and report types shared by
// the repository, service and transport layers.
package model

import "go.mongodb.org/mongo-driver/bson"

// StatsRequest contains climate statistics request parameters.
// Index selects the dataset to search and Property the observation field to
// aggregate. All filter fields are optional.
type StatsRequest struct {
	Index             string            `json:"index"`
	Calculations      []string          `json:"calculations"`
	Property          string            `json:"property"`
	BBox              *BoundingBox      `json:"bbox"`
	StationIDs        []int64           `json:"stations_ids"`
	Threshold         float64           `json:"threshold"`
	MissingDataOption MissingDataPolicy `json:"missing_data_option"`
	Years             []int             `json:"years"`
	Months            []int             `json:"months"`
	Days              []int             `json:"days"`
	Hours             []int             `json:"hours"`
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BoundingBox delimits the area observations are requested inside.
type BoundingBox struct {
	TopLeft     Coordinate `json:"top_left"`
	BottomRight Coordinate `json:"bottom_right"`
}

// Geometry is a GeoJSON point geometry, coordinates ordered lon, lat.
type Geometry struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// ObservationDocument is the GeoJSON-shaped document stored per observation.
// Properties is schemaless because field names differ between datasets.
type ObservationDocument struct {
	Type       string   `bson:"type" json:"type"`
	Properties bson.M   `bson:"properties" json:"properties"`
	Geometry   Geometry `bson:"geometry" json:"geometry"`
}

// StationIdentity identifies the reporting station of one observation.
type StationIdentity struct {
	Name        string
	ID          int64
	Coordinates []float64
}

// ObservationPage is one bounded page of search results. MatchedCount is the
// total number of records the filters matched and can exceed the number of
// fetched values. Values keeps one entry per fetched record, nil marking a
// missing measurement, and Stations the record's reporting station at the
// same position.
type ObservationPage struct {
	MatchedCount int64
	Values       []*float64
	Stations     []StationIdentity
}
