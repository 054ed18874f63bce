// Package repository provides methods to initialize the document store and
// perform observation queries.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchPageLimit caps how many observation documents one search fetches.
// The count of matched records is reported separately and can be higher.
const searchPageLimit = 10000

// Station identity fields shared by all datasets.
const (
	stationNameField = "STATION_NAME"
	stationIDField   = "STN_ID"
)

// datasetMapping names the per-dataset document fields the filters apply to.
// An empty name means the dataset does not carry that filter.
type datasetMapping struct {
	stationID string
	year      string
	month     string
	day       string
	hour      string
}

// datasetMappings lists the queryable datasets. Searching an unlisted
// dataset is allowed but only the bounding box filter applies.
var datasetMappings = map[string]datasetMapping{
	"climate_normals_data": {
		stationID: "STN_ID",
		month:     "MONTH",
	},
	"climate_public_climate_summary": {
		stationID: "STN_ID",
		year:      "LOCAL_YEAR",
		month:     "LOCAL_MONTH",
	},
	"climate_public_daily_data": {
		stationID: "STN_ID",
		year:      "LOCAL_YEAR",
		month:     "LOCAL_MONTH",
		day:       "LOCAL_DAY",
	},
	"climate_public_hourly_data": {
		stationID: "STN_ID",
		year:      "LOCAL_YEAR",
		month:     "LOCAL_MONTH",
		day:       "LOCAL_DAY",
		hour:      "LOCAL_HOUR",
	},
}

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database. The connection string and
// database name come from the DB_CONN_STRING and DB_NAME environment
// variables.
func New() (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connectionURI := fmt.Sprintf("%s/%s", os.Getenv("DB_CONN_STRING"), os.Getenv("DB_NAME"))

	client, err := newMongoDBClient(ctxWithTimeout, connectionURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(os.Getenv("DB_NAME")),
	}, nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// SearchObservations counts the records matching the request filters in the
// requested dataset collection and fetches one page of them.
func (r *Repository) SearchObservations(ctx context.Context, req *model.StatsRequest) (*model.ObservationPage, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := buildSearchFilter(datasetMappings[req.Index], req)
	collection := r.db.Collection(req.Index)

	matched, err := collection.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count matching observations: %w", err)
	}

	cur, err := collection.Find(ctxWithTimeout, filter, options.Find().SetLimit(searchPageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to search observations: %w", err)
	}
	defer cur.Close(ctxWithTimeout)

	page := &model.ObservationPage{MatchedCount: matched}
	for cur.Next(ctxWithTimeout) {
		doc := model.ObservationDocument{}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		value, err := propertyValue(doc.Properties, req.Property)
		if err != nil {
			return nil, err
		}

		page.Values = append(page.Values, value)
		page.Stations = append(page.Stations, stationIdentity(&doc))
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return page, nil
}

// BuildSearchFilter translates the request filters into a document filter
// using the dataset's field mapping.
func buildSearchFilter(mapping datasetMapping, req *model.StatsRequest) bson.M {
	filter := bson.M{}

	if req.BBox != nil {
		filter["geometry"] = bson.M{
			"$geoWithin": bson.M{
				"$geometry": bson.M{
					"type":        "Polygon",
					"coordinates": bboxPolygon(req.BBox),
				},
			},
		}
	}

	if len(req.StationIDs) > 0 && mapping.stationID != "" {
		filter["properties."+mapping.stationID] = bson.M{"$in": req.StationIDs}
	}

	addTermsFilter(filter, mapping.year, req.Years)
	addTermsFilter(filter, mapping.month, req.Months)
	addTermsFilter(filter, mapping.day, req.Days)
	addTermsFilter(filter, mapping.hour, req.Hours)

	return filter
}

func addTermsFilter(filter bson.M, field string, values []int) {
	if field == "" || len(values) == 0 {
		return
	}

	filter["properties."+field] = bson.M{"$in": values}
}

// BboxPolygon converts the top-left/bottom-right corners into a closed
// polygon ring, points ordered lon, lat.
func bboxPolygon(b *model.BoundingBox) [][][]float64 {
	minLon, maxLat := b.TopLeft.Lon, b.TopLeft.Lat
	maxLon, minLat := b.BottomRight.Lon, b.BottomRight.Lat

	return [][][]float64{{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
		{minLon, minLat},
	}}
}

// PropertyValue extracts the requested property from a document, keeping the
// missing marker distinct from zero.
func propertyValue(properties bson.M, property string) (*float64, error) {
	raw, ok := properties[property]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case float64:
		return &v, nil
	case int32:
		value := float64(v)
		return &value, nil
	case int64:
		value := float64(v)
		return &value, nil
	}

	return nil, fmt.Errorf("property %s has a non-numeric value of type %T", property, raw)
}

// StationIdentity reads the reporting station attributes of one observation.
func stationIdentity(doc *model.ObservationDocument) model.StationIdentity {
	station := model.StationIdentity{Coordinates: doc.Geometry.Coordinates}

	if name, ok := doc.Properties[stationNameField].(string); ok {
		station.Name = name
	}

	switch id := doc.Properties[stationIDField].(type) {
	case int32:
		station.ID = int64(id)
	case int64:
		station.ID = id
	case float64:
		station.ID = int64(id)
	}

	return station
}

// InsertObservations inserts observation documents into the given dataset
// collection.
func (r *Repository) InsertObservations(ctx context.Context, index string, docs []*model.ObservationDocument) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m := make([]interface{}, 0, len(docs))
	for _, v := range docs {
		m = append(m, v)
	}

	res, err := r.db.Collection(index).InsertMany(ctxWithTimeout, m)
	if err != nil {
		return err
	}
	if len(res.InsertedIDs) != len(m) {
		return errors.New("not all data was inserted")
	}

	return nil
}

// EnsureObservationIndexes creates the indexes observation searches rely on
// for the given dataset collection.
func (r *Repository) EnsureObservationIndexes(ctx context.Context, index string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.M{"geometry": "2dsphere"}},
		{Keys: bson.M{"properties." + stationIDField: 1}},
	}

	_, err := r.db.Collection(index).Indexes().CreateMany(ctxWithTimeout, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create observation indexes: %w", err)
	}

	return nil
}
