package diag

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProber struct {
	db *mongo.Database
}

func NewMongoProber(db *mongo.Database) *MongoProber {
	return &MongoProber{db: db}
}

func (p *MongoProber) Probe(ctx context.Context) Report {
	report := Report{
		Status:           statusAvailable,
		ConnectionStatus: "Connected",
		Collections:      []string{},
	}

	names, err := p.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		report.Status = statusDegraded + truncateError(err)
		return report
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	report.Collections = names
	report.Status = statusWorking

	return report
}
