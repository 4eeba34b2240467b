package workerRepo

import (
	"context"
	"fmt"
	"time"

	"helphive/database"
	"helphive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of WorkerRepository using MongoDB.
func NewMongoWorkerRepo() WorkerRepository {
	return &MongoWorkerRepo{coll: database.Collection("workers")}
}

func (r *MongoWorkerRepo) Create(worker *models.Worker) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *MongoWorkerRepo) GetByID(id string) (*models.Worker, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoWorkerRepo) GetByClerkID(clerkID string) (*models.Worker, error) {
	return r.findOne(bson.M{"clerkId": clerkID})
}

func (r *MongoWorkerRepo) GetActive() ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := bson.M{"status": bson.M{"$ne": models.WorkerStatusRejected}}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workers: %w", err)
	}
	defer cursor.Close(ctx)
	var workers []models.Worker
	for cursor.Next(ctx) {
		var w models.Worker
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, nil
}

func (r *MongoWorkerRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update worker with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWorkerRepo) UpdateByClerkID(clerkID string, updateDoc bson.M) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Worker
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"clerkId": clerkID}, bson.M{"$set": updateDoc}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update worker with clerkId %s: %w", clerkID, err)
	}
	return &updated, nil
}

func (r *MongoWorkerRepo) SetAverageRating(id string, average float64) error {
	return r.UpdateWithDocument(id, bson.M{"averageRating": average, "updatedAt": time.Now().UTC()})
}

func (r *MongoWorkerRepo) findOne(filter bson.M) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var worker models.Worker
	if err := r.coll.FindOne(ctx, filter).Decode(&worker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}
	return &worker, nil
}
