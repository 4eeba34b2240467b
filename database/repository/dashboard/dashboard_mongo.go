package dashboardRepo

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

// MongoDashboardRepo implements DashboardRepository using MongoDB.
type MongoDashboardRepo struct {
	coll *mongo.Collection
}

// NewMongoDashboardRepo creates a new instance of DashboardRepository using MongoDB.
func NewMongoDashboardRepo() DashboardRepository {
	return &MongoDashboardRepo{coll: database.Collection("worker_dashboard")}
}

func (r *MongoDashboardRepo) Insert(entry *models.DashboardEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create dashboard entry: %w", err)
	}
	return nil
}

func (r *MongoDashboardRepo) SyncStatus(bookingID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	// MatchedCount of zero is fine: a missing entry is not an error.
	if _, err := r.coll.UpdateOne(ctx, bson.M{"bookingId": bookingID}, update); err != nil {
		return fmt.Errorf("failed to sync dashboard status for booking %s: %w", bookingID, err)
	}
	return nil
}

func (r *MongoDashboardRepo) Remove(bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.DeleteOne(ctx, bson.M{"bookingId": bookingID}); err != nil {
		return fmt.Errorf("failed to remove dashboard entry for booking %s: %w", bookingID, err)
	}
	return nil
}

func (r *MongoDashboardRepo) GetByBookingID(bookingID string) (*models.DashboardEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var entry models.DashboardEntry
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch dashboard entry for booking %s: %w", bookingID, err)
	}
	return &entry, nil
}

func (r *MongoDashboardRepo) GetByWorker(workerID string) ([]models.DashboardEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"workerId": workerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve dashboard entries: %w", err)
	}
	defer cursor.Close(ctx)
	var entries []models.DashboardEntry
	for cursor.Next(ctx) {
		var e models.DashboardEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode dashboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
