package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes builds every index the query paths rely on. CreateMany is
// idempotent so this is safe to run on every startup.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	byCollection := map[string][]mongo.IndexModel{
		"subscriptions": {
			// Enforces one subscription per address; duplicates surface
			// as E11000 and are translated to a conflict.
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_email_unique"),
			},
		},
		"team_members": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_email_unique"),
			},
			// Roster filters and the stats group-bys
			{
				Keys:    bson.D{{Key: "role", Value: 1}},
				Options: options.Index().SetName("idx_role"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_status"),
			},
		},
		"contacts": {
			// List ordering and the daily-trend window scan
			{
				Keys:    bson.D{{Key: "submittedAt", Value: -1}},
				Options: options.Index().SetName("idx_submitted_at"),
			},
		},
		"client_projects": {
			{
				Keys:    bson.D{{Key: "clientEmail", Value: 1}},
				Options: options.Index().SetName("idx_client_email"),
			},
		},
		"messages": {
			{
				Keys:    bson.D{{Key: "clientEmail", Value: 1}},
				Options: options.Index().SetName("idx_client_email"),
			},
		},
		"files": {
			{
				Keys:    bson.D{{Key: "clientEmail", Value: 1}},
				Options: options.Index().SetName("idx_client_email"),
			},
		},
		"activities": {
			// Feed queries: per-client and per-project, newest first
			{
				Keys: bson.D{
					{Key: "clientEmail", Value: 1},
					{Key: "createdAt", Value: -1},
				},
				Options: options.Index().SetName("idx_client_email_created_at"),
			},
			{
				Keys: bson.D{
					{Key: "projectId", Value: 1},
					{Key: "createdAt", Value: -1},
				},
				Options: options.Index().SetName("idx_project_id_created_at"),
			},
			// Age-based cleanup
			{
				Keys:    bson.D{{Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("idx_created_at"),
			},
		},
	}

	for name, indexes := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %v", name, err)
		}
	}

	fmt.Println("Database indexes created successfully")
	return nil
}
