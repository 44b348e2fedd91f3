package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

const usersCollection = "users"

// userRepository implements repository.UserRepository.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
	}
}

func (r *userRepository) SyncName(ctx context.Context, id types.ID, firstName, lastName *string) error {
	// Nil pointers marshal to null, clearing the copy when the account
	// holds no value. An upsert is deliberately not used: a missing user
	// record is created elsewhere, and the sync matching zero documents
	// is not an error here.
	update := bson.M{"$set": bson.M{
		"firstName": firstName,
		"lastName":  lastName,
	}}

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("failed to sync user name: %w", err)
	}
	return nil
}
