package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/domain/model"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/repository"
)

const accountsCollection = "accounts"

// accountRepository implements repository.AccountRepository.
type accountRepository struct {
	coll *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		coll: db.Collection(accountsCollection),
	}
}

func (r *accountRepository) FindOwnerUserID(ctx context.Context, id types.ID) (types.ID, error) {
	var doc struct {
		OwnerUserID string `bson:"userId"`
	}

	opts := options.FindOne().SetProjection(bson.M{"userId": 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.ID(""), repository.ErrNotFound
		}
		return types.ID(""), fmt.Errorf("failed to look up account owner: %w", err)
	}

	return types.ID(doc.OwnerUserID), nil
}

func (r *accountRepository) FindByID(ctx context.Context, id types.ID) (*model.Account, error) {
	var account model.Account
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) ApplyUpdate(ctx context.Context, id types.ID, set map[string]any) (*model.Account, error) {
	update := bson.M{"$set": bson.M(set)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var account model.Account
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to apply account update: %w", err)
	}

	return &account, nil
}
