package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements MarketplaceDB on MongoDB, one collection per document kind
type MongoRepo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoRepo connects to uri, verifies the connection and ensures indexes
func NewMongoRepo(ctx context.Context, uri, database string) (*MongoRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	repo := &MongoRepo{client: client, db: client.Database(database)}
	if err := repo.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return repo, nil
}

// Close disconnects the underlying client
func (r *MongoRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepo) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionBids: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "bidClosingTime", Value: 1}}},
			{Keys: bson.D{{Key: "categories", Value: 1}}},
		},
		CollectionPlacedBids: {
			{Keys: bson.D{{Key: "entrepreneurId", Value: 1}, {Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "bidId", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
		CollectionBuyerNotifications: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "bidId", Value: 1}, {Key: "ownerId", Value: 1}}},
		},
		CollectionEntrepreneurNotifications: {
			{Keys: bson.D{{Key: "entrepreneurId", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		CollectionCategories: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := r.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo: create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

// notFound translates mongo.ErrNoDocuments into the domain sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return sentinel
	}
	return err
}

func (r *MongoRepo) findOne(ctx context.Context, collection, id string, out any, sentinel error) error {
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		return fmt.Errorf("mongo: find %s %s: %w", collection, id, notFound(err, sentinel))
	}
	return nil
}

func (r *MongoRepo) deleteOne(ctx context.Context, collection, id string, sentinel error) error {
	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongo: delete %s %s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("mongo: delete %s %s: %w", collection, id, sentinel)
	}
	return nil
}

func (r *MongoRepo) setFields(ctx context.Context, collection, id string, fields bson.M, sentinel error) error {
	res, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("mongo: update %s %s: %w", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("mongo: update %s %s: %w", collection, id, sentinel)
	}
	return nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("mongo: find in %s: %w", coll.Name(), err)
	}
	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

// equalityFilter builds a filter from the non-empty pairs of kv
func equalityFilter(kv ...string) bson.M {
	filter := bson.M{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			filter[kv[i]] = kv[i+1]
		}
	}
	return filter
}

func (r *MongoRepo) CreatePosting(ctx context.Context, posting model.BidPosting) (model.BidPosting, error) {
	if posting.ID == "" {
		posting.ID = utils.GenerateID()
	}
	if _, err := r.db.Collection(CollectionBids).InsertOne(ctx, posting); err != nil {
		return model.BidPosting{}, fmt.Errorf("mongo: insert posting: %w", err)
	}
	return posting, nil
}

func (r *MongoRepo) GetPosting(ctx context.Context, id string) (model.BidPosting, error) {
	var posting model.BidPosting
	if err := r.findOne(ctx, CollectionBids, id, &posting, biddingerrors.ErrPostingNotFound); err != nil {
		return model.BidPosting{}, err
	}
	return posting, nil
}

func (r *MongoRepo) UpdatePosting(ctx context.Context, id string, update model.PostingUpdate) error {
	fields := postingUpdateFields(update)
	if len(fields) == 0 {
		_, err := r.GetPosting(ctx, id)
		return err
	}
	return r.setFields(ctx, CollectionBids, id, bson.M(fields), biddingerrors.ErrPostingNotFound)
}

func (r *MongoRepo) DeletePosting(ctx context.Context, id string) error {
	return r.deleteOne(ctx, CollectionBids, id, biddingerrors.ErrPostingNotFound)
}

func (r *MongoRepo) ListPostings(ctx context.Context, filter model.PostingFilter) ([]model.BidPosting, error) {
	q := equalityFilter("userId", filter.OwnerID, "categories", filter.Category)
	if filter.OpenAt != nil {
		q["bidClosingTime"] = bson.M{"$gt": *filter.OpenAt}
	}
	return findAll[model.BidPosting](ctx, r.db.Collection(CollectionBids), q, bson.D{{Key: "bidClosingTime", Value: 1}})
}

func (r *MongoRepo) CreatePlacedBid(ctx context.Context, bid model.PlacedBid) (model.PlacedBid, error) {
	if bid.ID == "" {
		bid.ID = utils.GenerateID()
	}
	if _, err := r.db.Collection(CollectionPlacedBids).InsertOne(ctx, bid); err != nil {
		return model.PlacedBid{}, fmt.Errorf("mongo: insert placed bid: %w", err)
	}
	return normalizePlacedBid(bid)
}

func (r *MongoRepo) GetPlacedBid(ctx context.Context, id string) (model.PlacedBid, error) {
	var bid model.PlacedBid
	if err := r.findOne(ctx, CollectionPlacedBids, id, &bid, biddingerrors.ErrPlacedBidNotFound); err != nil {
		return model.PlacedBid{}, err
	}
	return normalizePlacedBid(bid)
}

func (r *MongoRepo) UpdatePlacedBidStatus(ctx context.Context, id string, status model.BidStatus, at time.Time) error {
	return r.setFields(ctx, CollectionPlacedBids, id, bson.M{"status": status, "timestamp": at}, biddingerrors.ErrPlacedBidNotFound)
}

func (r *MongoRepo) DeletePlacedBid(ctx context.Context, id string) error {
	return r.deleteOne(ctx, CollectionPlacedBids, id, biddingerrors.ErrPlacedBidNotFound)
}

func (r *MongoRepo) ListPlacedBids(ctx context.Context, filter model.PlacedBidFilter) ([]model.PlacedBid, error) {
	q := equalityFilter("bidId", filter.BidID, "entrepreneurId", filter.EntrepreneurID, "ownerId", filter.OwnerID)
	bids, err := findAll[model.PlacedBid](ctx, r.db.Collection(CollectionPlacedBids), q, bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	if err != nil {
		return nil, err
	}
	return normalizePlacedBids(bids)
}

func (r *MongoRepo) CreateBuyerNotification(ctx context.Context, n model.BuyerNotification) (model.BuyerNotification, error) {
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if _, err := r.db.Collection(CollectionBuyerNotifications).InsertOne(ctx, n); err != nil {
		return model.BuyerNotification{}, fmt.Errorf("mongo: insert buyer notification: %w", err)
	}
	return n, nil
}

func (r *MongoRepo) GetBuyerNotification(ctx context.Context, id string) (model.BuyerNotification, error) {
	var n model.BuyerNotification
	if err := r.findOne(ctx, CollectionBuyerNotifications, id, &n, biddingerrors.ErrNotificationNotFound); err != nil {
		return model.BuyerNotification{}, err
	}
	return n, nil
}

func (r *MongoRepo) DeleteBuyerNotification(ctx context.Context, id string) error {
	return r.deleteOne(ctx, CollectionBuyerNotifications, id, biddingerrors.ErrNotificationNotFound)
}

func (r *MongoRepo) ListBuyerNotifications(ctx context.Context, filter model.BuyerNotificationFilter) ([]model.BuyerNotification, error) {
	q := equalityFilter("ownerId", filter.OwnerID, "bidId", filter.BidID, "entrepreneurId", filter.EntrepreneurID)
	return findAll[model.BuyerNotification](ctx, r.db.Collection(CollectionBuyerNotifications), q, bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}})
}

func (r *MongoRepo) CreateEntrepreneurNotification(ctx context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error) {
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if _, err := r.db.Collection(CollectionEntrepreneurNotifications).InsertOne(ctx, n); err != nil {
		return model.EntrepreneurNotification{}, fmt.Errorf("mongo: insert entrepreneur notification: %w", err)
	}
	return n, nil
}

func (r *MongoRepo) GetEntrepreneurNotification(ctx context.Context, id string) (model.EntrepreneurNotification, error) {
	var n model.EntrepreneurNotification
	if err := r.findOne(ctx, CollectionEntrepreneurNotifications, id, &n, biddingerrors.ErrNotificationNotFound); err != nil {
		return model.EntrepreneurNotification{}, err
	}
	return n, nil
}

func (r *MongoRepo) UpdateEntrepreneurNotificationStatus(ctx context.Context, id string, status model.NotificationStatus) error {
	return r.setFields(ctx, CollectionEntrepreneurNotifications, id, bson.M{"status": status}, biddingerrors.ErrNotificationNotFound)
}

func (r *MongoRepo) DeleteEntrepreneurNotification(ctx context.Context, id string) error {
	return r.deleteOne(ctx, CollectionEntrepreneurNotifications, id, biddingerrors.ErrNotificationNotFound)
}

func (r *MongoRepo) ListEntrepreneurNotifications(ctx context.Context, filter model.EntrepreneurNotificationFilter) ([]model.EntrepreneurNotification, error) {
	q := equalityFilter("entrepreneurId", filter.EntrepreneurID, "bidId", filter.BidID)
	return findAll[model.EntrepreneurNotification](ctx, r.db.Collection(CollectionEntrepreneurNotifications), q, bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: 1}})
}

// SaveProfile upserts users/<uid> and the role-specific document
func (r *MongoRepo) SaveProfile(ctx context.Context, profile model.Profile) error {
	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	fields := bson.M{
		"uid":          profile.UID,
		"email":        profile.Email,
		"username":     profile.Username,
		"phoneNumber":  profile.PhoneNumber,
		"role":         profile.Role,
		"profileImage": profile.ProfileImage,
	}
	update := bson.M{"$set": fields, "$setOnInsert": bson.M{"createdAt": createdAt}}

	for _, collection := range []string{CollectionUsers, roleCollection(profile.Role)} {
		_, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": profile.UID}, update, options.Update().SetUpsert(true))
		if err != nil {
			return fmt.Errorf("mongo: upsert %s %s: %w", collection, profile.UID, err)
		}
	}
	return nil
}

func (r *MongoRepo) GetProfile(ctx context.Context, uid string) (model.Profile, error) {
	var user model.Profile
	if err := r.findOne(ctx, CollectionUsers, uid, &user, biddingerrors.ErrProfileNotFound); err != nil {
		return model.Profile{}, err
	}
	var specific model.Profile
	if err := r.findOne(ctx, roleCollection(user.Role), uid, &specific, biddingerrors.ErrProfileNotFound); err != nil {
		return model.Profile{}, err
	}
	specific.Role = user.Role
	specific.CreatedAt = user.CreatedAt
	return specific, nil
}

func (r *MongoRepo) CreateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID == "" {
		category.ID = utils.GenerateID()
	}
	if _, err := r.db.Collection(CollectionCategories).InsertOne(ctx, category); err != nil {
		return model.Category{}, fmt.Errorf("mongo: insert category: %w", err)
	}
	return category, nil
}

func (r *MongoRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	return findAll[model.Category](ctx, r.db.Collection(CollectionCategories), bson.M{}, bson.D{{Key: "name", Value: 1}})
}
