package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreRepo implements MarketplaceDB on Cloud Firestore. Document ids are
// the record ids; they are not stored inside the documents.
type FirestoreRepo struct {
	client *firestore.Client
}

// NewFirestoreRepo opens the Firestore client of an initialised Firebase app
func NewFirestoreRepo(ctx context.Context, app *firebase.App) (*FirestoreRepo, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore: open client: %w", err)
	}
	return &FirestoreRepo{client: client}, nil
}

// Close releases the Firestore client
func (r *FirestoreRepo) Close() error {
	return r.client.Close()
}

// translate maps a NotFound status onto the domain sentinel
func translate(err error, sentinel error) error {
	if status.Code(err) == codes.NotFound {
		return sentinel
	}
	return err
}

func (r *FirestoreRepo) create(ctx context.Context, collection, id string, data any) (string, error) {
	coll := r.client.Collection(collection)
	ref := coll.NewDoc()
	if id != "" {
		ref = coll.Doc(id)
	}
	if _, err := ref.Create(ctx, data); err != nil {
		return "", fmt.Errorf("firestore: create %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (r *FirestoreRepo) get(ctx context.Context, collection, id string, out any, sentinel error) error {
	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return fmt.Errorf("firestore: get %s/%s: %w", collection, id, translate(err, sentinel))
	}
	if err := snap.DataTo(out); err != nil {
		return fmt.Errorf("firestore: decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *FirestoreRepo) update(ctx context.Context, collection, id string, updates []firestore.Update, sentinel error) error {
	if _, err := r.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("firestore: update %s/%s: %w", collection, id, translate(err, sentinel))
	}
	return nil
}

func (r *FirestoreRepo) delete(ctx context.Context, collection, id string, sentinel error) error {
	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return fmt.Errorf("firestore: delete %s/%s: %w", collection, id, translate(err, sentinel))
	}
	return nil
}

// where adds an equality clause for every non-empty pair of kv
func where(q firestore.Query, kv ...string) firestore.Query {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q = q.Where(kv[i], "==", kv[i+1])
		}
	}
	return q
}

// queryAll runs q and decodes each document, handing its id to setID
func queryAll[T any](ctx context.Context, q firestore.Query, setID func(*T, string)) ([]T, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: query: %w", err)
	}
	out := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, fmt.Errorf("firestore: decode %s: %w", snap.Ref.Path, err)
		}
		setID(&v, snap.Ref.ID)
		out = append(out, v)
	}
	return out, nil
}

func (r *FirestoreRepo) CreatePosting(ctx context.Context, posting model.BidPosting) (model.BidPosting, error) {
	id, err := r.create(ctx, CollectionBids, posting.ID, posting)
	if err != nil {
		return model.BidPosting{}, err
	}
	posting.ID = id
	return posting, nil
}

func (r *FirestoreRepo) GetPosting(ctx context.Context, id string) (model.BidPosting, error) {
	var posting model.BidPosting
	if err := r.get(ctx, CollectionBids, id, &posting, biddingerrors.ErrPostingNotFound); err != nil {
		return model.BidPosting{}, err
	}
	posting.ID = id
	return posting, nil
}

func (r *FirestoreRepo) UpdatePosting(ctx context.Context, id string, update model.PostingUpdate) error {
	fields := postingUpdateFields(update)
	if len(fields) == 0 {
		_, err := r.GetPosting(ctx, id)
		return err
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	return r.update(ctx, CollectionBids, id, updates, biddingerrors.ErrPostingNotFound)
}

func (r *FirestoreRepo) DeletePosting(ctx context.Context, id string) error {
	return r.delete(ctx, CollectionBids, id, biddingerrors.ErrPostingNotFound)
}

func (r *FirestoreRepo) ListPostings(ctx context.Context, filter model.PostingFilter) ([]model.BidPosting, error) {
	q := where(r.client.Collection(CollectionBids).Query, "userId", filter.OwnerID, "categories", filter.Category)
	if filter.OpenAt != nil {
		q = q.Where("bidClosingTime", ">", *filter.OpenAt)
	}
	q = q.OrderBy("bidClosingTime", firestore.Asc)
	return queryAll(ctx, q, func(p *model.BidPosting, id string) { p.ID = id })
}

func (r *FirestoreRepo) CreatePlacedBid(ctx context.Context, bid model.PlacedBid) (model.PlacedBid, error) {
	id, err := r.create(ctx, CollectionPlacedBids, bid.ID, bid)
	if err != nil {
		return model.PlacedBid{}, err
	}
	bid.ID = id
	return normalizePlacedBid(bid)
}

func (r *FirestoreRepo) GetPlacedBid(ctx context.Context, id string) (model.PlacedBid, error) {
	var bid model.PlacedBid
	if err := r.get(ctx, CollectionPlacedBids, id, &bid, biddingerrors.ErrPlacedBidNotFound); err != nil {
		return model.PlacedBid{}, err
	}
	bid.ID = id
	return normalizePlacedBid(bid)
}

func (r *FirestoreRepo) UpdatePlacedBidStatus(ctx context.Context, id string, status model.BidStatus, at time.Time) error {
	return r.update(ctx, CollectionPlacedBids, id, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "timestamp", Value: at},
	}, biddingerrors.ErrPlacedBidNotFound)
}

func (r *FirestoreRepo) DeletePlacedBid(ctx context.Context, id string) error {
	return r.delete(ctx, CollectionPlacedBids, id, biddingerrors.ErrPlacedBidNotFound)
}

func (r *FirestoreRepo) ListPlacedBids(ctx context.Context, filter model.PlacedBidFilter) ([]model.PlacedBid, error) {
	q := where(r.client.Collection(CollectionPlacedBids).Query,
		"bidId", filter.BidID, "entrepreneurId", filter.EntrepreneurID, "ownerId", filter.OwnerID)
	q = q.OrderBy("timestamp", firestore.Asc)
	bids, err := queryAll(ctx, q, func(b *model.PlacedBid, id string) { b.ID = id })
	if err != nil {
		return nil, err
	}
	return normalizePlacedBids(bids)
}

func (r *FirestoreRepo) CreateBuyerNotification(ctx context.Context, n model.BuyerNotification) (model.BuyerNotification, error) {
	id, err := r.create(ctx, CollectionBuyerNotifications, n.ID, n)
	if err != nil {
		return model.BuyerNotification{}, err
	}
	n.ID = id
	return n, nil
}

func (r *FirestoreRepo) GetBuyerNotification(ctx context.Context, id string) (model.BuyerNotification, error) {
	var n model.BuyerNotification
	if err := r.get(ctx, CollectionBuyerNotifications, id, &n, biddingerrors.ErrNotificationNotFound); err != nil {
		return model.BuyerNotification{}, err
	}
	n.ID = id
	return n, nil
}

func (r *FirestoreRepo) DeleteBuyerNotification(ctx context.Context, id string) error {
	return r.delete(ctx, CollectionBuyerNotifications, id, biddingerrors.ErrNotificationNotFound)
}

func (r *FirestoreRepo) ListBuyerNotifications(ctx context.Context, filter model.BuyerNotificationFilter) ([]model.BuyerNotification, error) {
	q := where(r.client.Collection(CollectionBuyerNotifications).Query,
		"ownerId", filter.OwnerID, "bidId", filter.BidID, "entrepreneurId", filter.EntrepreneurID)
	q = q.OrderBy("timestamp", firestore.Desc)
	return queryAll(ctx, q, func(n *model.BuyerNotification, id string) { n.ID = id })
}

func (r *FirestoreRepo) CreateEntrepreneurNotification(ctx context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error) {
	id, err := r.create(ctx, CollectionEntrepreneurNotifications, n.ID, n)
	if err != nil {
		return model.EntrepreneurNotification{}, err
	}
	n.ID = id
	return n, nil
}

func (r *FirestoreRepo) GetEntrepreneurNotification(ctx context.Context, id string) (model.EntrepreneurNotification, error) {
	var n model.EntrepreneurNotification
	if err := r.get(ctx, CollectionEntrepreneurNotifications, id, &n, biddingerrors.ErrNotificationNotFound); err != nil {
		return model.EntrepreneurNotification{}, err
	}
	n.ID = id
	return n, nil
}

func (r *FirestoreRepo) UpdateEntrepreneurNotificationStatus(ctx context.Context, id string, status model.NotificationStatus) error {
	return r.update(ctx, CollectionEntrepreneurNotifications, id,
		[]firestore.Update{{Path: "status", Value: string(status)}}, biddingerrors.ErrNotificationNotFound)
}

func (r *FirestoreRepo) DeleteEntrepreneurNotification(ctx context.Context, id string) error {
	return r.delete(ctx, CollectionEntrepreneurNotifications, id, biddingerrors.ErrNotificationNotFound)
}

func (r *FirestoreRepo) ListEntrepreneurNotifications(ctx context.Context, filter model.EntrepreneurNotificationFilter) ([]model.EntrepreneurNotification, error) {
	q := where(r.client.Collection(CollectionEntrepreneurNotifications).Query,
		"entrepreneurId", filter.EntrepreneurID, "bidId", filter.BidID)
	q = q.OrderBy("timestamp", firestore.Desc)
	return queryAll(ctx, q, func(n *model.EntrepreneurNotification, id string) { n.ID = id })
}

// SaveProfile merges the profile into users/<uid> and the role collection in one batch
func (r *FirestoreRepo) SaveProfile(ctx context.Context, profile model.Profile) error {
	data := map[string]any{
		"uid":          profile.UID,
		"email":        profile.Email,
		"username":     profile.Username,
		"phoneNumber":  profile.PhoneNumber,
		"role":         string(profile.Role),
		"profileImage": profile.ProfileImage,
	}
	if !profile.CreatedAt.IsZero() {
		data["createdAt"] = profile.CreatedAt
	}

	batch := r.client.Batch()
	batch.Set(r.client.Collection(CollectionUsers).Doc(profile.UID), data, firestore.MergeAll)
	batch.Set(r.client.Collection(roleCollection(profile.Role)).Doc(profile.UID), data, firestore.MergeAll)
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("firestore: save profile %s: %w", profile.UID, err)
	}
	return nil
}

func (r *FirestoreRepo) GetProfile(ctx context.Context, uid string) (model.Profile, error) {
	var user model.Profile
	if err := r.get(ctx, CollectionUsers, uid, &user, biddingerrors.ErrProfileNotFound); err != nil {
		return model.Profile{}, err
	}
	var specific model.Profile
	if err := r.get(ctx, roleCollection(user.Role), uid, &specific, biddingerrors.ErrProfileNotFound); err != nil {
		return model.Profile{}, err
	}
	specific.UID = uid
	specific.Role = user.Role
	specific.CreatedAt = user.CreatedAt
	return specific, nil
}

func (r *FirestoreRepo) CreateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	id, err := r.create(ctx, CollectionCategories, category.ID, category)
	if err != nil {
		return model.Category{}, err
	}
	category.ID = id
	return category, nil
}

func (r *FirestoreRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	q := r.client.Collection(CollectionCategories).OrderBy("name", firestore.Asc)
	return queryAll(ctx, q, func(c *model.Category, id string) { c.ID = id })
}
