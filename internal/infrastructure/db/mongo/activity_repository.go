package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifit/unifit-api/internal/core/domain"
)

const (
	collectionActivity = "activity_logs"
	collectionCounters = "counters"
)

// ActivityRepository keeps the audit trail in a MongoDB collection. Integer
// ids come from a sequence document in the counters collection so records
// look the same as the ones from the relational store.
type ActivityRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
	now      func() time.Time
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		col:      db.Collection(collectionActivity),
		counters: db.Collection(collectionCounters),
		now:      time.Now,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, e domain.ActivityEntry) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return 0, persistence("next activity id", err)
	}

	rec := domain.ActivityRecord{
		ID:        id,
		ActorType: e.ActorType,
		ActorID:   e.ActorID,
		ActorName: e.ActorName,
		Action:    e.Action,
		Details:   e.Details,
		IP:        e.IP,
		// BSON dates have millisecond precision.
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return 0, persistence("insert activity", err)
	}
	return id, nil
}

// List returns matching documents newest first. A negative limit means no limit.
func (r *ActivityRepository) List(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset))
	if limit >= 0 {
		if limit == 0 {
			return []domain.ActivityRecord{}, nil
		}
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, activityFilter(f), opts)
	if err != nil {
		return nil, persistence("list activity", err)
	}
	records := []domain.ActivityRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, persistence("decode activity", err)
	}
	return records, nil
}

func (r *ActivityRepository) Count(ctx context.Context, f domain.ActivityFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, activityFilter(f))
	if err != nil {
		return 0, persistence("count activity", err)
	}
	return n, nil
}

func (r *ActivityRepository) StatsByPeriod(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	since := r.now().UTC().AddDate(0, 0, -days)
	countIf := func(actor domain.ActorType) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$usuario_tipo", string(actor)}}, 1, 0}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":            bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"total":          bson.M{"$sum": 1},
			"total_usuarios": countIf(domain.ActorUser),
			"total_admins":   countIf(domain.ActorAdmin),
		}}},
		{{Key: "$sort", Value: bson.M{"_id": -1}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"data":           "$_id",
			"total":          1,
			"total_usuarios": 1,
			"total_admins":   1,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, persistence("activity stats by period", err)
	}
	out := []domain.DailyActivity{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, persistence("decode activity stats", err)
	}
	return out, nil
}

func (r *ActivityRepository) TopActions(ctx context.Context, limit int) ([]domain.ActionCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$acao", "total": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, persistence("activity top actions", err)
	}
	out := []domain.ActionCount{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, persistence("decode top actions", err)
	}
	return out, nil
}

// EnsureIndexes creates the indexes used by the list and stats queries.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "usuario_tipo", Value: 1}}},
		{Keys: bson.D{{Key: "acao", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ActivityRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": collectionActivity},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	return counter.Seq, err
}

// activityFilter mirrors the relational WHERE clause: ANDed predicates,
// case-insensitive substring matches and a date range only with both bounds.
func activityFilter(f domain.ActivityFilter) bson.M {
	filter := bson.M{}
	if f.ActorType != "" {
		filter["usuario_tipo"] = string(f.ActorType)
	}
	if f.Action != "" {
		filter["acao"] = containsRegex(f.Action)
	}
	if f.ActorName != "" {
		filter["usuario_nome"] = containsRegex(f.ActorName)
	}
	if f.HasDateRange() {
		filter["created_at"] = bson.M{"$gte": *f.StartDate, "$lte": *f.EndDate}
	}
	return filter
}

func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
