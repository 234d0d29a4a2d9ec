package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/infra/persistence/model"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/errx"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultMatchCollectionName = "match"

const (
	OpSaveMatch  = "repo.match.Save"
	OpListMatch  = "repo.match.List"
	OpEnsureIdx  = "repo.match.EnsureIndexes"
	createdAtKey = "created_at"
)

var errNilCollection = errors.New("mongodb match collection is nil")

// MatchStore 每局一个文档，按 version 做乐观覆盖。
type MatchStore struct {
	coll *mongo.Collection
}

var _ port.MatchStore = (*MatchStore)(nil)

func NewMatchStore(db *mongo.Database) *MatchStore {
	if db == nil {
		return &MatchStore{}
	}
	return &MatchStore{coll: db.Collection(defaultMatchCollectionName)}
}

// EnsureIndexes List 按创建时间排序。
func (s *MatchStore) EnsureIndexes(ctx context.Context) error {
	if s == nil || s.coll == nil {
		return infraErr(OpEnsureIdx, errNilCollection, nil)
	}
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: createdAtKey, Value: 1}},
	})
	if err != nil {
		return infraErr(OpEnsureIdx, err, nil)
	}
	return nil
}

// Save 只有版本更新时才覆盖；已存在更新版本时 upsert 撞主键，视为成功。
func (s *MatchStore) Save(ctx context.Context, r *port.MatchRecord) error {
	if r == nil {
		return nil
	}
	if s == nil || s.coll == nil {
		return infraErr(OpSaveMatch, errNilCollection, nil)
	}

	doc := model.MatchRecordToDoc(*r)
	filter := bson.M{"_id": doc.WorldID, "version": bson.M{"$lt": doc.Version}}
	update := bson.M{
		"$set": bson.M{
			"level":      doc.Level,
			"version":    doc.Version,
			"status":     doc.Status,
			"over":       doc.Over,
			"tick":       doc.Tick,
			"snapshot":   doc.Snapshot,
			"updated_at": doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{createdAtKey: time.Now()},
	}

	_, err := s.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err == nil || mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return infraErr(OpSaveMatch, err, map[string]any{"world_id": doc.WorldID, "version": doc.Version})
}

func (s *MatchStore) List(ctx context.Context) ([]port.MatchRecord, error) {
	if s == nil || s.coll == nil {
		return nil, infraErr(OpListMatch, errNilCollection, nil)
	}

	opts := options.Find().SetSort(bson.D{{Key: createdAtKey, Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, infraErr(OpListMatch, err, nil)
	}
	var docs []model.MatchDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, infraErr(OpListMatch, err, nil)
	}

	out := make([]port.MatchRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.MatchDocToRecord(d))
	}
	return out, nil
}

func infraErr(op string, err error, data map[string]any) error {
	return errx.ErrUnavailable.WithCause(err).WithData("op", op).WithDataMap(data)
}
