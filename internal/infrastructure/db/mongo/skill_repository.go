package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

const skillsCollection = "skills"

var skillSortFields = map[string]string{
	"demand_score": "demand_score",
	"growth_rate":  "growth_rate",
	"name":         "name",
	"category":     "category",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

// SkillRepository persists the skill catalogue.
type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, skill)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSkillExists
		}
		return nil, fmt.Errorf("insert skill: %w", err)
	}

	created := *skill
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = id.Hex()
	}
	return &created, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSkillNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByName matches the full skill name case-insensitively.
func (r *SkillRepository) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	pattern := "^" + regexp.QuoteMeta(strings.TrimSpace(name)) + "$"
	return r.findOne(ctx, bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *SkillRepository) findOne(ctx context.Context, filter bson.M) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var skill domain.Skill
	if err := r.coll.FindOne(ctx, filter).Decode(&skill); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) List(ctx context.Context, filter ports.ListSkillsFilter) ([]*domain.Skill, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildSkillQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count skills: %w", err)
	}

	opts := options.Find().
		SetSort(buildSort(skillSortFields, filter.SortBy, "demand_score", filter.SortOrder)).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	skills, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

// Trending returns the top skills by demand score, breaking ties on growth rate.
func (r *SkillRepository) Trending(ctx context.Context, category string, limit int) ([]*domain.Skill, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if category != "" {
		query["category"] = category
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count skills: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "demand_score", Value: -1}, {Key: "growth_rate", Value: -1}}).
		SetLimit(int64(limit))

	skills, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *SkillRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Skill, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cur.Close(ctx)

	var skills []*domain.Skill
	for cur.Next(ctx) {
		var skill domain.Skill
		if err := cur.Decode(&skill); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		skills = append(skills, &skill)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (r *SkillRepository) Update(ctx context.Context, id string, upd ports.SkillUpdate) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := buildSkillUpdate(upd)
	set["updated_at"] = time.Now().UTC()

	var skill domain.Skill
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSkillExists
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index (case-insensitive collation)
// and the trending sort index.
func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("name_unique").
				SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "demand_score", Value: -1}, {Key: "growth_rate", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func buildSkillQuery(filter ports.ListSkillsFilter) bson.M {
	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinDemand != nil {
		query["demand_score"] = bson.M{"$gte": *filter.MinDemand}
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query["$or"] = []bson.M{
			{"name": pattern},
			{"description": pattern},
		}
	}

	return query
}

func buildSkillUpdate(upd ports.SkillUpdate) bson.M {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.DemandScore != nil {
		set["demand_score"] = *upd.DemandScore
	}
	if upd.GrowthRate != nil {
		set["growth_rate"] = *upd.GrowthRate
	}
	if upd.RelatedSkills != nil {
		set["related_skills"] = *upd.RelatedSkills
	}
	return set
}
