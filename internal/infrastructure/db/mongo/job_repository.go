package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

const jobsCollection = "job_postings"

// jobSortFields whitelists sortable columns; anything else falls back to
// created_at instead of erroring on arbitrary client input.
var jobSortFields = map[string]string{
	"created_at":       "created_at",
	"updated_at":       "updated_at",
	"title":            "title",
	"company":          "company",
	"salary_min":       "salary_min",
	"salary_max":       "salary_max",
	"experience_level": "experience_level",
}

// JobRepository persists job postings.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = id.Hex()
	}
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.JobPosting
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

// List returns a page of postings matching filter and the total match count.
func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.JobPosting, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildJobQuery(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(buildSort(jobSortFields, filter.SortBy, "created_at", filter.SortOrder)).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.JobPosting, 0, filter.Limit)
	for cur.Next(ctx) {
		var job domain.JobPosting
		if err := cur.Decode(&job); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, &job)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, total, nil
}

// Update applies a partial $set built from the non-nil fields of upd and
// returns the updated document.
func (r *JobRepository) Update(ctx context.Context, id string, upd ports.JobUpdate) (*domain.JobPosting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := buildJobUpdate(upd)
	set["updated_at"] = time.Now().UTC()

	var job domain.JobPosting
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates indexes supporting the list filters.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "company", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "posted_by_user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// buildJobQuery translates the list filter into a Mongo query document.
func buildJobQuery(filter ports.ListJobsFilter) bson.M {
	query := bson.M{}

	if filter.ActiveOnly {
		query["is_active"] = true
	}
	if filter.Company != "" {
		query["company"] = containsPattern(filter.Company)
	}
	if filter.Location != "" {
		query["location"] = containsPattern(filter.Location)
	}
	if filter.RemoteOnly {
		query["remote_allowed"] = true
	}
	if filter.ExperienceLevel != "" {
		query["experience_level"] = filter.ExperienceLevel
	}
	if filter.EmploymentType != "" {
		query["employment_type"] = filter.EmploymentType
	}
	if filter.MinSalary != nil {
		query["salary_min"] = bson.M{"$gte": *filter.MinSalary}
	}
	if filter.MaxSalary != nil {
		query["salary_max"] = bson.M{"$lte": *filter.MaxSalary}
	}

	// every requested skill must appear among required or preferred skills
	if len(filter.Skills) > 0 {
		clauses := make([]bson.M, 0, len(filter.Skills))
		for _, skill := range filter.Skills {
			clauses = append(clauses, bson.M{"$or": []bson.M{
				{"required_skills": skill},
				{"preferred_skills": skill},
			}})
		}
		query["$and"] = clauses
	}

	return query
}

// buildJobUpdate translates non-nil update fields into a $set document.
func buildJobUpdate(upd ports.JobUpdate) bson.M {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Company != nil {
		set["company"] = *upd.Company
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.EmploymentType != nil {
		set["employment_type"] = *upd.EmploymentType
	}
	if upd.ExperienceLevel != nil {
		set["experience_level"] = *upd.ExperienceLevel
	}
	if upd.SalaryMin != nil {
		set["salary_min"] = *upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		set["salary_max"] = *upd.SalaryMax
	}
	if upd.RequiredSkills != nil {
		set["required_skills"] = upd.RequiredSkills
	}
	if upd.PreferredSkills != nil {
		set["preferred_skills"] = upd.PreferredSkills
	}
	if upd.RemoteAllowed != nil {
		set["remote_allowed"] = *upd.RemoteAllowed
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}
	if upd.ExpiresAt != nil {
		set["expires_at"] = *upd.ExpiresAt
	}
	return set
}

// containsPattern builds a case-insensitive substring match.
func containsPattern(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// buildSort resolves a client-supplied sort field against a whitelist and
// returns the Mongo sort document.
func buildSort(allowed map[string]string, sortBy, fallback, order string) bson.D {
	field, ok := allowed[sortBy]
	if !ok {
		field = fallback
	}
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}
