package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

func TestBuildJobQuery_Empty(t *testing.T) {
	query := buildJobQuery(ports.ListJobsFilter{})
	if len(query) != 0 {
		t.Fatalf("expected empty query, got %+v", query)
	}
}

func TestBuildJobQuery_Filters(t *testing.T) {
	min := 50000.0
	max := 150000.0
	query := buildJobQuery(ports.ListJobsFilter{
		ActiveOnly:      true,
		Company:         "acme",
		Location:        "berlin",
		RemoteOnly:      true,
		ExperienceLevel: "senior",
		EmploymentType:  "full-time",
		MinSalary:       &min,
		MaxSalary:       &max,
	})

	if query["is_active"] != true {
		t.Fatalf("active filter missing: %+v", query)
	}
	if query["remote_allowed"] != true {
		t.Fatalf("remote filter missing: %+v", query)
	}
	if query["experience_level"] != "senior" || query["employment_type"] != "full-time" {
		t.Fatalf("equality filters wrong: %+v", query)
	}

	company, ok := query["company"].(bson.M)
	if !ok || company["$regex"] != "acme" || company["$options"] != "i" {
		t.Fatalf("company should be a case-insensitive regex: %+v", query["company"])
	}

	salary, ok := query["salary_min"].(bson.M)
	if !ok || salary["$gte"] != min {
		t.Fatalf("salary_min bound wrong: %+v", query["salary_min"])
	}
	salary, ok = query["salary_max"].(bson.M)
	if !ok || salary["$lte"] != max {
		t.Fatalf("salary_max bound wrong: %+v", query["salary_max"])
	}
}

func TestBuildJobQuery_SkillsMatchRequiredOrPreferred(t *testing.T) {
	query := buildJobQuery(ports.ListJobsFilter{Skills: []string{"Go", "Redis"}})

	clauses, ok := query["$and"].([]bson.M)
	if !ok || len(clauses) != 2 {
		t.Fatalf("expected one $and clause per skill: %+v", query)
	}
	or, ok := clauses[0]["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("each skill must match required or preferred: %+v", clauses[0])
	}
	if or[0]["required_skills"] != "Go" || or[1]["preferred_skills"] != "Go" {
		t.Fatalf("unexpected skill clause: %+v", or)
	}
}

func TestBuildJobQuery_RegexIsEscaped(t *testing.T) {
	query := buildJobQuery(ports.ListJobsFilter{Company: "a.b(c)"})

	company := query["company"].(bson.M)
	if company["$regex"] != `a\.b\(c\)` {
		t.Fatalf("regex metacharacters not escaped: %v", company["$regex"])
	}
}

func TestBuildJobUpdate_OnlyNonNilFields(t *testing.T) {
	title := "Platform Engineer"
	active := false
	set := buildJobUpdate(ports.JobUpdate{Title: &title, IsActive: &active})

	if len(set) != 2 {
		t.Fatalf("expected 2 fields, got %+v", set)
	}
	if set["title"] != title || set["is_active"] != false {
		t.Fatalf("unexpected update doc: %+v", set)
	}
}

func TestBuildSkillQuery_SearchSpansNameAndDescription(t *testing.T) {
	query := buildSkillQuery(ports.ListSkillsFilter{Search: "cloud"})

	or, ok := query["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or over name and description: %+v", query)
	}
	name := or[0]["name"].(bson.M)
	if name["$regex"] != "cloud" || name["$options"] != "i" {
		t.Fatalf("name pattern wrong: %+v", name)
	}
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		order     string
		wantField string
		wantDir   int
	}{
		{"known field asc", "salary_min", "asc", "salary_min", 1},
		{"known field desc", "title", "desc", "title", -1},
		{"unknown field falls back", "password_hash", "desc", "created_at", -1},
		{"empty falls back", "", "asc", "created_at", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sort := buildSort(jobSortFields, tt.sortBy, "created_at", tt.order)
			if len(sort) != 1 {
				t.Fatalf("expected single sort key, got %+v", sort)
			}
			if sort[0].Key != tt.wantField || sort[0].Value != tt.wantDir {
				t.Fatalf("got %s/%v, want %s/%d", sort[0].Key, sort[0].Value, tt.wantField, tt.wantDir)
			}
		})
	}
}
