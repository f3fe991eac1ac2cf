package service

import (
	"Commons/internal/pkg/consts"
	"Commons/internal/pkg/mongo"
	"Commons/internal/repository"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeIndexDocs struct {
	names []string
	err   error
}

func (f *fakeIndexDocs) Find(context.Context, mongo.FieldQuery) ([]bson.M, error) { return nil, nil }
func (f *fakeIndexDocs) FindRecent(context.Context, int) ([]bson.M, error)        { return nil, nil }
func (f *fakeIndexDocs) FindByID(context.Context, string) (bson.M, error)         { return nil, nil }
func (f *fakeIndexDocs) ListIndexNames(context.Context) ([]string, error)         { return f.names, f.err }

func newRedisStats(t *testing.T) (repository.QueryStatsRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return repository.NewQueryStatsRepo(rdb), mr
}

func TestProbeIndexesAndReadStats(t *testing.T) {
	statsRepo, mr := newRedisStats(t)
	docs := &fakeIndexDocs{names: []string{"_id_", mongo.IndexNonprofitRef, mongo.IndexNonprofit, mongo.IndexCreated}}
	svc := NewPostStatsService(docs, statsRepo)
	ctx := context.Background()

	report, err := svc.ProbeIndexes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(report.Missing) != fmt.Sprint([]string{mongo.IndexCommunityCreated}) {
		t.Fatalf("missing = %v", report.Missing)
	}
	if !mr.Exists(consts.PostIndexMissingKey) {
		t.Fatal("missing index set not written")
	}

	if err = statsRepo.Incr(ctx, consts.StatFallbackScan); err != nil {
		t.Fatal(err)
	}
	stats, err := svc.GetQueryStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Counters[consts.StatFallbackScan] != 1 {
		t.Fatalf("counters = %v", stats.Counters)
	}
	if len(stats.MissingIndexes) != 1 || stats.ProbedAt == nil {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestProbeIndexesAllPresentClearsReport(t *testing.T) {
	statsRepo, _ := newRedisStats(t)
	ctx := context.Background()
	svc := NewPostStatsService(&fakeIndexDocs{names: []string{mongo.IndexNonprofit}}, statsRepo)
	if _, err := svc.ProbeIndexes(ctx); err != nil {
		t.Fatal(err)
	}

	svc = NewPostStatsService(&fakeIndexDocs{names: mongo.RequiredIndexes}, statsRepo)
	report, err := svc.ProbeIndexes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Missing) != 0 {
		t.Fatalf("missing = %v", report.Missing)
	}
	stats, err := svc.GetQueryStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.MissingIndexes) != 0 {
		t.Fatalf("stale missing indexes: %v", stats.MissingIndexes)
	}
}

func TestGetQueryStatsBeforeProbe(t *testing.T) {
	statsRepo, _ := newRedisStats(t)
	stats, err := NewPostStatsService(&fakeIndexDocs{}, statsRepo).GetQueryStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.ProbedAt != nil || len(stats.Counters) != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestProbeIndexesListError(t *testing.T) {
	statsRepo, _ := newRedisStats(t)
	_, err := NewPostStatsService(&fakeIndexDocs{err: errors.New("unauthorized")}, statsRepo).ProbeIndexes(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
