package postcodec

import (
	"Commons/internal/model"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDecodePostRequiresCaptionAndCreatedTime(t *testing.T) {
	full := bson.M{
		"nonprofit":       bson.M{"$ref": "nonprofits", "$id": "org1"},
		"image_url":       "i",
		"is_members_only": true,
		"num_likes":       int32(3),
	}
	cases := []struct {
		name string
		doc  bson.M
	}{
		{"no caption", bson.M{"created_time": primitive.NewDateTimeFromTime(created)}},
		{"blank caption", bson.M{"caption": "  ", "created_time": primitive.NewDateTimeFromTime(created)}},
		{"caption not string", bson.M{"caption": 12, "created_time": primitive.NewDateTimeFromTime(created)}},
		{"no created_time", bson.M{"caption": "hi"}},
		{"bad created_time", bson.M{"caption": "hi", "created_time": "yesterday"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range full {
				tc.doc[k] = v
			}
			if p := DecodePost("p1", tc.doc); p != nil {
				t.Errorf("expected invalid, got %+v", p)
			}
		})
	}
	if DecodePost("p1", nil) != nil {
		t.Error("nil doc should decode to nil")
	}
}

// 场景 A
func TestDecodePostReferenceWithVideo(t *testing.T) {
	doc := bson.M{
		"caption":      "Hi",
		"created_time": primitive.NewDateTimeFromTime(created),
		"nonprofit":    bson.M{"$ref": "nonprofits", "$id": "org1"},
		"media": bson.A{
			bson.M{"media_type": "video", "video_url": "v", "image_url": "thumb", "order": int32(0)},
		},
	}
	p := DecodePost("p1", doc)
	if p == nil {
		t.Fatal("expected post")
	}
	if p.OrgID() != "org1" {
		t.Errorf("organization = %q, want org1", p.OrgID())
	}
	if p.MediaType != model.MediaTypeVideo {
		t.Errorf("media type = %q, want VIDEO", p.MediaType)
	}
	if len(p.MediaItems) != 1 || p.MediaItems[0].URL != "v" {
		t.Fatalf("media items = %+v", p.MediaItems)
	}
	if th := p.MediaItems[0].ThumbnailURL; th == nil || *th != "thumb" {
		t.Errorf("thumbnail = %v, want thumb", th)
	}
	if !p.CreatedAt.Equal(created) {
		t.Errorf("created = %v", p.CreatedAt)
	}
}

// 场景 B
func TestDecodePostBareIDNoMedia(t *testing.T) {
	doc := bson.M{
		"caption":      "Hello",
		"created_time": created,
		"nonprofit":    "org1",
	}
	p := DecodePost("p2", doc)
	if p == nil {
		t.Fatal("expected post")
	}
	if p.OrgID() != "org1" {
		t.Errorf("organization = %q, want org1", p.OrgID())
	}
	if p.MediaItems == nil || len(p.MediaItems) != 0 {
		t.Errorf("media items = %+v, want empty", p.MediaItems)
	}
	if p.MediaType != model.MediaTypeUndefined {
		t.Errorf("media type = %q, want undefined", p.MediaType)
	}
}

func TestDecodePostDefaults(t *testing.T) {
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"caption":      "c",
		"created_time": created.Format(time.RFC3339),
		"num_likes":    int64(-4),
		"num_comments": 2.0,
		"author":       "users/u1",
		"community":    "communities/c1",
	}
	p := DecodePost("", doc)
	if p == nil {
		t.Fatal("expected post")
	}
	if p.ID != doc["_id"].(primitive.ObjectID).Hex() {
		t.Errorf("id = %q", p.ID)
	}
	if p.NumLikes != 0 || p.NumComments != 2 {
		t.Errorf("counters = %d/%d", p.NumLikes, p.NumComments)
	}
	if p.AuthorUserID == nil || *p.AuthorUserID != "u1" {
		t.Errorf("author = %v", p.AuthorUserID)
	}
	if p.CommunityID == nil || *p.CommunityID != "c1" {
		t.Errorf("community = %v", p.CommunityID)
	}
	if p.OrganizationID != nil {
		t.Errorf("community path must not resolve the organization, got %q", *p.OrganizationID)
	}
	if p.IsMembersOnly || p.IsForBroaderEcosystem || p.BackgroundColorHex != nil {
		t.Errorf("unexpected flags %+v", p)
	}
}

func TestResolveOrganizationOrder(t *testing.T) {
	longPrefix := "abcdefghijklmnopqrst"
	cases := []struct {
		name     string
		docID    string
		doc      bson.M
		want     string
		strategy string
	}{
		{"primary beats others", longPrefix + "_x", bson.M{"nonprofit": "nonprofits/a", "nonprofit_id": "b", "community": "c"}, "a", "primary"},
		{"flat id", "p", bson.M{"nonprofit_id": "b", "community": "c"}, "b", "flat_id"},
		{"empty path segment skipped", "p", bson.M{"nonprofit": "nonprofits/", "nonprofit_id": "b"}, "b", "flat_id"},
		{"community bare id", "p", bson.M{"community": "c"}, "c", "community_bare"},
		{"community path ignored", longPrefix + "_x", bson.M{"community": "communities/c"}, longPrefix, "doc_id_prefix"},
		{"doc id prefix", longPrefix + "_1700000000", bson.M{}, longPrefix, "doc_id_prefix"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, strategy, ok := ResolveOrganization(tc.docID, tc.doc)
			if !ok || got != tc.want || strategy != tc.strategy {
				t.Errorf("got (%q, %q, %v), want (%q, %q)", got, strategy, ok, tc.want, tc.strategy)
			}
		})
	}

	for _, id := range []string{"short_suffix", "abcdefghijklmno_x", "noDelimiterAtAllHereOk"} {
		if got, _, ok := ResolveOrganization(id, bson.M{}); ok {
			t.Errorf("doc id %q resolved to %q", id, got)
		}
	}
}

func TestDecodePostEmptyPathSegment(t *testing.T) {
	p := DecodePost("p1", bson.M{
		"caption":      "hi",
		"created_time": primitive.NewDateTimeFromTime(created),
		"nonprofit":    "nonprofits/",
		"author":       "users//",
		"community":    "/communities/",
	})
	if p == nil {
		t.Fatal("expected valid post")
	}
	if p.OrganizationID != nil || p.AuthorUserID != nil || p.CommunityID != nil {
		t.Errorf("empty trailing segment resolved: org=%v author=%v community=%v", p.OrganizationID, p.AuthorUserID, p.CommunityID)
	}
}
