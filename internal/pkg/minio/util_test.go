package minio

import (
	"Commons/internal/api/config"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func TestResolveURLPublic(t *testing.T) {
	PublicBase = publicBase(config.MinIOConfig{ExternalEndpoint: "cdn.example.org", MainBucket: "media"})
	UsePublicLink = true
	t.Cleanup(func() { PublicBase, UsePublicLink = "", false })

	cases := map[string]string{
		"":                              "",
		"https://img.example.com/a.jpg": "https://img.example.com/a.jpg",
		"HTTP://legacy/b.png":           "HTTP://legacy/b.png",
		"posts/p1/c.jpg":                "https://cdn.example.org/media/posts/p1/c.jpg",
		"/posts/p1/d.jpg":               "https://cdn.example.org/media/posts/p1/d.jpg",
	}
	for in, want := range cases {
		got, err := ResolveURL(context.Background(), in)
		if err != nil {
			t.Fatalf("ResolveURL(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ResolveURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveURLPresigned(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Secure: false,
		Region: "us-east-1",
	})
	if err != nil {
		t.Fatal(err)
	}
	Client, MainBucket, UsePublicLink, PresignExpiry = client, "media", false, time.Minute
	t.Cleanup(func() { Client, MainBucket = nil, "" })

	got, err := ResolveURL(context.Background(), "posts/p1/v.mp4")
	if err != nil {
		t.Fatalf("ResolveURL error: %v", err)
	}
	if !strings.HasPrefix(got, "http://localhost:9000/media/posts/p1/v.mp4?") || !strings.Contains(got, "X-Amz-Signature=") {
		t.Errorf("unexpected presigned url %q", got)
	}
}

func TestPublicBaseInternal(t *testing.T) {
	got := publicBase(config.MinIOConfig{InternalEndpoint: "minio:9000", MainBucket: "media"})
	if got != "http://minio:9000/media" {
		t.Errorf("publicBase = %q", got)
	}
}
