package util

import (
	"Commons/internal/api/dto"
	"strings"
	"testing"
)

func TestValidateDTO(t *testing.T) {
	cases := []struct {
		name    string
		in      dto.PostListDTO
		wantErr string
	}{
		{name: "empty is fine", in: dto.PostListDTO{}},
		{name: "valid", in: dto.PostListDTO{Filter: "members", Limit: 100}},
		{name: "bad filter", in: dto.PostListDTO{Filter: "drafts"}, wantErr: "[filter]"},
		{name: "limit too big", in: dto.PostListDTO{Limit: 101}, wantErr: "max=100"},
		{name: "negative limit", in: dto.PostListDTO{Limit: -1}, wantErr: "[limit]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDTO(&tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
