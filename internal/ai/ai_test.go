package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type shape struct {
		BusinessType string `json:"businessType"`
	}

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `{"businessType": "pottery"}`,
			want: "pottery",
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"businessType\": \"textiles\"}\n```",
			want: "textiles",
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"businessType\": \"jewelry\"}\n```",
			want: "jewelry",
		},
		{
			name:    "prose instead of json",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "truncated json",
			raw:     `{"businessType": "pott`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got shape
			err := DecodeJSON(tt.raw, &got)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.BusinessType)
		})
	}
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	u := Unavailable{}

	_, err := u.Transcribe(ctx, []byte("audio"))
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = u.Generate(ctx, "prompt", GenerateOptions{})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = u.LabelImage(ctx, []byte("image"))
	assert.ErrorIs(t, err, ErrUnavailable)
}
