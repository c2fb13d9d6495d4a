package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Nome *string `json:"nome"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    *string
	}{
		{name: "valid", body: `{"nome":"Maria"}`, want: strPtr("Maria")},
		{name: "unknown fields ignored", body: `{"nome":"Maria","extra":1}`, want: strPtr("Maria")},
		{name: "explicit null", body: `{"nome":null}`},
		{name: "empty body", body: "", wantErr: true},
		{name: "malformed", body: `{"nome":`, wantErr: true},
		{name: "wrong type", body: `{"nome":42}`, wantErr: true},
		{name: "trailing value", body: `{"nome":"a"} {"nome":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Nome)
		})
	}
}

func TestDecodeJSONEmptyBody(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	var v map[string]any
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)
}

func TestContextValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(ctx, 0))
	assert.False(t, ok, "non-positive ids are rejected")

	id, ok := UserIDFromContext(WithUserID(ctx, 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	assert.Empty(t, GetTraceID(ctx))
	assert.Equal(t, "req-1", GetTraceID(SetTraceID(ctx, "req-1")))

	generated := GetTraceID(SetTraceID(ctx, ""))
	assert.Len(t, generated, 36)
	assert.NotEqual(t, generated, GetTraceID(SetTraceID(ctx, "")))
}

func strPtr(s string) *string { return &s }
