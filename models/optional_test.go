package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalStates(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantState OptionalState
		wantValue string
	}{
		{name: "absent key stays unset", body: `{}`, wantState: Unset},
		{name: "explicit null", body: `{"text": null}`, wantState: Null},
		{name: "value", body: `{"text": "A"}`, wantState: Value, wantValue: "A"},
		{name: "empty string is a value", body: `{"text": ""}`, wantState: Value, wantValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var update MessageUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &update))

			assert.Equal(t, tt.wantState, update.Text.State())
			got, ok := update.Text.Get()
			assert.Equal(t, tt.wantState == Value, ok)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestOptional_InvalidValue(t *testing.T) {
	var update MessageUpdate
	err := json.Unmarshal([]byte(`{"is_transient": "yes"}`), &update)
	assert.Error(t, err)
}

func TestOptional_Ptr(t *testing.T) {
	assert.Nil(t, NullOf[string]().Ptr())
	assert.Nil(t, Optional[string]{}.Ptr())

	p := Some("x").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3), B: NullOf[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}

func TestTimedelta_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", body: `3600`, want: time.Hour},
		{name: "fractional seconds", body: `1.5`, want: 1500 * time.Millisecond},
		{name: "duration string", body: `"1h30m"`, want: 90 * time.Minute},
		{name: "bad string", body: `"soon"`, wantErr: true},
		{name: "bool", body: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Timedelta
			err := json.Unmarshal([]byte(tt.body), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration())
		})
	}
}

func TestUserFlags_Has(t *testing.T) {
	assert.True(t, FlagAdmin.Has(FlagCreateUser))
	assert.True(t, FlagCreateUser.Has(FlagCreateUser))
	assert.False(t, FlagNone.Has(FlagCreateUser))
	assert.True(t, (FlagCreateUser | 1<<5).Has(FlagCreateUser))

	assert.True(t, FlagAdmin.HasAny(1<<7))
	assert.True(t, UserFlags(1<<3).HasAny(FlagCreateUser, 1<<3))
	assert.False(t, UserFlags(1<<3).HasAny(FlagCreateUser))
}

func TestMessageResponse_WithPaths(t *testing.T) {
	id := uuid.MustParse("0190f1a2-0000-7000-8000-000000000001")
	resp := Message{ID: id}.ToResponse()
	resp.Files = append(resp.Files, File{FileName: "a b.txt", MessageID: id}.ToResponse())

	resp.WithPaths("https://files.example/")

	assert.Equal(t, "https://files.example/users/@me/messages/"+id.String(), resp.Link)
	assert.Equal(t, "https://files.example/messages/"+id.String(), resp.PublicLink)
	assert.Equal(t, "https://files.example/messages/"+id.String()+"/files/a%20b.txt", resp.Files[0].PublicLink)
}

func TestMessageLink_IsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	future := now.Add(time.Minute)

	assert.False(t, MessageLink{}.IsExpired(now))
	assert.True(t, MessageLink{ExpiresAt: &past}.IsExpired(now))
	assert.True(t, MessageLink{ExpiresAt: &now}.IsExpired(now))
	assert.False(t, MessageLink{ExpiresAt: &future}.IsExpired(now))
}
