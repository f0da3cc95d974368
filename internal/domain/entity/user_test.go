package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_HasRole(t *testing.T) {
	p := Principal{UserID: 7, Roles: []Role{RoleUser, RoleEditor}}

	assert.True(t, p.HasRole(RoleUser))
	assert.True(t, p.HasRole(RoleEditor))
	assert.False(t, p.HasRole(RoleAdmin))
	assert.True(t, p.Authenticated())
	assert.False(t, Principal{}.Authenticated())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "Admin", want: RoleAdmin},
		{in: "editor", want: RoleEditor},
		{in: " USER ", want: RoleUser},
		{in: "root", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipal_Owns(t *testing.T) {
	owner := int64(3)
	zero := int64(0)

	assert.True(t, Principal{UserID: 3}.Owns(&owner))
	assert.False(t, Principal{UserID: 4}.Owns(&owner))
	assert.False(t, Principal{UserID: 3}.Owns(nil))
	// 匿名は所有者 0 のリソースも所有しない
	assert.False(t, Principal{}.Owns(&zero))
}

func TestParseSentimentLabel(t *testing.T) {
	tests := map[string]SentimentLabel{
		"positive":  SentimentPositive,
		" Negative": SentimentNegative,
		"NEUTRAL":   SentimentNeutral,
		"mixed":     SentimentNeutral,
		"":          SentimentNeutral,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSentimentLabel(in), "input %q", in)
	}
}
