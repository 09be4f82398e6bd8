package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Kind(t *testing.T) {
	assert.Equal(t, "user", Document{Body: Body{"kind": "user"}}.Kind())
	assert.Equal(t, "", Document{Body: Body{"kind": 3}}.Kind())
	assert.Equal(t, "", Document{}.Kind())
}

func TestBody_Number(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"int", 1, 1, true},
		{"int64", int64(5), 5, true},
		{"float64", 2.5, 2.5, true},
		{"uint8", uint8(7), 7, true},
		{"string", "1", 0, false},
		{"missing", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Body{"n": tt.value}.Number("n")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBody_Strings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Body{"x": []string{"a", "b"}}.Strings("x"))
	assert.Equal(t, []string{"a", "c"}, Body{"x": []any{"a", 2, "c"}}.Strings("x"))
	assert.Nil(t, Body{"x": "a"}.Strings("x"))
}

func TestBody_CloneIsDeep(t *testing.T) {
	orig := Body{
		"name":   "t",
		"nested": map[string]any{"k": "v"},
		"list":   []any{"a", map[string]any{"k": 1}},
		"tags":   []string{"x"},
	}

	cp := orig.Clone()
	cp["name"] = "changed"
	cp["nested"].(map[string]any)["k"] = "changed"
	cp["list"].([]any)[1].(map[string]any)["k"] = 2
	cp["tags"].([]string)[0] = "y"

	assert.Equal(t, "t", orig["name"])
	assert.Equal(t, "v", orig["nested"].(map[string]any)["k"])
	assert.Equal(t, 1, orig["list"].([]any)[1].(map[string]any)["k"])
	assert.Equal(t, "x", orig["tags"].([]string)[0])
}

func TestBody_CloneNil(t *testing.T) {
	var b Body
	assert.Nil(t, b.Clone())
}

func TestDocument_Clone(t *testing.T) {
	now := time.Now()
	doc := Document{ID: "d", Created: now, Modified: now, Body: Body{"a": 1}}

	cp := doc.Clone()
	cp.Body["a"] = 2

	assert.Equal(t, "d", cp.ID)
	assert.Equal(t, 1, doc.Body["a"])
}

func TestUserFromDocument(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := Document{
		ID:       "u1",
		Created:  created,
		Modified: created,
		Body: Body{
			"kind":              "user",
			"email":             "t@x.com",
			"username":          "tyler",
			"verified":          true,
			"match_requirement": 1,
			"hobbies":           []any{"lol"},
		},
	}

	u := UserFromDocument(doc)

	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "t@x.com", u.Email)
	assert.Equal(t, "tyler", u.Username)
	assert.True(t, u.Verified)
	assert.Equal(t, 1.0, u.MatchRequirement)
	assert.Equal(t, []string{"lol"}, u.Hobbies)
	assert.Equal(t, created, u.Created)
}

func TestNormalizeViewName(t *testing.T) {
	assert.Equal(t, "users", NormalizeViewName("Users"))
	assert.Equal(t, "users", NormalizeViewName("USERS"))
	assert.Equal(t, "users", NormalizeViewName("users"))
}
