package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeMaps_NestedObjectsMergeKeyByKey(t *testing.T) {
	dst := map[string]any{
		"name": "Ada",
		"settings": map[string]any{
			"notifications": map[string]any{"email": true, "sms": true},
			"portal":        map[string]any{"theme": "dark"},
		},
	}
	mergeMaps(dst, map[string]any{
		"settings": map[string]any{
			"notifications": map[string]any{"sms": false},
		},
	})

	settings := dst["settings"].(map[string]any)
	notifications := settings["notifications"].(map[string]any)
	assert.Equal(t, true, notifications["email"], "untouched sibling key must survive")
	assert.Equal(t, false, notifications["sms"])
	assert.Equal(t, "dark", settings["portal"].(map[string]any)["theme"], "untouched sub-object must survive")
	assert.Equal(t, "Ada", dst["name"])
}

func TestPatchRecord_MergesUserSettings(t *testing.T) {
	u := &User{
		ID:    "u1",
		Name:  "Ada",
		Email: "ada@example.com",
		Settings: &UserSettings{
			Notifications: &NotificationSettings{Email: true, SMS: true},
			Portal:        &PortalSettings{Theme: "dark", Language: "en"},
		},
	}

	merged, err := patchRecord(u, Patch{
		"settings": map[string]any{
			"notifications": map[string]any{"sms": false},
		},
	})
	assert.NoError(t, err)
	assert.True(t, merged.Settings.Notifications.Email)
	assert.False(t, merged.Settings.Notifications.SMS)
	assert.Equal(t, "dark", merged.Settings.Portal.Theme)
	assert.Equal(t, "en", merged.Settings.Portal.Language)
}

func TestMergeByID_DeduplicatesAcrossLists(t *testing.T) {
	a := &Document{ID: "a"}
	b := &Document{ID: "b"}
	both := &Document{ID: "c"}

	merged := mergeByID(func(d *Document) string { return d.ID },
		[]*Document{a, both},
		[]*Document{b, both},
	)

	assert.Len(t, merged, 3)
	ids := map[string]int{}
	for _, d := range merged {
		ids[d.ID]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, ids)
}

func TestMergeByID_EmptyInputs(t *testing.T) {
	merged := mergeByID(func(m *Message) string { return m.ID })
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestSortByTime(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)
	msgs := []*Message{
		{ID: "m2", CreatedAt: t2},
		{ID: "m3", CreatedAt: t3},
		{ID: "m1", CreatedAt: t1},
	}

	sortByTime(msgs, func(m *Message) time.Time { return m.CreatedAt }, false)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{msgs[0].ID, msgs[1].ID, msgs[2].ID})

	sortByTime(msgs, func(m *Message) time.Time { return m.CreatedAt }, true)
	assert.Equal(t, []string{"m3", "m2", "m1"}, []string{msgs[0].ID, msgs[1].ID, msgs[2].ID})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", normalizeEmail("  Ada@Example.COM "))
}
