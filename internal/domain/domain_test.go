package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Foire Agroalimentaire de Dakar 2026", "foire-agroalimentaire-de-dakar-2026"},
		{"Forum PME", "forum-pme"},
		{"  Salon -- International  ", "salon-international"},
		{"Conférence", "conf-rence"},
		{"2026", "2026"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(0, 1))
	assert.True(t, CanApprove(9, 10))
	assert.False(t, CanApprove(10, 10))
	assert.False(t, CanApprove(11, 10))
	assert.False(t, CanApprove(0, 0))
}

func TestFormationCategory_Valid(t *testing.T) {
	for _, c := range FormationCategories {
		assert.True(t, c.Valid())
	}
	assert.False(t, FormationCategory("couture").Valid())
}

func TestEventType_Valid(t *testing.T) {
	assert.True(t, EventTypeSeminar.Valid())
	assert.True(t, EventTypeNetworking.Valid())
	assert.False(t, EventType("concert").Valid())
}

func TestViewer_IsAdmin_NilSafe(t *testing.T) {
	var v *Viewer
	assert.False(t, v.IsAdmin())
	assert.False(t, (&Viewer{Role: RoleMember}).IsAdmin())
	assert.True(t, (&Viewer{Role: RoleAdmin}).IsAdmin())
}
