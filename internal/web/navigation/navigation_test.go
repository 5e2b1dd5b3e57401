package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTabMarksActive(t *testing.T) {
	nav := NewContext("Panou Administrare", "gallery").
		AddTab("Servicii", "services").
		AddTab("Galerie", "gallery")

	assert.Equal(t, "Panou Administrare", nav.PageTitle)
	assert.Len(t, nav.Tabs, 2)
	assert.False(t, nav.Tabs[0].Active)
	assert.True(t, nav.Tabs[1].Active)
}

func TestIsActive(t *testing.T) {
	nav := NewContext("Panou Administrare", "settings")

	assert.True(t, nav.IsActive("settings"))
	assert.False(t, nav.IsActive("services"))
}
