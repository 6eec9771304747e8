package dispatch

import (
	"testing"

	"aeon_dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTopicsBuildsSectionTree(t *testing.T) {
	rows := []model.InfoTopic{
		{Section: "rules", Subcategory: "general", Name: "conduct"},
		{Section: "rules", Subcategory: "general", Name: "spam"},
		{Section: "rules", Subcategory: "voice", Name: "music"},
		{Section: "faq", Subcategory: "", Name: "invites"},
	}

	groups := groupTopics(rows)
	require.Len(t, groups, 2)

	assert.Equal(t, "rules", groups[0].Section)
	require.Len(t, groups[0].Subcategories, 2)
	assert.Equal(t, "general", groups[0].Subcategories[0].Subcategory)
	assert.Len(t, groups[0].Subcategories[0].Topics, 2)
	assert.Equal(t, "voice", groups[0].Subcategories[1].Subcategory)

	assert.Equal(t, "faq", groups[1].Section)
	require.Len(t, groups[1].Subcategories, 1)
	assert.Len(t, groups[1].Subcategories[0].Topics, 1)
}

func TestGroupTopicsEmpty(t *testing.T) {
	assert.Empty(t, groupTopics(nil))
}
