package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItems_FixedOrder(t *testing.T) {
	items := Items()

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"latte", "macchiato", "cold-brew", "frappuccino", "spring-latte"}, ids)
}

func TestItems_StableAcrossCalls(t *testing.T) {
	assert.Equal(t, Items(), Items())
}

func TestItems_Fields(t *testing.T) {
	for _, item := range Items() {
		assert.NotEmpty(t, item.Name, "item %s", item.ID)
		assert.NotEmpty(t, item.Description, "item %s", item.ID)
		assert.NotEmpty(t, item.ImageURL, "item %s", item.ID)
		assert.GreaterOrEqual(t, item.Price, 0.0, "item %s", item.ID)
	}
}
