package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T002", "beta", nil))
	registry.Register(newStubRule("T001", "alpha", nil))

	rule, ok := registry.Get("T001")
	require.True(t, ok)
	assert.Equal(t, "alpha", rule.Name())

	rule, ok = registry.Get("beta")
	require.True(t, ok)
	assert.Equal(t, "T002", rule.ID())

	_, ok = registry.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistryGetByIDAndName(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", "alpha", nil))

	_, ok := registry.GetByID("T001")
	assert.True(t, ok)

	_, ok = registry.GetByID("alpha")
	assert.False(t, ok)

	_, ok = registry.GetByName("alpha")
	assert.True(t, ok)

	_, ok = registry.GetByName("T001")
	assert.False(t, ok)
}

func TestRegistryRulesSorted(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T003", "gamma", nil))
	registry.Register(newStubRule("T001", "alpha", nil))
	registry.Register(newStubRule("T002", "beta", nil))

	rules := registry.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "T001", rules[0].ID())
	assert.Equal(t, "T002", rules[1].ID())
	assert.Equal(t, "T003", rules[2].ID())

	assert.Equal(t, []string{"T001", "T002", "T003"}, registry.IDs())
}

func TestRegistryReplaceOnSameID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", "old", nil))
	registry.Register(newStubRule("T001", "new", nil))

	rule, ok := registry.Get("T001")
	require.True(t, ok)
	assert.Equal(t, "new", rule.Name())
	assert.Len(t, registry.Rules(), 1)
}
