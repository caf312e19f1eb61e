package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItems(t *testing.T) {
	assert.Equal(t, []int64{}, normalizeItems(nil))
	assert.Equal(t, []int64{}, normalizeItems([]int64{}))

	// order and duplicates are preserved
	assert.Equal(t, []int64{3, 1, 1, 2}, normalizeItems([]int64{3, 1, 1, 2}))
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "customer:7", customerCacheKey(7))
	assert.Equal(t, "item:42", itemCacheKey(42))
	assert.Equal(t, "order:1", orderCacheKey(1))
}

func TestCacheGetDisabled(t *testing.T) {
	var dest struct{}
	assert.False(t, cacheGet(nil, nil, "customer", "customer:1", &dest))
}
