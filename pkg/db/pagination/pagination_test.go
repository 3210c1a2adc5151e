package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClampsPage(t *testing.T) {
	p := Pagination{Page: 99}
	info := p.Resolve(45)

	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.Page)
	assert.Equal(t, DefaultPageSize, info.PageSize)
	assert.True(t, info.HasPrevious())
	assert.False(t, info.HasNext())
}

func TestResolveNegativePage(t *testing.T) {
	info := Pagination{Page: -4}.Resolve(10)

	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.False(t, info.HasPrevious())
}

func TestResolveEmptySet(t *testing.T) {
	info := Pagination{Page: 5}.Resolve(0)

	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
}
