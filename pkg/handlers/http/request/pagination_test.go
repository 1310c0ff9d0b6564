package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagination(t *testing.T) {
	t.Run("no parameters selects everything", func(t *testing.T) {
		page, err := ExtractPagination("", "")
		require.NoError(t, err)
		assert.Nil(t, page.Limit)
		assert.Equal(t, 0, page.Offset)
	})

	t.Run("start and end", func(t *testing.T) {
		page, err := ExtractPagination("10", "25")
		require.NoError(t, err)
		require.NotNil(t, page.Limit)
		assert.Equal(t, 15, *page.Limit)
		assert.Equal(t, 10, page.Offset)
	})

	t.Run("equal bounds give an empty window", func(t *testing.T) {
		page, err := ExtractPagination("3", "3")
		require.NoError(t, err)
		require.NotNil(t, page.Limit)
		assert.Equal(t, 0, *page.Limit)
	})

	tests := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{name: "only start", start: "1", want: ErrMissingParameter},
		{name: "only end", end: "10", want: ErrMissingParameter},
		{name: "end before start", start: "10", end: "2", want: ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPagination(tt.start, tt.end)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unparseable bound", func(t *testing.T) {
		_, err := ExtractPagination("one", "10")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start")
	})

	t.Run("negative bound", func(t *testing.T) {
		_, err := ExtractPagination("0", "-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end")
	})
}
