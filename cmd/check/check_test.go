package check

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/utils"
)

func TestPrint(t *testing.T) {
	t.Parallel()
	c := di.NewContainer(&utils.HolidaysConfig{})

	var buf bytes.Buffer
	err := Print(context.Background(), &buf, c, "text", []calendar.Date{
		{Year: 2025, Month: time.January, Day: 1},
		{Year: 2025, Month: time.January, Day: 2},
	})
	require.Nil(t, err)
	assert.Equal(t, "2025-01-01: Año nuevo\n2025-01-02: not a holiday\n", buf.String())
}
