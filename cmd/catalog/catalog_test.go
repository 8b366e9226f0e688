package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/utils"
)

func TestPrint(t *testing.T) {
	t.Parallel()
	c := di.NewContainer(&utils.HolidaysConfig{})

	var buf bytes.Buffer
	require.Nil(t, Print(context.Background(), &buf, c, "csv"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, "id,name,type,day,month,easter_offset_days", lines[0])
	assert.Equal(t, "1,Año nuevo,1,1,1,", lines[1])

	assert.NotNil(t, Print(context.Background(), &buf, c, "xml"))
}
