package helper_util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Stored timestamps are compared lexicographically in Cypher, so the string
// order must follow the instant order even when the inputs carry different
// UTC offsets.
func TestFormatTime_OrdersByInstantAcrossOffsets(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	pdt := time.FixedZone("PDT", -7*3600)

	earlier := time.Date(2026, 3, 8, 7, 30, 0, 0, ist)
	later := earlier.Add(30 * time.Minute).In(pdt)

	assert.True(t, later.After(earlier))
	assert.True(t, FormatTime(earlier) < FormatTime(later))
}

func TestFormatTime_AlwaysUTC(t *testing.T) {
	local := time.Date(2026, 8, 30, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	formatted := FormatTime(local)

	assert.True(t, strings.HasSuffix(formatted, "Z"), formatted)
	assert.Equal(t, "2026-08-30T10:00:00Z", formatted)
}

func TestParseNullableTime_EmptyString(t *testing.T) {
	parsed, err := ParseNullableTime("")

	assert.NoError(t, err)
	assert.Nil(t, parsed)
}
