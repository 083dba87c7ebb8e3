package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarzaki/boqplan/internal/domain"
)

const sampleYAML = `
breakdowns:
  - boq_code: ROOF-001
    description: Roof screed to falls
    total_quantity: 400
    unit: m2
    category: roofing
    sub_activities:
      - code: RF-PREP
        name: Surface preparation
        unit: m2
        rate_per_day: 150
        rate_unit: m2/day
        crew: {skilled: 2, helpers: 2, supervisor: true}
        type: normal
      - code: RF-SCREED
        name: Screed laying to falls
        unit: m2
        rate_per_day: 100
        rate_unit: m2/day
        crew: {skilled: 3, helpers: 2, equipment: mixer, supervisor: true}
        type: precise
        additional_buffer: 2
        links:
          - {type: SS, predecessor: RF-PREP, lag_days: 1}
      - code: RF-FINAL
        name: Final inspection
        unit: LS
        rate_per_day: 1
        rate_unit: LS/day
        crew: {skilled: 1, supervisor: true}
        type: precise
        links:
          - {type: FS, predecessor: RF-SCREED, lag_days: 2}
rules:
  - {category: roofing, unit: m2, factor: 1.0}
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	b, err := c.Get("ROOF-001")
	require.NoError(t, err)
	assert.Equal(t, "roofing", b.Category)
	require.Len(t, b.SubActivities, 3)

	screed := b.Sub("RF-SCREED")
	require.NotNil(t, screed)
	assert.Equal(t, domain.ActivityPrecise, screed.Type)
	assert.Equal(t, 2.0, screed.AdditionalBuffer)
	require.Len(t, screed.Links, 1)
	assert.Equal(t, domain.LogicSS, screed.Links[0].Type)
	assert.Equal(t, 1.0, screed.Links[0].LagDays)

	// File rules merge over the embedded defaults.
	q, err := c.Rules().Resolve(b, screed)
	require.NoError(t, err)
	assert.Equal(t, 400.0, q)
}

func TestParse_InvalidStructureRejected(t *testing.T) {
	bad := `
breakdowns:
  - boq_code: BAD-001
    total_quantity: 100
    unit: m2
    category: roofing
    sub_activities:
      - code: X
        unit: m2
        rate_per_day: 0
        links:
          - {type: FS, predecessor: MISSING}
`
	_, err := Parse([]byte(bad))
	require.ErrorIs(t, err, domain.ErrCatalogueInvalid)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("breakdowns: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalogue file")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, c.ListCodes(), "ROOF-001")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
