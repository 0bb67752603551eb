package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pithnub/leather-digital-twin/pkg/fatliquor"
)

const sampleSheet = `
substrate:
  thickness_mm: 1.6
  neutralization_ph: 5.7
  chrome_offer_pct: 4.5
recipe:
  oils:
    - name: "Sulphited Fish Oil"
      offer_pct: 6
    - name: "Raw/Neutral Oil (Neatsfoot)"
      offer_pct: 2
  syntan_offer_pct: 5
  nsa_offer_pct: 0.5
  veg: "Mimosa"
  veg_offer_pct: 4
  waterproof: true
drum:
  diameter_m: 3
  rpm: 12
  load_kg: 1000
  duration_min: 90
  furniture: "pegs"
thermal:
  fatliquor_c: 55
  retan_c: 35
  vacuum_plate_c: 60
process:
  pickle: "chaser"
  drying: "partial vacuum"
  climate: "tropical"
`

func TestParse_FullSheet(t *testing.T) {
	in, err := Parse([]byte(sampleSheet))
	require.NoError(t, err)

	assert.Equal(t, 1.6, in.ThicknessMM)
	assert.Equal(t, 5.7, in.NeutralizationPH)
	require.Len(t, in.Oils, 2)
	assert.Equal(t, fatliquor.OilDose{Name: "Sulphited Fish Oil", OfferPct: 6}, in.Oils[0])
	assert.Equal(t, "Mimosa", in.VegName)
	assert.True(t, in.Waterproof)
	assert.Equal(t, fatliquor.FurniturePegs, in.Furniture)
	assert.Equal(t, fatliquor.PickleChaser, in.Pickle)
	assert.Equal(t, fatliquor.PartialVacuum, in.Drying)
	assert.Equal(t, fatliquor.Tropical, in.Climate)
	assert.Equal(t, 90.0, in.DurationMin)

	// The loaded sheet computes end to end.
	res, err := fatliquor.New(nil, nil).Compute(in)
	require.NoError(t, err)
	assert.Greater(t, res.Penetration, 0.0)
}

func TestParse_DefaultsAndOmissions(t *testing.T) {
	minimal := `
substrate:
  thickness_mm: 2.0
  neutralization_ph: 5.0
recipe:
  oils:
    - name: "Phosphoric Ester"
      offer_pct: 8
drum:
  diameter_m: 2.5
  rpm: 10
  load_kg: 800
`
	in, err := Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, fatliquor.FurnitureNone, in.Furniture)
	assert.Equal(t, fatliquor.PickleEquilibrium, in.Pickle)
	assert.Equal(t, fatliquor.AirDrying, in.Drying)
	assert.Equal(t, fatliquor.Temperate, in.Climate)
	assert.Zero(t, in.DrumWidthM, "width stays unset and derives in the engine")
}

func TestParse_Failures(t *testing.T) {
	_, err := Parse([]byte("substrate: {neutralization_ph: 5.0}"))
	require.ErrorIs(t, err, ErrNoSubstrate)

	_, err = Parse([]byte("substrate: {thickness_mm: 2}\ndrum: {rpm: 10}"))
	require.ErrorIs(t, err, ErrNoDrum)

	bad := `
substrate: {thickness_mm: 2}
drum: {diameter_m: 3, rpm: 10, furniture: "spikes"}
`
	_, err = Parse([]byte(bad))
	require.Error(t, err)

	_, err = Parse([]byte("substrate: ["))
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSheet), 0o644))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, in.DrumDiameterM)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
