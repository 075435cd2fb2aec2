package santa_test

import (
	"testing"

	"github.com/katalvlaran/secretsanta/matrix"
	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at reads m[g][r] by name.
func at(t *testing.T, reg *registry.Registry, m *matrix.Dense, g, r string) float64 {
	t.Helper()
	gi, err := reg.Lookup(g)
	require.NoError(t, err)
	ri, err := reg.Lookup(r)
	require.NoError(t, err)
	v, err := m.At(gi, ri)
	require.NoError(t, err)
	return v
}

func TestHistoryWeight(t *testing.T) {
	cases := []struct {
		depth int
		g     float64
		want  float64
	}{
		{0, 3, 0},
		{1, 3, 1.0 / 9},
		{2, 3, 4.0 / 9},
		{3, 3, 1},
		{7, 3, 1},
		{0, 0, 1},
		{0, -2, 1},
		{1, 2, 0.25},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, santa.HistoryWeight(tc.depth, tc.g), 1e-12,
			"depth=%d grandfather=%v", tc.depth, tc.g)
	}
}

func TestBuildMatrix_Baseline(t *testing.T) {
	reg := twoCouples(t)

	m, err := mustDraw(t, reg, santa.Rules{PartnerToPartner: true}, nil).BuildMatrix()
	require.NoError(t, err)
	for _, g := range reg.Names() {
		for _, r := range reg.Names() {
			want := 1.0
			if g == r {
				want = 0
			}
			require.Equal(t, want, at(t, reg, m, g, r), "%s→%s", g, r)
		}
	}

	m, err = mustDraw(t, reg, noStructure, nil).BuildMatrix()
	require.NoError(t, err)
	assert.Zero(t, at(t, reg, m, "A", "B"))
	assert.Zero(t, at(t, reg, m, "B", "A"))
	assert.Zero(t, at(t, reg, m, "C", "D"))
	assert.Zero(t, at(t, reg, m, "D", "C"))
	assert.Equal(t, 1.0, at(t, reg, m, "A", "C"))
}

func TestBuildMatrix_History(t *testing.T) {
	reg := mustRegistry(t,
		registry.Entry{Name: "A", History: []string{"B", "", "C", "B"}},
		registry.Entry{Name: "B"},
		registry.Entry{Name: "C"},
		registry.Entry{Name: "D", History: []string{"", "A"}},
	)
	rules := santa.Rules{WeightHistory: true, GrandfatherPeriod: 4}

	m, err := mustDraw(t, reg, rules, nil).BuildMatrix()
	require.NoError(t, err)

	// Depth 0 and depth 3 both name B; the minimum (depth 0) wins.
	assert.Zero(t, at(t, reg, m, "A", "B"))
	// Depth 2: (2/4)² after the unknown year at depth 1.
	assert.InDelta(t, 0.25, at(t, reg, m, "A", "C"), 1e-12)
	assert.Equal(t, 1.0, at(t, reg, m, "A", "D"))
	// Depth 1: (1/4)².
	assert.InDelta(t, 1.0/16, at(t, reg, m, "D", "A"), 1e-12)

	// Without WeightHistory the history is ignored.
	rules.WeightHistory = false
	m, err = mustDraw(t, reg, rules, nil).BuildMatrix()
	require.NoError(t, err)
	assert.Equal(t, 1.0, at(t, reg, m, "A", "B"))
}

func TestBuildMatrix_CoupleHistory(t *testing.T) {
	reg := mustRegistry(t,
		registry.Entry{Name: "A", Partner: "B", History: []string{"C"}},
		registry.Entry{Name: "B", Partner: "A"},
		registry.Entry{Name: "C", Partner: "D"},
		registry.Entry{Name: "D", Partner: "C"},
		registry.Entry{Name: "E", History: []string{"", "A"}},
	)

	rules := santa.Rules{WeightHistory: true, GrandfatherPeriod: 2, PartnerToPartner: true}
	m, err := mustDraw(t, reg, rules, nil).BuildMatrix()
	require.NoError(t, err)
	assert.Zero(t, at(t, reg, m, "A", "C"))
	assert.Equal(t, 1.0, at(t, reg, m, "B", "C"))
	assert.Equal(t, 1.0, at(t, reg, m, "A", "D"))
	assert.Equal(t, 1.0, at(t, reg, m, "B", "D"))

	rules.WeightCoupleHistory = true
	m, err = mustDraw(t, reg, rules, nil).BuildMatrix()
	require.NoError(t, err)
	assert.Zero(t, at(t, reg, m, "A", "C"))
	assert.Zero(t, at(t, reg, m, "B", "C"), "giver's partner → receiver")
	assert.Zero(t, at(t, reg, m, "A", "D"), "giver → receiver's partner")
	assert.Zero(t, at(t, reg, m, "B", "D"), "giver's partner → receiver's partner")
	// E is single; A's partner B inherits the depth-1 weight.
	assert.InDelta(t, 0.25, at(t, reg, m, "E", "A"), 1e-12)
	assert.InDelta(t, 0.25, at(t, reg, m, "E", "B"), 1e-12)
	assert.Equal(t, 1.0, at(t, reg, m, "E", "C"))

	// Couple history alone does nothing.
	rules.WeightHistory = false
	m, err = mustDraw(t, reg, rules, nil).BuildMatrix()
	require.NoError(t, err)
	assert.Equal(t, 1.0, at(t, reg, m, "B", "D"))
}

func TestWeightHistory_Idempotent(t *testing.T) {
	reg := family(t)
	d := mustDraw(t, reg, santa.StrictRules(), nil)

	once, err := d.BuildMatrix()
	require.NoError(t, err)
	twice := once.CloneDense()
	require.NoError(t, santa.WeightHistory(twice, reg, d.Rules()))

	require.True(t, once.Equal(twice), "once:\n%v\ntwice:\n%v", once, twice)
}

func TestWeightHistory_EmptyHistoryIsNoop(t *testing.T) {
	reg := twoCouples(t)

	base, err := mustDraw(t, reg, noStructure, nil).BuildMatrix()
	require.NoError(t, err)

	weighted, err := mustDraw(t, reg, santa.Rules{WeightHistory: true, WeightCoupleHistory: true, GrandfatherPeriod: 3}, nil).BuildMatrix()
	require.NoError(t, err)

	require.True(t, base.Equal(weighted))
}

func TestWeightHistory_NilMatrix(t *testing.T) {
	err := santa.WeightHistory(nil, twoCouples(t), santa.StrictRules())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBuildMatrix_Rigging(t *testing.T) {
	reg := twoCouples(t)

	m, err := mustDraw(t, reg, noStructure, santa.Rigging{"A": "C"}).BuildMatrix()
	require.NoError(t, err)
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1, 0}, row)

	// Rigging overrides partner exclusion.
	m, err = mustDraw(t, reg, noStructure, santa.Rigging{"A": "B"}).BuildMatrix()
	require.NoError(t, err)
	row, err = m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 0}, row)

	// Unrigged rows are untouched.
	assert.Equal(t, 1.0, at(t, reg, m, "B", "C"))
}

func TestBuildMatrix_FreshPerCall(t *testing.T) {
	d := mustDraw(t, twoCouples(t), relaxed, nil)

	m1, err := d.BuildMatrix()
	require.NoError(t, err)
	require.NoError(t, m1.Fill(0))

	m2, err := d.BuildMatrix()
	require.NoError(t, err)
	s, err := m2.RowSum(0)
	require.NoError(t, err)
	require.Equal(t, 2.0, s)
}
