package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_Tagging(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, QuestionCount)
	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Text)
	}

	assert.Equal(t, []int{0, 3, 4, 8, 10, 12, 14}, PositionsOf(QuestionDirect))
	assert.Equal(t, []int{1, 2, 5, 6, 7, 9, 11, 13, 15}, PositionsOf(QuestionIndirect))
	assert.Equal(t, 35, MaxScore(QuestionDirect))
	assert.Equal(t, 45, MaxScore(QuestionIndirect))
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Text = "changed"
	q, ok := QuestionAt(0)
	require.True(t, ok)
	assert.NotEqual(t, "changed", q.Text)

	_, ok = QuestionAt(QuestionCount)
	assert.False(t, ok)
	_, ok = QuestionAt(-1)
	assert.False(t, ok)
}

func TestLanguageGroups_Table(t *testing.T) {
	gs := LanguageGroups()
	require.Len(t, gs, 15)
	assert.Equal(t, "Indo-European (Germanic)", gs[0].Name)
	assert.Equal(t, "Niger-Congo", gs[14].Name)

	for _, g := range gs {
		assert.NotEmpty(t, g.Countries, g.Name)
		switch g.Style {
		case GroupDirect:
			assert.Zero(t, g.IndirectWeight, g.Name)
		case GroupIndirect:
			assert.Zero(t, g.DirectWeight, g.Name)
		case GroupMixed:
			assert.InDelta(t, 1.0, g.DirectWeight+g.IndirectWeight, 1e-9, g.Name)
		default:
			t.Fatalf("unexpected style %q for %s", g.Style, g.Name)
		}
	}

	gs[0].Countries[0] = "XX"
	assert.NotEqual(t, "XX", LanguageGroups()[0].Countries[0])
}

func TestLanguageGroup_BaseScore(t *testing.T) {
	slavic := LanguageGroups()[2]
	assert.InDelta(t, 60.0, slavic.BaseScore(100, 20), 1e-9)
	germanic := LanguageGroups()[0]
	assert.InDelta(t, 95.0, germanic.BaseScore(100, 20), 1e-9)
}

func TestLanguageGroups_Coefficients(t *testing.T) {
	want := []struct {
		name     string
		direct   float64
		indirect float64
		style    GroupStyle
	}{
		{"Indo-European (Germanic)", 0.95, 0, GroupDirect},
		{"Indo-European (Romance)", 0.6, 0.4, GroupMixed},
		{"Indo-European (Slavic)", 0.5, 0.5, GroupMixed},
		{"Sino-Tibetan", 0, 0.98, GroupIndirect},
		{"Japanese", 0, 1.0, GroupIndirect},
		{"Korean", 0, 0.96, GroupIndirect},
		{"Afro-Asiatic (Semitic)", 0, 0.92, GroupIndirect},
		{"Turkic", 0, 0.9, GroupIndirect},
		{"Dravidian", 0, 0.88, GroupIndirect},
		{"Austronesian", 0, 0.85, GroupIndirect},
		{"Finno-Ugric", 0.65, 0.35, GroupMixed},
		{"Indo-Iranian (Persian)", 0, 0.87, GroupIndirect},
		{"Indo-European (Indic)", 0.4, 0.6, GroupMixed},
		{"Austroasiatic", 0, 0.89, GroupIndirect},
		{"Niger-Congo", 0.45, 0.55, GroupMixed},
	}

	gs := LanguageGroups()
	require.Len(t, gs, len(want))
	for i, w := range want {
		g := gs[i]
		assert.Equal(t, w.name, g.Name, "row %d", i)
		assert.Equal(t, w.direct, g.DirectWeight, w.name)
		assert.Equal(t, w.indirect, g.IndirectWeight, w.name)
		assert.Equal(t, w.style, g.Style, w.name)
	}
}
