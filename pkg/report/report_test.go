package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/breakeven/pkg/energy"
)

func satellite(t *testing.T) energy.Analysis {
	t.Helper()
	s := energy.DefaultScenario()
	s.CorpusSize, s.CompressionFactor, s.Bandwidth = 75, 9.375, 1
	a, err := energy.Analyze(s)
	require.NoError(t, err)
	return a
}

// fastLink has no break-even: compressing costs more than sending raw.
func fastLink(t *testing.T) energy.Analysis {
	t.Helper()
	s := energy.DefaultScenario()
	s.CorpusSize, s.CompressionFactor, s.Bandwidth = 75, 9.375, 1000
	a, err := energy.Analyze(s)
	require.NoError(t, err)
	return a
}

func fieldText(t *testing.T, r *Report, section, key string) string {
	t.Helper()
	s, ok := r.Section(section)
	require.True(t, ok, "section %s", section)
	f, ok := s.Field(key)
	require.True(t, ok, "field %s.%s", section, key)
	return f.Text()
}

func TestNew_SectionsAndPrecision(t *testing.T) {
	r := New(satellite(t))

	require.Len(t, r.Sections, 4)
	assert.Equal(t, SectionScenario, r.Sections[0].Key)
	assert.Equal(t, SectionCompressed, r.Sections[1].Key)
	assert.Equal(t, SectionUncompressed, r.Sections[2].Key)
	assert.Equal(t, SectionEconomics, r.Sections[3].Key)

	assert.Equal(t, "75 GB", fieldText(t, r, SectionScenario, "corpus_size_gb"))
	assert.Equal(t, "9.375:1", fieldText(t, r, SectionScenario, "compression_factor"))
	assert.Equal(t, "1 Mbps", fieldText(t, r, SectionScenario, "bandwidth_mbps"))
	assert.Equal(t, "0.5 W", fieldText(t, r, SectionScenario, "compress_power_w"))
	assert.Equal(t, "36 hours", fieldText(t, r, SectionScenario, "compress_time_hrs"))

	assert.Equal(t, "18.0 Wh", fieldText(t, r, SectionCompressed, "compression_energy_wh"))
	assert.Equal(t, "88.9 Wh", fieldText(t, r, SectionCompressed, "transmission_energy_wh"))
	assert.Equal(t, "106.9 Wh", fieldText(t, r, SectionCompressed, "total_energy_wh"))
	assert.Equal(t, "17.78 hours", fieldText(t, r, SectionCompressed, "transmission_time_hrs"))

	assert.Equal(t, "833.3 Wh", fieldText(t, r, SectionUncompressed, "total_energy_wh"))
	assert.Equal(t, "1.022:1", fieldText(t, r, SectionEconomics, "break_even_cf"))
	assert.Equal(t, "9.17x", fieldText(t, r, SectionEconomics, "safety_margin"))
	assert.Equal(t, "726.4 Wh", fieldText(t, r, SectionEconomics, "energy_saved_wh"))
	assert.Equal(t, "87.2%", fieldText(t, r, SectionEconomics, "energy_saved_pct"))
	assert.Equal(t, "40.4x", fieldText(t, r, SectionEconomics, "energy_roi"))
}

func TestNew_UncompressedHasNoCompressionLine(t *testing.T) {
	r := New(satellite(t))
	s, ok := r.Section(SectionUncompressed)
	require.True(t, ok)

	_, found := s.Field("compression_energy_wh")
	assert.False(t, found)
	assert.Len(t, s.Fields, 2)
}

func TestNew_InfiniteBreakEven(t *testing.T) {
	r := New(fastLink(t))

	assert.Equal(t, "inf:1", fieldText(t, r, SectionEconomics, "break_even_cf"))
	assert.Equal(t, "0.00x", fieldText(t, r, SectionEconomics, "safety_margin"))
	assert.False(t, r.Verdict.Positive)
}

func TestJudge_Tiers(t *testing.T) {
	cases := []struct {
		name     string
		cf, be   float64
		roi      float64
		positive bool
		tier     Tier
		levels   []Level
	}{
		{"justified", 9.375, 1.022, 40.4, true, TierJustified, []Level{LevelOK, LevelOK}},
		{"justified at threshold", 3, 1.5, 36, true, TierJustified, []Level{LevelOK, LevelOK}},
		{"moderate", 3, 1.5, 35.99, true, TierModerate, []Level{LevelOK, LevelWarn}},
		{"moderate at threshold", 3, 1.5, 20, true, TierModerate, []Level{LevelOK, LevelWarn}},
		{"low", 3, 1.5, 19.9, true, TierLow, []Level{LevelOK, LevelWarn}},
		{"equal to break-even is negative", 1.5, 1.5, 50, false, TierNone, []Level{LevelFail, LevelFail}},
		{"below break-even", 1.2, 1.5, -3, false, TierNone, []Level{LevelFail, LevelFail}},
		{"no break-even", 100, math.Inf(1), -1, false, TierNone, []Level{LevelFail, LevelFail}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Judge(tc.cf, tc.be, tc.roi)
			assert.Equal(t, tc.positive, v.Positive)
			assert.Equal(t, tc.tier, v.Tier)

			levels := make([]Level, len(v.Lines))
			for i, l := range v.Lines {
				levels[i] = l.Level
			}
			assert.Equal(t, tc.levels, levels)
		})
	}
}

func TestJudge_Wording(t *testing.T) {
	v := Judge(9.375, 1.0220787, 40.36)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, "Compression is energy-positive with 9.17x safety margin", v.Lines[0].Text)
	assert.Contains(t, v.Lines[1].Text, "multi-layer complexity justified")

	v = Judge(1.01, 1.5, 0)
	assert.Equal(t, "Need CF >= 1.500:1 to break even", v.Lines[1].Text)

	v = Judge(5, math.Inf(1), 0)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, "No compression factor can recover the compression cost", v.Lines[1].Text)
	assert.NotContains(t, v.Lines[1].Text, "inf")
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).Write(New(satellite(t))))

	out := buf.String()
	for _, want := range []string{
		Title,
		"Scenario Parameters:",
		"Energy Breakdown (with compression):",
		"Energy (no compression, CF=1.0):",
		"Energy Economics:",
		"Interpretation:",
		"106.9 Wh",
		"1.022:1",
		"every 1 Wh spent saves 40.4 Wh",
		"[+] Compression is energy-positive",
	} {
		assert.Contains(t, out, want)
	}

	// sections appear in order
	assert.Less(t, strings.Index(out, "Scenario Parameters"), strings.Index(out, "Energy Economics"))
	t.Log(out)
}

func TestTextWriter_Deterministic(t *testing.T) {
	r := New(satellite(t))
	var a, b bytes.Buffer
	require.NoError(t, NewTextWriter(&a).Write(r))
	require.NoError(t, NewTextWriter(&b).Write(New(satellite(t))))
	assert.Equal(t, a.String(), b.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).Write(New(satellite(t))))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, Title, doc.Title)
	assert.InDelta(t, 106.888888, doc.WithCompression.TotalWh, 1e-5)
	assert.InDelta(t, 833.333333, doc.WithoutCompression.TotalWh, 1e-5)
	require.NotNil(t, doc.Economics.BreakEvenCF)
	assert.InDelta(t, 1.02208, *doc.Economics.BreakEvenCF, 1e-5)
	assert.True(t, doc.Economics.BreakEvenExists)
	assert.Equal(t, TierJustified, doc.Verdict.Tier)
}

func TestJSONWriter_InfiniteBreakEvenIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).Write(New(fastLink(t))))

	assert.Contains(t, buf.String(), `"break_even_cf": null`)
	assert.Contains(t, buf.String(), `"break_even_exists": false`)
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLWriter(&buf).Write(New(satellite(t))))

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, Title, m["title"])

	econ, ok := m["economics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, econ["break_even_exists"])
	assert.InDelta(t, 1.02208, econ["break_even_cf"], 1e-5)
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownWriter(&buf).Write(New(satellite(t))))

	out := buf.String()
	assert.Contains(t, out, "# "+Title)
	assert.Contains(t, out, "## Energy Economics")
	assert.Contains(t, out, "106.9 Wh")
	assert.Contains(t, out, "```mermaid")
	assert.Contains(t, out, `"Compression" : 18.000000`)
	assert.Contains(t, out, "> [!TIP]")
}

func TestMarkdownWriter_NegativeVerdictUsesCaution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownWriter(&buf).Write(New(fastLink(t))))

	assert.Contains(t, buf.String(), "> [!CAUTION]")
	assert.NotContains(t, buf.String(), "> [!TIP]")
}

func TestHTMLWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHTMLWriter(&buf).Write(New(fastLink(t))))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<h2>Energy Economics</h2>")
	assert.Contains(t, out, "inf:1")
	assert.Contains(t, out, `class="fail"`)
	assert.Contains(t, out, "No compression factor can recover the compression cost")

	buf.Reset()
	require.NoError(t, NewHTMLWriter(&buf).Write(New(satellite(t))))
	assert.Contains(t, buf.String(), "ROI 40.4x &gt;= 36x: multi-layer complexity justified")
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"text": FormatText, "TXT": FormatText, "json": FormatJSON,
		"yaml": FormatYAML, "yml": FormatYAML, " md ": FormatMarkdown,
		"markdown": FormatMarkdown, "html": FormatHTML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_FlagValue(t *testing.T) {
	f := FormatText
	require.NoError(t, f.Set("json"))
	assert.Equal(t, "json", f.String())
	assert.Equal(t, "format", f.Type())
	assert.ErrorIs(t, f.Set("xml"), ErrUnknownFormat)
	assert.Equal(t, FormatJSON, f, "failed Set leaves the value unchanged")
}

func TestNewWriter(t *testing.T) {
	for _, f := range Formats {
		w, err := NewWriter(f, &bytes.Buffer{})
		require.NoError(t, err, f)
		require.NotNil(t, w)
	}
	_, err := NewWriter(Format("bogus"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
