package pipelinelib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goWordFreq/configlib"
	"goWordFreq/corpuslib"
	"goWordFreq/freqlib"
	"goWordFreq/seglib"
	"goWordFreq/stringlib"
)

type sheet struct {
	Name  string
	Table freqlib.Table
}

type memSink struct {
	sheets []sheet
	failOn string
}

func (m *memSink) AddSheet(name string, table freqlib.Table) error {
	if name == m.failOn {
		return errors.New("disk full")
	}
	m.sheets = append(m.sheets, sheet{name, table})
	return nil
}

func sentences(texts ...string) []corpuslib.Sentence {
	out := make([]corpuslib.Sentence, len(texts))
	for i, text := range texts {
		out[i] = corpuslib.Sentence{Year: "2023", Sheet: "1月", Text: text}
	}
	return out
}

func run(t *testing.T, settings *configlib.Settings, filter map[string]struct{}, texts ...string) []sheet {
	t.Helper()
	sink := &memSink{}
	p := New(settings, seglib.Whitespace{}, filter, nil, nil)
	_, err := p.Run(sentences(texts...), sink)
	require.NoError(t, err)
	return sink.sheets
}

func TestRunScenario(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 1, RelatedWords: []string{"上海"}}
	got := run(t, settings, nil, "我 爱 北京", "我 爱 上海")

	want := []sheet{
		{"ALL", freqlib.Table{{Word: "我", Count: 2}, {Word: "爱", Count: 2}, {Word: "北京", Count: 1}, {Word: "上海", Count: 1}}},
		{"top_我", freqlib.Table{{Word: "爱", Count: 2}, {Word: "北京", Count: 1}, {Word: "上海", Count: 1}}},
		{"select_上海", freqlib.Table{{Word: "我", Count: 1}, {Word: "爱", Count: 1}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFilterAppliesEverywhere(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 2, RelatedWords: []string{"北京"}}
	got := run(t, settings, map[string]struct{}{"我": {}}, "我 爱 北京", "我 爱 上海")

	require.Len(t, got, 4)
	assert.Equal(t, []string{"ALL", "top_爱", "top_北京", "select_北京"},
		[]string{got[0].Name, got[1].Name, got[2].Name, got[3].Name})
	for _, s := range got {
		for _, e := range s.Table {
			assert.NotEqual(t, "我", e.Word, "sheet %s", s.Name)
		}
	}
}

func TestRunTargetNeverInOwnSheet(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 3, RelatedWords: []string{"停电", "停电"}}
	got := run(t, settings, nil, "停电 停电 机房", "机房 正常", "停电 UPS 告警")

	require.Len(t, got, 6)
	for _, s := range got[1:] {
		word := strings.TrimPrefix(strings.TrimPrefix(s.Name, TopPrefix), SelectPrefix)
		for _, e := range s.Table {
			assert.NotEqual(t, word, e.Word, "sheet %s", s.Name)
		}
	}
}

func TestRunKeepsDuplicateSweepsByDefault(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 1, RelatedWords: []string{"我"}}
	got := run(t, settings, nil, "我 爱 北京", "我 爱 上海")

	require.Len(t, got, 3)
	assert.Equal(t, "top_我", got[1].Name)
	assert.Equal(t, "select_我", got[2].Name)
	assert.Equal(t, got[1].Table, got[2].Table)
}

func TestRunDedupeRelated(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 1, RelatedWords: []string{"我", "上海"}, DedupeRelated: true}
	got := run(t, settings, nil, "我 爱 北京", "我 爱 上海")

	require.Len(t, got, 3)
	assert.Equal(t, "top_我", got[1].Name)
	assert.Equal(t, "select_上海", got[2].Name)
}

func TestRunNormalizesWordsAndFilter(t *testing.T) {
	settings := &configlib.Settings{
		RelatedWords: []string{"UPS"},
		Normalize:    stringlib.Normalizer{Lowercase: true},
	}
	got := run(t, settings, map[string]struct{}{"ALARM": {}}, "UPS alarm 机房", "ups 正常")

	want := []sheet{
		{"ALL", freqlib.Table{{Word: "ups", Count: 2}, {Word: "机房", Count: 1}, {Word: "正常", Count: 1}}},
		{"select_ups", freqlib.Table{{Word: "机房", Count: 1}, {Word: "正常", Count: 1}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnSinkError(t *testing.T) {
	settings := &configlib.Settings{RelatedTop: 1}
	sink := &memSink{failOn: "top_我"}
	_, err := New(settings, seglib.Whitespace{}, nil, nil, nil).Run(sentences("我 爱 北京"), sink)
	assert.EqualError(t, err, "disk full")
	assert.Len(t, sink.sheets, 1)
}

func TestRunPreview(t *testing.T) {
	settings := &configlib.Settings{PreviewRows: 1}
	var buf bytes.Buffer
	all, err := New(settings, seglib.Whitespace{}, nil, nil, &buf).Run(sentences("机房 正常 机房"), &memSink{})
	require.NoError(t, err)
	assert.Equal(t, freqlib.Table{{Word: "机房", Count: 2}, {Word: "正常", Count: 1}}, all)
	assert.Contains(t, buf.String(), "机房")
	assert.NotContains(t, buf.String(), "正常")
}

func TestBuildSegmenter(t *testing.T) {
	seg, err := BuildSegmenter(&configlib.Settings{Segmenter: "whitespace", CacheTokens: true}, nil)
	require.NoError(t, err)
	assert.IsType(t, &seglib.Cached{}, seg)
	assert.Equal(t, []string{"a", "b"}, seg.Cut("a b"))

	seg, err = BuildSegmenter(&configlib.Settings{Segmenter: "lexicon"}, []seglib.Entry{{Word: "机房"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"机房", "正", "常"}, seg.Cut("机房正常"))

	_, err = BuildSegmenter(&configlib.Settings{Segmenter: "nope"}, nil)
	assert.Error(t, err)
}

func TestRunGseKeepsLatinCase(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the embedded dictionary")
	}
	settings := &configlib.Settings{Segmenter: "gse", HMM: true, RelatedWords: []string{"UPS"}}
	seg, err := BuildSegmenter(settings, nil)
	require.NoError(t, err)

	sink := &memSink{}
	p := New(settings, seg, map[string]struct{}{"UPS": {}}, nil, nil)
	_, err = p.Run(sentences("UPS告警", "机房UPS正常"), sink)
	require.NoError(t, err)

	rest := freqlib.Table{{Word: "告警", Count: 1}, {Word: "机房", Count: 1}, {Word: "正常", Count: 1}}
	want := []sheet{
		{"ALL", rest},
		{"select_UPS", rest},
	}
	if diff := cmp.Diff(want, sink.sheets); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
}
