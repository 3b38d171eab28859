package stringlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("33"))
	assert.True(t, IsNumeric("3.5"))
	assert.False(t, IsNumeric("hello world"))
	assert.False(t, IsNumeric("三"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t　"))
	assert.False(t, IsBlank(" 值班 "))
}

func TestIsLatin(t *testing.T) {
	assert.True(t, IsLatin("servers"))
	assert.True(t, IsLatin("CPU-2"))
	assert.False(t, IsLatin("服务器"))
	assert.False(t, IsLatin("12"))
	assert.False(t, IsLatin("café"))
}

func TestFoldWidth(t *testing.T) {
	assert.Equal(t, "CPU12", FoldWidth("ＣＰＵ１２"))
	assert.Equal(t, "值班", FoldWidth("值班"))
}

func TestStemLatin(t *testing.T) {
	assert.Equal(t, "server", StemLatin("servers"))
	assert.Equal(t, "交接", StemLatin("交接"))
}

func TestZeroNormalizerIsIdentity(t *testing.T) {
	var n Normalizer
	assert.False(t, n.Enabled())
	tokens := []string{"ＣＰＵ", " ", "12", "Servers"}
	assert.Equal(t, []string{"ＣＰＵ", " ", "12", "Servers"}, n.Apply(tokens))
}

func TestNormalizerApply(t *testing.T) {
	n := Normalizer{FoldWidth: true, Lowercase: true, Stem: true, SkipNumeric: true}
	got := n.Apply([]string{"ＣＰＵ", "１２", "Servers", "告警"})
	assert.Equal(t, []string{"cpu", "server", "告警"}, got)
}

func TestNormalizerWordKeepsDroppedWords(t *testing.T) {
	n := Normalizer{SkipNumeric: true, Lowercase: true}
	assert.Equal(t, "110", n.Word("110"))
	assert.Equal(t, "ups", n.Word("UPS"))
}
