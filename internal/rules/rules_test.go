package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/lawbook/pkg/shared/config"
)

func TestDefaultMatch(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		wantRule       string
		wantCategory   Category
		wantMatch      string
		wantSuggestion string
	}{
		{"light weight", `<p className="font-light">`, "TYPO-001", Typography, "font-light", "font-normal"},
		{"thin weight", `"font-thin"`, "TYPO-001", Typography, "font-thin", "font-normal"},
		{"bold weight", `"font-bold"`, "TYPO-002", Typography, "font-bold", "font-semibold"},
		{"medium weight", `"font-medium"`, "TYPO-002", Typography, "font-medium", "font-semibold"},
		{"extra small size", `"text-xs"`, "TYPO-003", Typography, "text-xs", "text-sm"},
		{"extra large size", `"text-xl"`, "TYPO-003", Typography, "text-xl", "text-lg"},
		{"huge size", `"text-5xl"`, "TYPO-003", Typography, "text-5xl", "text-2xl"},
		{"arbitrary px size", `"text-[17px]"`, "TYPO-004", Typography, "text-[17px]", "text-base"},
		{"arbitrary rem size", `"text-[1.4rem]"`, "TYPO-004", Typography, "text-[1.4rem]", "text-2xl"},
		{"off-grid padding", `<div className="p-[25px]">`, "SPACE-001", Spacing, "p-[25px]", "p-6"},
		{"off-grid negative margin", `"-mt-[13px]"`, "SPACE-001", Spacing, "-mt-[13px]", "-mt-3"},
		{"off-grid gap", `"gap-x-[10px]"`, "SPACE-001", Spacing, "gap-x-[10px]", "gap-x-3"},
		{"off-grid huge value", `"p-[99999999999999999999px]"`, "SPACE-001", Spacing, "p-[99999999999999999999px]", "p-25000000000000000000"},
		{"off-grid rem", `"px-[0.3rem]"`, "SPACE-001", Spacing, "px-[0.3rem]", "px-1"},
		{"half step padding", `"p-1.5"`, "SPACE-002", Spacing, "p-1.5", "p-2"},
		{"half step space", `"space-y-0.5"`, "SPACE-002", Spacing, "space-y-0.5", "space-y-1"},
		{"palette background", `<div className="bg-gray-500">`, "COLOR-001", Color, "bg-gray-500", "bg-muted"},
		{"palette light background", `"bg-slate-50"`, "COLOR-001", Color, "bg-slate-50", "bg-background"},
		{"palette text", `"text-gray-400"`, "COLOR-001", Color, "text-gray-400", "text-muted-foreground"},
		{"palette dark text", `"text-zinc-900"`, "COLOR-001", Color, "text-zinc-900", "text-foreground"},
		{"palette border", `"border-gray-200"`, "COLOR-001", Color, "border-gray-200", "border-border"},
		{"palette red", `"bg-red-600"`, "COLOR-001", Color, "bg-red-600", "bg-destructive"},
		{"palette blue", `"text-blue-500"`, "COLOR-001", Color, "text-blue-500", "text-primary"},
		{"hex literal", `"bg-[#ff0000]"`, "COLOR-002", Color, "bg-[#ff0000]", "bg-primary"},
		{"rgb literal", `"text-[rgb(0,0,0)]"`, "COLOR-002", Color, "text-[rgb(0,0,0)]", "text-primary"},
		{"white background", `"bg-white"`, "COLOR-003", Color, "bg-white", "bg-background"},
		{"black text", `"text-black"`, "COLOR-003", Color, "text-black", "text-foreground"},
		{"variant prefix", `"hover:bg-gray-500"`, "COLOR-001", Color, "bg-gray-500", "bg-muted"},
		{"opacity modifier", `"bg-gray-500/50"`, "COLOR-001", Color, "bg-gray-500", "bg-muted"},
	}

	table := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := table.Match(tt.line)
			require.Len(t, findings, 1)
			f := findings[0]
			assert.Equal(t, tt.wantRule, f.Rule.ID)
			assert.Equal(t, tt.wantCategory, f.Rule.Category)
			assert.Equal(t, tt.wantMatch, f.Match)
			assert.Equal(t, tt.wantSuggestion, f.Suggestion)
		})
	}
}

func TestDefaultCompliantClasses(t *testing.T) {
	lines := []string{
		`<div className="p-4 m-2 gap-6 font-normal font-semibold text-sm text-base text-lg text-2xl">`,
		`<div className="p-[24px] -mt-[8px] px-[1.5rem]">`,
		`<div className="bg-primary text-muted-foreground border-border bg-background">`,
		`<div className="font-lightest text-gray-5000 bg-gray-500x">`,
		`const myfont-light = 1`,
		`<div className="p-10 m-0 space-x-4">`,
	}

	table := Default()
	for _, line := range lines {
		assert.Empty(t, table.Match(line), line)
	}
}

func TestMatchOrdersByColumn(t *testing.T) {
	findings := Default().Match(`"bg-gray-500 font-light p-[25px]"`)
	require.Len(t, findings, 3)
	assert.Equal(t, "COLOR-001", findings[0].Rule.ID)
	assert.Equal(t, 2, findings[0].Column)
	assert.Equal(t, "TYPO-001", findings[1].Rule.ID)
	assert.Equal(t, 14, findings[1].Column)
	assert.Equal(t, "SPACE-001", findings[2].Rule.ID)
	assert.Equal(t, 25, findings[2].Column)
}

func TestMatchRepeatedClass(t *testing.T) {
	findings := Default().Match(`font-light font-light`)
	require.Len(t, findings, 2)
	assert.Equal(t, 1, findings[0].Column)
	assert.Equal(t, 12, findings[1].Column)
}

func TestApply(t *testing.T) {
	custom := MustCompile("BRAND-001", Color, `bg-legacy-\w+`, "Legacy brand color", "bg-primary")

	table, err := Default().Apply([]string{"TYPO-003"}, []string{"bg-gray-500"}, []*Rule{custom})
	require.NoError(t, err)

	_, ok := table.Get("TYPO-003")
	assert.False(t, ok)
	assert.True(t, table.Allowed("bg-gray-500"))
	assert.Equal(t, Default().Len(), table.Len())

	assert.Empty(t, table.Match(`"text-xs bg-gray-500"`))
	findings := table.Match(`"bg-legacy-blue"`)
	require.Len(t, findings, 1)
	assert.Equal(t, "BRAND-001", findings[0].Rule.ID)
	assert.Equal(t, "bg-primary", findings[0].Suggestion)

	// the source table is untouched
	assert.Len(t, Default().Match(`"text-xs"`), 1)
}

func TestApplyErrors(t *testing.T) {
	_, err := Default().Apply([]string{"NOPE-1"}, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownRule)

	dup := MustCompile("TYPO-001", Typography, `font-x`, "dup", "font-normal")
	_, err = Default().Apply(nil, nil, []*Rule{dup})
	assert.EqualError(t, err, `custom rule "TYPO-001" conflicts with an existing rule`)
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Rules: config.Rules{
		Disable: []string{"COLOR-003"},
		Custom: []config.CustomRule{
			{ID: "BRAND-001", Category: "Color", Pattern: `text-brand-old`, Message: "Old brand text", Fix: "text-primary"},
		},
	}}

	table, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Empty(t, table.Match(`bg-white`))

	findings := table.Match(`text-brand-old`)
	require.Len(t, findings, 1)
	assert.Equal(t, Color, findings[0].Rule.Category)

	cfg.Rules.Custom[0].Category = "motion"
	_, err = FromConfig(cfg)
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCategory("motion")
	assert.EqualError(t, err, `unknown category "motion"`)
}
