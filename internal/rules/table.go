package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	spacingUtilities = `(?:p|m)[xytrblse]?|gap(?:-[xy])?|space-[xy]`
	colorUtilities   = `bg|text|border(?:-[xytrblse])?|ring-offset|ring|outline|divide|fill|stroke|from|via|to|placeholder|decoration|accent|caret|shadow`
	paletteHues      = `slate|gray|zinc|neutral|stone|red|orange|amber|yellow|lime|green|emerald|teal|cyan|sky|blue|indigo|violet|purple|fuchsia|pink|rose`
)

// fontSizes are the only sizes of the type scale, in pixels.
var fontSizes = []struct {
	class string
	px    float64
}{
	{"text-sm", 14},
	{"text-base", 16},
	{"text-lg", 18},
	{"text-2xl", 24},
}

// Default returns the built-in law book.
func Default() *Table {
	return NewTable(
		MustCompile("TYPO-001", Typography,
			`font-(?:thin|extralight|light)`,
			"Font weight is lighter than regular; only font-normal and font-semibold are allowed",
			"font-normal"),
		MustCompile("TYPO-002", Typography,
			`font-(?:medium|bold|extrabold|black)`,
			"Font weight is heavier than regular; only font-normal and font-semibold are allowed",
			"font-semibold"),
		MustCompile("TYPO-003", Typography,
			`text-(xs|xl|[3-9]xl)`,
			"Font size is off the type scale (text-sm, text-base, text-lg, text-2xl)",
			"nearest of text-sm, text-base, text-lg, text-2xl").
			withCheck(checkScaleFontSize),
		MustCompile("TYPO-004", Typography,
			`text-\[(\d+(?:\.\d+)?)(px|rem)\]`,
			"Arbitrary font size; use the type scale",
			"nearest of text-sm, text-base, text-lg, text-2xl").
			withCheck(checkArbitraryFontSize),
		MustCompile("SPACE-001", Spacing,
			`-?(`+spacingUtilities+`)-\[(\d+(?:\.\d+)?)(px|rem)\]`,
			"Spacing value is not on the 8-point grid (multiples of 4px)",
			"nearest grid class, e.g. p-[25px] -> p-6").
			withCheck(checkArbitrarySpacing),
		MustCompile("SPACE-002", Spacing,
			`-?(`+spacingUtilities+`)-(\d+)\.5`,
			"Half-step spacing is not on the 8-point grid (multiples of 4px)",
			"next whole step, e.g. p-1.5 -> p-2").
			withCheck(checkHalfStepSpacing),
		MustCompile("COLOR-001", Color,
			`(`+colorUtilities+`)-(`+paletteHues+`)-([1-9]00|950|50)`,
			"Hardcoded palette color; use a semantic token",
			"semantic token, e.g. bg-gray-500 -> bg-muted").
			withCheck(checkPaletteColor),
		MustCompile("COLOR-002", Color,
			`(`+colorUtilities+`)-\[(?:#[0-9a-fA-F]{3,8}|(?:rgba?|hsla?)\([^\]\s]*\))\]`,
			"Hardcoded color literal; use a semantic token",
			"semantic token, e.g. bg-[#ff0000] -> bg-primary").
			withCheck(checkColorLiteral),
		MustCompile("COLOR-003", Color,
			`(`+colorUtilities+`)-(black|white)`,
			"Raw black or white; use a semantic token",
			"semantic token, e.g. bg-white -> bg-background").
			withCheck(checkBlackWhite),
	)
}

func checkScaleFontSize(groups []string) (string, bool) {
	switch groups[1] {
	case "xs":
		return "text-sm", true
	case "xl":
		return "text-lg", true
	default:
		return "text-2xl", true
	}
}

func checkArbitraryFontSize(groups []string) (string, bool) {
	px, ok := toPixels(groups[1], groups[2])
	if !ok {
		return "text-base", true
	}
	best := fontSizes[0]
	for _, size := range fontSizes[1:] {
		if math.Abs(size.px-px) < math.Abs(best.px-px) {
			best = size
		}
	}
	return best.class, true
}

func checkArbitrarySpacing(groups []string) (string, bool) {
	px, ok := toPixels(groups[2], groups[3])
	if !ok {
		return "", false
	}
	// above 2^53 pixel values are no longer exact, so they never count as on the grid
	if px < 1<<53 && px == math.Trunc(px) && math.Mod(px, 4) == 0 {
		return "", false
	}
	step := strconv.FormatFloat(math.Round(px/4), 'f', -1, 64)
	return spacingClass(groups[0], groups[1], step), true
}

func checkHalfStepSpacing(groups []string) (string, bool) {
	n, err := strconv.Atoi(groups[2])
	if err != nil {
		return "", false
	}
	return spacingClass(groups[0], groups[1], strconv.Itoa(n+1)), true
}

func spacingClass(class, utility, step string) string {
	sign := ""
	if strings.HasPrefix(class, "-") && step != "0" {
		sign = "-"
	}
	return fmt.Sprintf("%s%s-%s", sign, utility, step)
}

func toPixels(value, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	if unit == "rem" {
		v *= 16
	}
	return v, true
}

func checkPaletteColor(groups []string) (string, bool) {
	shade, _ := strconv.Atoi(groups[3])
	return semanticToken(groups[1], groups[2], shade), true
}

func checkColorLiteral(groups []string) (string, bool) {
	return semanticToken(groups[1], "", 0), true
}

func checkBlackWhite(groups []string) (string, bool) {
	utility := groups[1]
	switch {
	case utility == "bg" && groups[2] == "white":
		return "bg-background", true
	case utility == "bg":
		return "bg-foreground", true
	case utility == "text" && groups[2] == "white":
		return "text-primary-foreground", true
	case utility == "text":
		return "text-foreground", true
	}
	return semanticToken(utility, "gray", 500), true
}

// semanticToken picks the design token replacing a color utility.
// Neutral hues map to surface tokens, red hues to destructive and every other hue to primary.
func semanticToken(utility, hue string, shade int) string {
	switch hue {
	case "slate", "gray", "zinc", "neutral", "stone":
		switch {
		case utility == "bg" && shade <= 100:
			return "bg-background"
		case utility == "bg":
			return "bg-muted"
		case utility == "text" && shade >= 700:
			return "text-foreground"
		case utility == "text":
			return "text-muted-foreground"
		case strings.HasPrefix(utility, "border"), utility == "divide":
			return utility + "-border"
		case strings.HasPrefix(utility, "ring"), utility == "outline":
			return utility + "-ring"
		default:
			return utility + "-muted"
		}
	case "red", "rose":
		return utility + "-destructive"
	default:
		return utility + "-primary"
	}
}
