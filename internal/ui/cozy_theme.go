package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CozyTheme defines a warm theme for the UI with compact padding and font sizes
type CozyTheme struct{}

// NewCozyTheme creates a new cozy theme
func NewCozyTheme() fyne.Theme {
	return &CozyTheme{}
}

// Color returns theme colors
func (t *CozyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for warnings
	case theme.ColorNamePrimary:
		return color.RGBA{R: 107, G: 142, B: 35, A: 255} // Olive green for primary actions
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 92, G: 76, B: 56, A: 255} // Muted brown
		}
		return color.RGBA{R: 139, G: 115, B: 85, A: 255} // Warm brown
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 22, A: 255} // Warm near-black
		}
		return color.RGBA{R: 245, G: 245, B: 240, A: 255} // Warm off-white
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 240, B: 235, A: 255} // Off-white text
		}
		return color.RGBA{R: 47, G: 47, B: 47, A: 255} // Dark gray text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CozyTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CozyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CozyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
