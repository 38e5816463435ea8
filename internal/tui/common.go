package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color output of the CLI
var (
	// ColorGreen for match counts and success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for facet values and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for warnings and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorOrange for the cursor
	ColorOrange = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8700"}

	// ColorTeal for borders and dividers
	ColorTeal      = lipgloss.AdaptiveColor{Light: "#008787", Dark: "#00AFAF"}
	ColorTealLight = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#5FD7D7"}
	ColorTealDim   = lipgloss.AdaptiveColor{Light: "#D7FFFF", Dark: "#005F5F"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for the row under the cursor and labels
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleCount is for result counts
	StyleCount = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleFacet is for active facet values
	StyleFacet = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	// StyleCurrentPage marks the active entry in the page-number bar
	StyleCurrentPage = lipgloss.NewStyle().
				Background(ColorTealDim).
				Foreground(ColorTealLight).
				Bold(true).
				Padding(0, 1)

	// StyleDisabled is for navigation controls that cannot be used
	StyleDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
