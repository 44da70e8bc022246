// Package config provides YAML-based resource configuration for the game:
// window setup, per-screen layout, fonts, styles and round geometry.
package config

import "time"

// Document names. Each document lives in its own YAML file inside the
// configuration directory.
const (
	DocApp       = "app.yaml"
	DocMainMenu  = "main_menu.yaml"
	DocInfoMenu  = "info_menu.yaml"
	DocHelpMenu  = "help_menu.yaml"
	DocGame      = "game.yaml"
	DocFonts     = "fonts.yaml"
	DocStyles    = "styles.yaml"
	DocPositions = "positions.yaml"
)

// DocumentNames lists every document in load order.
var DocumentNames = []string{
	DocApp, DocMainMenu, DocInfoMenu, DocHelpMenu, DocGame, DocFonts, DocStyles, DocPositions,
}

// Documents is the full set of configuration documents.
type Documents struct {
	App       App                 `yaml:"app"`
	MainMenu  MainMenu            `yaml:"main_menu"`
	InfoMenu  InfoMenu            `yaml:"info_menu"`
	HelpMenu  HelpMenu            `yaml:"help_menu"`
	Game      Game                `yaml:"game"`
	Fonts     map[string]Font     `yaml:"fonts"`
	Styles    map[string]Style    `yaml:"styles"`
	Positions map[string]Position `yaml:"positions"`

	// Source describes where the documents were loaded from.
	Source string `yaml:"-"`
}

// App configures the application window.
type App struct {
	Title         string `yaml:"title"`
	Background    string `yaml:"background"` // style name
	DefaultPlayer string `yaml:"default_player"`
	Scale         int    `yaml:"scale"` // pixels per playfield unit in the desktop window
}

// Frame is a screen container.
type Frame struct {
	Style    string `yaml:"style"`
	Position string `yaml:"position"`
}

// Label is a piece of static text. Buttons share the same shape.
type Label struct {
	Text     string `yaml:"text"`
	Font     string `yaml:"font"`
	Style    string `yaml:"style"`
	Position string `yaml:"position"`
}

// MainMenu configures the main menu screen.
type MainMenu struct {
	Frame   Frame       `yaml:"frame"`
	Title   Label       `yaml:"title"`
	Buttons MenuButtons `yaml:"buttons"`
}

// MenuButtons lists the main menu entries in display order.
type MenuButtons struct {
	Play Label `yaml:"play_button"`
	Info Label `yaml:"info_button"`
	Help Label `yaml:"help_button"`
	Exit Label `yaml:"exit_button"`
}

// InfoMenu configures the high-score screen.
type InfoMenu struct {
	Frame      Frame `yaml:"frame"`
	Table      Table `yaml:"table"`
	BackButton Label `yaml:"back_button"`
}

// Table configures the high-score table.
type Table struct {
	Rows        int   `yaml:"rows"`
	HeaderLabel Label `yaml:"header_label"`
	NameLabel   Label `yaml:"name_label"`
	ResultLabel Label `yaml:"result_label"`
}

// HelpMenu configures the help screen.
type HelpMenu struct {
	Frame        Frame `yaml:"frame"`
	HeaderLabel  Label `yaml:"header_label"`
	WrapperLabel Label `yaml:"wrapper_label"`
	BackButton   Label `yaml:"back_button"`
}

// MissRule selects how a missed ball ends the round.
type MissRule string

const (
	// MissExit ends the round once the ball's top edge is below the playfield.
	MissExit MissRule = "exit"
	// MissPaddle ends the round once the ball's top edge is below the paddle.
	MissPaddle MissRule = "paddle"
)

// Game configures one round.
type Game struct {
	Canvas   Canvas        `yaml:"canvas"`
	Delay    time.Duration `yaml:"delay"` // fixed delay between ticks
	MissRule MissRule      `yaml:"miss_rule"`
	Paddle   Paddle        `yaml:"paddle"`
	Ball     Ball          `yaml:"ball"`
	Score    Score         `yaml:"score"`
}

// Canvas is the playfield.
type Canvas struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Style    string `yaml:"style"`
	Position string `yaml:"position"`
}

// Shape is a box placed at (X1,Y1,X2,Y2) and then shifted by (X0,Y0).
type Shape struct {
	X1    int    `yaml:"x1"`
	Y1    int    `yaml:"y1"`
	X2    int    `yaml:"x2"`
	Y2    int    `yaml:"y2"`
	X0    int    `yaml:"x0"`
	Y0    int    `yaml:"y0"`
	Style string `yaml:"style"`
}

// Paddle configures the player's paddle.
type Paddle struct {
	Rectangle Shape  `yaml:"rectangle"`
	DXL       int    `yaml:"dxl"`
	DXR       int    `yaml:"dxr"`
	LeftKey   string `yaml:"left_key"`
	RightKey  string `yaml:"right_key"`
}

// Ball configures the ball and its velocity candidates.
type Ball struct {
	Oval Shape `yaml:"oval"`
	DX   []int `yaml:"dx"`
	DY   []int `yaml:"dy"`
}

// Score configures the score display.
type Score struct {
	X       int    `yaml:"x1"`
	Y       int    `yaml:"y1"`
	Initial int    `yaml:"initial"`
	Format  string `yaml:"format"` // fmt verb for the value, e.g. "Score: %d"
	Font    string `yaml:"font"`
	Style   string `yaml:"style"`
}

// Font maps a font name to terminal text attributes.
type Font struct {
	Bold      bool `yaml:"bold"`
	Italic    bool `yaml:"italic"`
	Underline bool `yaml:"underline"`
	Faint     bool `yaml:"faint"`
}

// Style is a named set of colors and decorations.
type Style struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Border     bool   `yaml:"border"`
	BorderFg   string `yaml:"border_foreground"`
}

// Position describes how a widget is laid out inside its frame.
type Position struct {
	Align   string `yaml:"align"`   // left, center, right
	Padding []int  `yaml:"padding"` // CSS shorthand, 1 to 4 values
	Margin  []int  `yaml:"margin"`  // CSS shorthand, 1 to 4 values
	Width   int    `yaml:"width"`
}
