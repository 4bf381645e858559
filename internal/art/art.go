// Package art selects thematic ASCII art for the current scene without any
// network access. The online engine can supply a dynamic art map that takes
// precedence over the built-in set.
package art

import (
	"strings"

	"github.com/tatianab/ascii-adventure/internal/models"
)

var offlineArt = map[string]string{
	"default": `
  [ procedural imaging system ]
    +-----------------------+
    |       .......         |
    |     .:::::::::.       |
    |    :::-------:::.     |
    |    ::         ::.     |
    |    :: reality ::.     |
    |    '::.......::'      |
    |     ':::::::::'       |
    |        '''''          |
    +-----------------------+
`,
	"quiet": `
- - - - - - - - - - -
   .               .
       .      .
.            .      .
    .             .
.        .           .
- - -- - - - - - - - -
The silence is profound.
`,
	"ship": `
        __/___
  _____/______|
  \ o o o o o /
   \_________/
The gentle rock of the hull.
`,
	"library": `
 _______________________
|| o || o || o || o || o|
||---------------------||
|| o || o || o || o || o|
||_____________________||
Rows of silent knowledge.
`,
	"forest": `
      /\      /\
     /  \    /  \
    /____\  /____\
   /      \/      \
  |        |       |
The rustle of leaves.
`,
	"cave": `
      ______
     /  ()  \
    /        \
   /          \
  | cave mouth |
   \          /
    \________/
The drip of water echoes.
`,
	"castle": `
    |~|
 []_|_| []
 |[]_|_|[]|
 | |[]_|_|[]| |
A stone fortress looms.
`,
	"dark": `
____________________
|                  |
|  You see nothing.|
|                  |
|__________________|
 It is pitch black.
`,
	"cold": `
 *      *      *
   *      *      *
*      *      *
  *      *      *
A biting wind howls.
`,
	"ruins": `
    ,-'   ` + "`" + `.-.
  ,'         ` + "`" + `.
 /             \
|               |
 \ //   .-. \ /
  | |  |   | | |
Ancient stones crumble.
`,
	"sea": `
~ ~ ~ ~ ~ ~ ~ ~ ~ ~
  ~ ~ ~ ~ ~ ~ ~ ~
~ ~ ~ ~ ~ ~ ~ ~ ~ ~
    ~ ~ ~ ~ ~ ~ ~
 The endless ocean.
`,
	"eerie": `
      .o@@@@@@o.
     .@@'    '@@.
    .@@'      '@@.
     '@@.    .@@'
      'o@@@@@@o'
A sense of being watched...
`,
}

// ForScene picks a piece of art matching the current location's ambience.
// Keys in dynamicArt win over the built-in set; "default" is the last resort.
func ForScene(m *models.WorldModel, dynamicArt map[string]string) string {
	setting := m.FindSetting(m.WorldState.CurrentLocation)
	if setting == nil {
		return offlineArt["default"]
	}
	ambience := strings.ToLower(strings.Join(setting.AmbienceDescriptors, " "))

	for key, drawing := range dynamicArt {
		if strings.Contains(ambience, key) {
			return drawing
		}
	}
	for key, drawing := range offlineArt {
		if key != "default" && strings.Contains(ambience, key) {
			return drawing
		}
	}
	if strings.Contains(ambience, "ocean") || strings.Contains(ambience, "water") {
		return offlineArt["sea"]
	}
	return offlineArt["default"]
}
