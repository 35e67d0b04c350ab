package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space": ' ',
	"plus":  '+',
	"minus": '-',
}

// specialKeyNames resolves lowercased tcell key names ("ctrl-q", "enter") to keys
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig builds a sparse override table from key name → action name pairs
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for keyName, action := range bindings {
		entry, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown action %q", keyName, action)
		}

		name := strings.ToLower(strings.ReplaceAll(keyName, "+", "-"))
		if r, ok := runeAliases[name]; ok {
			kt.Runes[r] = entry
			continue
		}
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			kt.Runes[r] = entry
			continue
		}
		k, ok := specialKeyNames[name]
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown key name", keyName)
		}
		kt.SpecialKeys[k] = entry
	}
	return kt, nil
}
