package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrNoBinding is returned for bindings that explicitly resolve to nothing,
// such as "none".
var ErrNoBinding = errors.New("no binding")

// ParseError describes a raw binding that could not be compiled into a chord.
type ParseError struct {
	Raw        string
	Token      string
	Reason     string
	Suggestion string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid key binding %q: %s", e.Raw, e.Reason)
	if e.Token != "" {
		msg = fmt.Sprintf("invalid key binding %q: %s %q", e.Raw, e.Reason, e.Token)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

var namedKeys = map[string]Chord{
	"backspace": {Code: KeyBackspace},
	"enter":     {Code: KeyEnter},
	"left":      {Code: KeyLeft},
	"right":     {Code: KeyRight},
	"up":        {Code: KeyUp},
	"down":      {Code: KeyDown},
	"home":      {Code: KeyHome},
	"end":       {Code: KeyEnd},
	"pageup":    {Code: KeyPageUp},
	"page_up":   {Code: KeyPageUp},
	"pagedown":  {Code: KeyPageDown},
	"page_down": {Code: KeyPageDown},
	"tab":       {Code: KeyTab},
	"backtab":   {Code: KeyBackTab},
	"delete":    {Code: KeyDelete},
	"insert":    {Code: KeyInsert},
	"null":      {Code: KeyNull},
	"esc":       {Code: KeyEsc},
	"escape":    {Code: KeyEsc},
	"pause":     {Code: KeyPause},
	"menu":      {Code: KeyMenu},
	"space":     {Code: KeyRune, Rune: ' '},
}

var modifierNames = map[string]Modifier{
	"alt":   ModAlt,
	"ctrl":  ModCtrl,
	"meta":  ModMeta,
	"shift": ModShift,
}

// knownTokens feeds the "did you mean" suggestion for misspelled tokens.
var knownTokens = func() []string {
	out := make([]string, 0, len(namedKeys)+len(modifierNames)+1)
	for name := range namedKeys {
		out = append(out, name)
	}
	for name := range modifierNames {
		out = append(out, name)
	}
	out = append(out, "none")
	sort.Strings(out)
	return out
}()

// ParseChord compiles a raw binding of the form [press:|release:]tok(+tok)*.
// Unknown tokens invalidate the whole binding; "none" yields ErrNoBinding.
func ParseChord(raw string) (Chord, error) {
	binding := strings.TrimSpace(raw)
	phase := PhasePress
	if prefix, rest, ok := strings.Cut(binding, ":"); ok {
		switch strings.ToLower(strings.TrimSpace(prefix)) {
		case "press":
			binding = strings.TrimSpace(rest)
		case "release":
			phase = PhaseRelease
			binding = strings.TrimSpace(rest)
		}
	}
	if binding == "" {
		return Chord{}, &ParseError{Raw: raw, Reason: "empty binding"}
	}

	var (
		chord   Chord
		haveKey bool
	)
	for _, part := range strings.Split(binding, "+") {
		tok := strings.ToLower(strings.TrimSpace(part))
		if tok == "none" {
			return Chord{}, ErrNoBinding
		}
		if mod, ok := modifierNames[tok]; ok {
			chord.Mods |= mod
			continue
		}
		key, ok := parseKeyToken(tok)
		if !ok {
			return Chord{}, &ParseError{Raw: raw, Token: tok, Reason: "unknown token", Suggestion: suggest(tok)}
		}
		if haveKey {
			return Chord{}, &ParseError{Raw: raw, Token: tok, Reason: "more than one key in"}
		}
		chord.Code, chord.Rune, chord.F = key.Code, key.Rune, key.F
		haveKey = true
	}
	if !haveKey {
		return Chord{}, &ParseError{Raw: raw, Reason: "no key"}
	}
	chord.Phase = phase
	return chord, nil
}

func parseKeyToken(tok string) (Chord, bool) {
	if key, ok := namedKeys[tok]; ok {
		return key, true
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return Chord{Code: KeyRune, Rune: r}, true
		}
		return Chord{}, false
	}
	if n, ok := strings.CutPrefix(tok, "f"); ok {
		num, err := strconv.ParseUint(n, 10, 8)
		if err == nil && num > 0 {
			return Chord{Code: KeyF, F: uint8(num)}, true
		}
	}
	return Chord{}, false
}

func suggest(tok string) string {
	if tok == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(tok, knownTokens)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
