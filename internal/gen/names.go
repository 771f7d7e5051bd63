package gen

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// namer hands out Go identifiers for LDtk names. Every identifier is unique
// within one generated package.
type namer struct {
	preserveCase bool
	used         map[string]bool
}

func newNamer(preserveCase bool) *namer {
	// Reserved for the declarations every generated package carries.
	return &namer{
		preserveCase: preserveCase,
		used:         map[string]bool{"Load": true, "ptr": true},
	}
}

// name joins parts and converts the result to an identifier.
func (n *namer) name(parts ...string) string {
	raw := strings.Join(parts, "_")
	if !n.preserveCase {
		raw = strcase.ToCamel(raw)
	}

	base := sanitize(raw)
	id := base

	for i := 2; n.used[id]; i++ {
		id = base + strconv.Itoa(i)
	}

	n.used[id] = true

	return id
}

// sanitize replaces characters that cannot appear in an identifier and
// prefixes names that would otherwise start with a digit or be a keyword.
func sanitize(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	id := b.String()
	if id == "" || unicode.IsDigit([]rune(id)[0]) || token.IsKeyword(id) {
		id = "X" + id
	}

	return id
}
