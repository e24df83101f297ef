// Package teams ships the NFL team catalog used to build team-selection
// descriptors whose images point at locally hosted logos.
package teams

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formdecor/pkg/field"
)

// NFL lists the URL slugs of every NFL franchise in alphabetical order.
var NFL = []string{
	"arizona-cardinals",
	"atlanta-falcons",
	"baltimore-ravens",
	"buffalo-bills",
	"carolina-panthers",
	"chicago-bears",
	"cincinnati-bengals",
	"cleveland-browns",
	"dallas-cowboys",
	"denver-broncos",
	"detroit-lions",
	"green-bay-packers",
	"houston-texans",
	"indianapolis-colts",
	"jacksonville-jaguars",
	"kansas-city-chiefs",
	"las-vegas-raiders",
	"los-angeles-chargers",
	"los-angeles-rams",
	"miami-dolphins",
	"minnesota-vikings",
	"new-england-patriots",
	"new-orleans-saints",
	"new-york-giants",
	"new-york-jets",
	"philadelphia-eagles",
	"pittsburgh-steelers",
	"san-francisco-49ers",
	"seattle-seahawks",
	"tampa-bay-buccaneers",
	"tennessee-titans",
	"washington-commanders",
}

// LogoFile is the file name a team logo is stored under.
func LogoFile(slug string) string {
	return slug + "-logo.svg"
}

// DisplayName turns a slug into a title-cased team name. Words that start
// with a digit are kept as-is, so "49ers" does not become "49Ers".
func DisplayName(slug string) string {
	caser := cases.Title(language.English)
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for idx, word := range words {
		if first, _ := utf8.DecodeRuneInString(word); !unicode.IsLetter(first) {
			continue
		}
		words[idx] = caser.String(word)
	}
	return strings.Join(words, " ")
}

// DescriptorOptions shapes the descriptor built from a catalog.
type DescriptorOptions struct {
	Name      string
	Label     string
	Prefix    string
	Selection field.SelectionType
}

// Descriptor builds a team-selection descriptor over slugs. Image paths are
// Prefix/<slug>-logo.svg and alt texts are display names, index-aligned.
func Descriptor(slugs []string, opts DescriptorOptions) field.Descriptor {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = "team"
	}
	prefix := strings.TrimRight(opts.Prefix, "/")

	desc := field.Descriptor{
		Name:      name,
		Label:     opts.Label,
		FieldType: "checkbox-group",
		EnumNames: make(field.Values, 0, len(slugs)),
		Enum:      make(field.Values, 0, len(slugs)),
		Properties: field.Properties{
			SelectionType: opts.Selection,
		},
	}
	for _, slug := range slugs {
		desc.EnumNames = append(desc.EnumNames, prefix+"/"+LogoFile(slug))
		desc.Enum = append(desc.Enum, DisplayName(slug))
	}
	return desc
}

// Catalog resolves a catalog by name. Only "nfl" is known.
func Catalog(name string) ([]string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nfl":
		return append([]string(nil), NFL...), true
	default:
		return nil, false
	}
}
