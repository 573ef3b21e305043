// Package resolve derives display titles, navigation order, and navigation
// visibility from filename and directory naming conventions.
package resolve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/notesync/internal/config"
)

const (
	// DefaultDirOrder is the nav order for directories without a numeric prefix.
	DefaultDirOrder = 10
	// FallbackSectionOrder is the nav order for top-level directories that are
	// not present in the section lookup table.
	FallbackSectionOrder = 90
)

var (
	chapterPattern   = regexp.MustCompile(`(?i)^chapter-(\d+)[-_ ]?(.*)\.md$`)
	dirPrefixPattern = regexp.MustCompile(`^(\d+)[-_. ]+(.+)$`)
	separators       = strings.NewReplacer("-", " ", "_", " ")
)

// Resolver applies the section lookup tables and acronym set from configuration.
type Resolver struct {
	sections map[string]config.Section
	acronyms map[string]struct{}
	caser    cases.Caser
}

// New creates a resolver from the loaded configuration.
func New(cfg *config.Config) *Resolver {
	sections := make(map[string]config.Section, len(cfg.Sections))
	for name, section := range cfg.Sections {
		sections[strings.ToLower(name)] = section
	}
	acronyms := make(map[string]struct{}, len(cfg.Acronyms))
	for _, acronym := range cfg.Acronyms {
		acronyms[strings.ToLower(acronym)] = struct{}{}
	}
	return &Resolver{
		sections: sections,
		acronyms: acronyms,
		caser:    cases.Title(language.English),
	}
}

// FileTitle derives a note file's display title and optional chapter number.
//
// A "chapter-<N>-<slug>.md" filename yields N and "Chapter N — Humanized Slug".
// A file named readme.md (any casing) yields a fixed "README" title. Any other
// file yields a title-cased, separator-normalized version of its stem.
// numbered is false when the filename carries no chapter number.
func (r *Resolver) FileTitle(filename string) (number int, title string, numbered bool) {
	if m := chapterPattern.FindStringSubmatch(filename); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, fmt.Sprintf("Chapter %d — %s", n, r.titleWords(m[2])), true
		}
	}
	if strings.EqualFold(filename, "readme.md") {
		return 0, "README", false
	}
	stem := filename
	if len(stem) > 3 && strings.EqualFold(stem[len(stem)-3:], ".md") {
		stem = stem[:len(stem)-3]
	}
	return 0, r.titleWords(stem), false
}

// Directory derives a directory's display title and nav order.
//
// Top-level directories (depth 1) consult the section lookup tables, falling
// back to a title-cased name with FallbackSectionOrder. Deeper directories use
// a leading "<digits><separator>" prefix as nav order (DefaultDirOrder when
// absent); a duplicate parent-title prefix is stripped from the title seed and
// recognized acronyms are upper-cased.
func (r *Resolver) Directory(name string, depth int, parentTitle string) (string, int) {
	if depth <= 1 {
		if section, ok := r.sections[strings.ToLower(name)]; ok {
			return section.Title, section.NavOrder
		}
		return r.caseWords(name), FallbackSectionOrder
	}

	seed := name
	order := DefaultDirOrder
	if m := dirPrefixPattern.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			order = n
			seed = m[2]
		}
	}

	normalized := normalize(seed)
	if parentTitle != "" {
		prefix := strings.ToLower(parentTitle) + " "
		if lower := strings.ToLower(normalized); strings.HasPrefix(lower, prefix) {
			normalized = normalized[len(prefix):]
		}
	}
	return r.caseWordsNormalized(normalized), order
}

// titleWords title-cases a separator-normalized string without acronym handling.
// File titles follow the plain title-case rule.
func (r *Resolver) titleWords(s string) string {
	return r.caser.String(normalize(s))
}

// caseWords is caseWordsNormalized after separator normalization.
func (r *Resolver) caseWords(s string) string {
	return r.caseWordsNormalized(normalize(s))
}

// caseWordsNormalized title-cases each word, upper-casing recognized acronyms.
func (r *Resolver) caseWordsNormalized(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if _, ok := r.acronyms[strings.ToLower(word)]; ok {
			words[i] = strings.ToUpper(word)
			continue
		}
		words[i] = r.caser.String(word)
	}
	return strings.Join(words, " ")
}

func normalize(s string) string {
	return strings.Join(strings.Fields(separators.Replace(s)), " ")
}
