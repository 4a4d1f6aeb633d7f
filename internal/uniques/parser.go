// Package uniques turns a unit's free-form ability text into structured
// force-rating modifiers. Extraction is best-effort: the corpus phrasing is
// inconsistent, so unmatched text degrades to zero/false values instead of
// erroring.
package uniques

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/civmods/forceval/internal/model"
)

// bucket identifies which percent accumulator a strength bonus feeds.
type bucket int

const (
	bucketCityAttack bucket = iota
	bucketAttack
	bucketDefend
	bucketAttackVs
)

// bucketRule routes a percent bonus by substring test on its context tag.
// Rules are evaluated in order; the first match wins, and the final rule is
// the catch-all for generic "vs <class>" tags.
type bucketRule struct {
	needle string // empty = always matches
	bucket bucket
}

// attackProbe is one step of the extra-attack detection chain. It reports
// the extracted count and whether the probe matched at all; a probe that
// matches ends the chain even when its count is zero.
type attackProbe func(corpus string) (count int, matched bool)

// percentEntry is a (value, tag) pair scanned from the corpus. Identical
// pairs are counted once, so an ability inherited through both a unique and
// a promotion is not applied twice.
type percentEntry struct {
	percent float64
	tag     string
}

// Parser extracts a ModifierRecord from a unit's uniques and promotions.
// It holds only immutable rule tables, so one Parser is safe to reuse across
// units and Parse is a pure function of its input.
type Parser struct {
	percentRe *regexp.Regexp
	nukeRe    *regexp.Regexp

	bucketRules []bucketRule
	attackChain []attackProbe

	paradropPhrases     []string
	setUpPhrases        []string
	selfDestructPhrases []string
	navalIndicators     []string
}

// NewParser creates a parser with the default rule tables.
func NewParser() *Parser {
	return &Parser{
		// Canonical shape: "[+33]% Strength <vs cities>", percent sign and
		// inner whitespace optional. The corpus is lowercased before matching.
		percentRe: regexp.MustCompile(`\[([+-]?\d+)\]%?\s*strength\s*<([^>]+)>`),

		// Whole-word patterns: "nuke" must not fire inside unrelated longer
		// words.
		nukeRe: regexp.MustCompile(`\b(?:nuclear missile|atomic bomb|nuclear weapon|nuke|nuclear|atomic)\b`),

		bucketRules: []bucketRule{
			// The corpus writes both "vs city" and "vs cities".
			{needle: "city", bucket: bucketCityAttack},
			{needle: "cities", bucket: bucketCityAttack},
			{needle: "when attacking", bucket: bucketAttack},
			{needle: "when defending", bucket: bucketDefend},
			{bucket: bucketAttackVs},
		},

		attackChain: []attackProbe{
			probeExtraAttacks,
			probeAttacksPerTurn,
			probeAttackTwice,
		},

		paradropPhrases:     []string{"paradrop", "paratroop", "paratrooper"},
		setUpPhrases:        []string{"must set up to ranged attack", "must set up", "must set up to"},
		selfDestructPhrases: []string{"self-destruct", "self destruct", "suicide", "explodes when attacking"},
		navalIndicators:     []string{"water", "submarine", "aircraft carrier", "carrier", "ship"},
	}
}

// Parse extracts all modifiers for one unit. It never fails: malformed or
// unrecognized text yields the default zero/false values.
func (p *Parser) Parse(unit model.UnitStats) model.ModifierRecord {
	corpus := buildCorpus(unit)

	var rec model.ModifierRecord

	for _, entry := range p.scanPercents(corpus) {
		switch p.classify(entry.tag) {
		case bucketCityAttack:
			rec.CityAttackBonus += entry.percent
		case bucketAttack:
			rec.AttackBonus += entry.percent
		case bucketDefend:
			rec.DefendBonus += entry.percent
		default:
			rec.AttackVsBonus += entry.percent
		}
	}

	rec.ParadropAble = containsAny(corpus, p.paradropPhrases)
	rec.MustSetUp = containsAny(corpus, p.setUpPhrases)
	rec.SelfDestructs = containsAny(corpus, p.selfDestructPhrases)
	rec.IsNuke = p.nukeRe.MatchString(corpus)

	for _, probe := range p.attackChain {
		if count, matched := probe(corpus); matched {
			rec.ExtraAttacks = count
			break
		}
	}

	// Ranged-naval needs both a positive ranged strength and a naval unit
	// type; type text alone never qualifies a melee unit.
	if unit.RangedStrength > 0 {
		rec.IsRangedNaval = containsAny(strings.ToLower(unit.UnitType), p.navalIndicators)
	}

	return rec
}

// buildCorpus joins uniques then promotions into one lowercase search string.
func buildCorpus(unit model.UnitStats) string {
	parts := make([]string, 0, len(unit.Uniques)+len(unit.Promotions))
	parts = append(parts, unit.Uniques...)
	parts = append(parts, unit.Promotions...)
	return strings.ToLower(strings.Join(parts, " "))
}

// scanPercents collects deduplicated (percent, tag) pairs from the corpus.
func (p *Parser) scanPercents(corpus string) []percentEntry {
	seen := make(map[percentEntry]bool)
	var entries []percentEntry

	for _, m := range p.percentRe.FindAllStringSubmatch(corpus, -1) {
		percent, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		entry := percentEntry{percent: percent, tag: strings.TrimSpace(m[2])}
		if !seen[entry] {
			seen[entry] = true
			entries = append(entries, entry)
		}
	}

	return entries
}

// classify routes a context tag to its bucket. Only the tag is tested, never
// the full corpus, so unrelated text elsewhere in the unit's description
// cannot change where a bonus lands.
func (p *Parser) classify(tag string) bucket {
	for _, rule := range p.bucketRules {
		if rule.needle == "" || strings.Contains(tag, rule.needle) {
			return rule.bucket
		}
	}
	return bucketAttackVs
}

var (
	extraAttacksRe   = regexp.MustCompile(`(\d+)\s+extra\s+attacks?`)
	attacksPerTurnRe = regexp.MustCompile(`(\d+)\s+attacks?\s+(?:per\s+turn|in\s+one\s+turn)`)
)

// probeExtraAttacks matches an explicit "<n> extra attacks" count.
func probeExtraAttacks(corpus string) (int, bool) {
	m := extraAttacksRe.FindStringSubmatch(corpus)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// probeAttacksPerTurn matches "<n> attacks per turn" phrasing, where n
// includes the regular attack: "3 attacks per turn" means two extra.
func probeAttacksPerTurn(corpus string) (int, bool) {
	m := attacksPerTurnRe.FindStringSubmatch(corpus)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if n > 1 {
		return n - 1, true
	}
	return 0, true
}

// probeAttackTwice catches the non-numeric phrasings worth one extra attack.
func probeAttackTwice(corpus string) (int, bool) {
	phrases := []string{"extra attack", "attack twice", "can attack twice", "attacks twice"}
	if containsAny(corpus, phrases) {
		return 1, true
	}
	return 0, false
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
