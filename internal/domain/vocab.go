package domain

import (
	"math/bits"
	"slices"
	"strings"
)

// Season is a canonical season term. Items carry exactly one.
type Season string

const (
	SeasonAllYear      Season = "四季"
	SeasonSpringAutumn Season = "春秋"
	SeasonSummer       Season = "夏"
	SeasonWinter       Season = "冬"

	DefaultSeason = SeasonAllYear
)

// Seasons lists the canonical season vocabulary, broadest first.
var Seasons = []Season{SeasonAllYear, SeasonSpringAutumn, SeasonSummer, SeasonWinter}

func (s Season) String() string { return string(s) }

func (s Season) IsValid() bool {
	switch s {
	case SeasonAllYear, SeasonSpringAutumn, SeasonSummer, SeasonWinter:
		return true
	}
	return false
}

// Parts of the year covered by a season, as a bit set.
const (
	coverSpring = 1 << iota
	coverSummer
	coverAutumn
	coverWinter

	coverAll = coverSpring | coverSummer | coverAutumn | coverWinter
)

func (s Season) coverage() uint {
	switch s {
	case SeasonAllYear:
		return coverAll
	case SeasonSpringAutumn:
		return coverSpring | coverAutumn
	case SeasonSummer:
		return coverSummer
	case SeasonWinter:
		return coverWinter
	}
	return 0
}

// seasonTermsV1 maps every season term ever written by a client (the
// multi-select era stored lists of these) to the current vocabulary.
// Canonical terms map to themselves so normalisation is idempotent.
var seasonTermsV1 = map[string]Season{
	"四季":          SeasonAllYear,
	"全年":          SeasonAllYear,
	"全季":          SeasonAllYear,
	"all":         SeasonAllYear,
	"all seasons": SeasonAllYear,
	"all-season":  SeasonAllYear,
	"春秋":          SeasonSpringAutumn,
	"春":           SeasonSpringAutumn,
	"秋":           SeasonSpringAutumn,
	"春季":          SeasonSpringAutumn,
	"秋季":          SeasonSpringAutumn,
	"春天":          SeasonSpringAutumn,
	"秋天":          SeasonSpringAutumn,
	"spring":      SeasonSpringAutumn,
	"autumn":      SeasonSpringAutumn,
	"fall":        SeasonSpringAutumn,
	"夏":           SeasonSummer,
	"夏季":          SeasonSummer,
	"夏天":          SeasonSummer,
	"summer":      SeasonSummer,
	"冬":           SeasonWinter,
	"冬季":          SeasonWinter,
	"冬天":          SeasonWinter,
	"winter":      SeasonWinter,
}

// seasonSeparators split legacy display strings such as "春、夏".
var seasonSeparators = strings.NewReplacer("、", ",", "，", ",", "/", ",", ";", ",")

// NormalizeSeason maps any historical season encoding to one canonical term.
// A legacy list contributes every recognised term; when the terms together
// cover the whole year the result is SeasonAllYear, otherwise the broadest
// single term wins (ties resolved by vocabulary order). Unrecognised input,
// no input, or only blanks yield DefaultSeason.
func NormalizeSeason(terms ...string) Season {
	var (
		union uint
		best  Season
	)
	for _, raw := range terms {
		for _, part := range strings.Split(seasonSeparators.Replace(raw), ",") {
			s, ok := seasonTermsV1[strings.ToLower(strings.TrimSpace(part))]
			if !ok {
				continue
			}
			union |= s.coverage()
			if best == "" || broader(s, best) {
				best = s
			}
		}
	}
	if union == coverAll {
		return SeasonAllYear
	}
	if best == "" {
		return DefaultSeason
	}
	return best
}

func broader(a, b Season) bool {
	ca, cb := bits.OnesCount(a.coverage()), bits.OnesCount(b.coverage())
	if ca != cb {
		return ca > cb
	}
	return seasonRank(a) < seasonRank(b)
}

func seasonRank(s Season) int {
	if i := slices.Index(Seasons, s); i >= 0 {
		return i
	}
	return len(Seasons)
}

// Frequency is a canonical wear-frequency term.
type Frequency string

const (
	FrequencyOften     Frequency = "经常"
	FrequencySometimes Frequency = "有时"
	FrequencyOccasion  Frequency = "偶尔"
	FrequencyRarely    Frequency = "很少"
	FrequencyNever     Frequency = "从未"

	DefaultFrequency = FrequencyOccasion
)

// Frequencies lists the canonical frequency vocabulary, most worn first.
var Frequencies = []Frequency{
	FrequencyOften, FrequencySometimes, FrequencyOccasion, FrequencyRarely, FrequencyNever,
}

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOften, FrequencySometimes, FrequencyOccasion, FrequencyRarely, FrequencyNever:
		return true
	}
	return false
}

// frequencyTermsV1 maps the seven-term vocabulary (and the current five
// terms) forward. Mapping never goes backward: current terms are fixed points.
var frequencyTermsV1 = map[string]Frequency{
	"经常":   FrequencyOften,
	"有时":   FrequencySometimes,
	"偶尔":   FrequencyOccasion,
	"很少":   FrequencyRarely,
	"从未":   FrequencyNever,
	"每天":   FrequencyOften,
	"每周多次": FrequencyOften,
	"每周一次": FrequencySometimes,
	"每月几次": FrequencyOccasion,
	"从不":   FrequencyNever,

	"daily":        FrequencyOften,
	"often":        FrequencyOften,
	"weekly":       FrequencySometimes,
	"sometimes":    FrequencySometimes,
	"monthly":      FrequencyOccasion,
	"occasionally": FrequencyOccasion,
	"rarely":       FrequencyRarely,
	"never":        FrequencyNever,
}

// NormalizeFrequency maps any historical frequency term to the current
// vocabulary. Empty or unrecognised input yields DefaultFrequency.
func NormalizeFrequency(term string) Frequency {
	if f, ok := frequencyTermsV1[strings.ToLower(strings.TrimSpace(term))]; ok {
		return f
	}
	return DefaultFrequency
}

// End reasons offered when retiring an item.
const (
	EndReasonDiscarded = "丢弃"
	EndReasonSold      = "出售"
	EndReasonGifted    = "送人"
)

// EndReasons lists the accepted retirement reasons.
var EndReasons = []string{EndReasonDiscarded, EndReasonSold, EndReasonGifted}

// IsValidEndReason reports whether reason is one of EndReasons.
func IsValidEndReason(reason string) bool {
	return slices.Contains(EndReasons, reason)
}
