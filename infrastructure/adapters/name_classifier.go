package adapters

import (
	"strings"

	"github.com/Nikshey/TWINSKILL/application/ports/outbound"
	"github.com/Nikshey/TWINSKILL/domain"
)

// MatchKind selects how a name rule is applied to the lowercased name.
type MatchKind string

const (
	MatchSuffix   MatchKind = "suffix"
	MatchContains MatchKind = "contains"
)

// NameRule is one entry of the ordered classification table. Rules are data:
// the table can be swapped for a longer list or a real classifier without
// touching the matching code.
type NameRule struct {
	Kind   MatchKind
	Value  string
	Gender domain.GenderLabel
}

type nameGenderClassifier struct {
	rules []NameRule
}

// NewNameGenderClassifier builds a classifier over the default rule table:
// female-associated patterns first, then male-associated ones, first match
// wins.
func NewNameGenderClassifier() outbound.NameClassifierPort {
	return NewNameGenderClassifierFromRules(DefaultNameRules())
}

func NewNameGenderClassifierFromRules(rules []NameRule) outbound.NameClassifierPort {
	return &nameGenderClassifier{rules: rules}
}

func (c *nameGenderClassifier) Classify(name string) domain.GenderLabel {
	if name == "" {
		return domain.GenderUnknown
	}

	lowerName := strings.ToLower(name)
	for _, rule := range c.rules {
		if rule.matches(lowerName) {
			return rule.Gender
		}
	}

	return domain.GenderUnknown
}

func (r NameRule) matches(lowerName string) bool {
	switch r.Kind {
	case MatchSuffix:
		return strings.HasSuffix(lowerName, r.Value)
	case MatchContains:
		return strings.Contains(lowerName, r.Value)
	default:
		return false
	}
}

// DefaultNameRules returns the built-in table. The patterns are assumptions
// over common name shapes, not a model; a proper classifier can replace the
// whole table.
func DefaultNameRules() []NameRule {
	rules := make([]NameRule, 0, len(femaleSuffixes)+len(femaleNames)+len(maleSuffixes)+len(maleNames))
	for _, suffix := range femaleSuffixes {
		rules = append(rules, NameRule{Kind: MatchSuffix, Value: suffix, Gender: domain.GenderFemale})
	}
	for _, name := range femaleNames {
		rules = append(rules, NameRule{Kind: MatchContains, Value: name, Gender: domain.GenderFemale})
	}
	for _, suffix := range maleSuffixes {
		rules = append(rules, NameRule{Kind: MatchSuffix, Value: suffix, Gender: domain.GenderMale})
	}
	for _, name := range maleNames {
		rules = append(rules, NameRule{Kind: MatchContains, Value: name, Gender: domain.GenderMale})
	}
	return rules
}

var femaleSuffixes = []string{
	"a", "i", "y", "e", "ia", "ie", "ine", "elle", "ette", "ina",
	"essa", "anna", "ella", "olga", "maria", "sophia", "emma", "olivia",
	"ava", "isabella", "charlotte", "mia", "amelia", "harper",
	"evelyn", "abigail", "emily", "elizabeth", "mila", "avery",
	"sofia", "camila", "aria", "scarlett", "victoria", "madison", "luna",
	"grace", "chloe", "penelope", "layla", "riley", "zoey", "nora", "lily",
	"eleanor", "hannah", "lillian", "addison", "aubrey", "ellie", "stella",
	"natalie", "zoe", "leah", "hazel", "violet", "aurora", "savannah",
	"audrey", "brooklyn", "bella", "claire", "skylar", "lucy", "paisley",
	"everly", "caroline", "nova", "genesis", "emilia", "kennedy",
}

var femaleNames = []string{
	"sarah", "jennifer", "lisa", "mary", "linda", "patricia", "barbara", "elizabeth",
	"maria", "susan", "margaret", "dorothy", "nancy", "karen",
	"betty", "helen", "sandra", "donna", "carol", "ruth", "sharon", "michelle",
	"laura", "samantha", "kimberly", "deborah", "jessica", "shirley", "cynthia",
	"angela", "melissa", "brenda", "amy", "anna", "rebecca", "virginia", "kathleen",
	"pamela", "martha", "debra", "amanda", "stephanie", "carolyn", "christine",
	"marie", "janet", "catherine", "frances", "ann", "joyce", "diane", "alice",
	"julie", "heather", "teresa", "doris", "gloria", "evelyn", "jean", "cheryl",
	"mildred", "katherine", "joan", "ashley", "judith", "rose", "janice", "kelly",
}

var maleSuffixes = []string{
	"o", "n", "r", "s", "l", "t", "d", "m", "j", "c", "p", "b", "g", "h", "k", "w", "x", "z",
}

var maleNames = []string{
	"james", "john", "robert", "michael", "william", "david", "richard", "charles",
	"joseph", "thomas", "christopher", "daniel", "paul", "mark", "donald", "george",
	"kenneth", "steven", "edward", "brian", "ronald", "anthony", "kevin", "jason",
	"matthew", "gary", "timothy", "jose", "larry", "jeffrey", "frank", "scott",
	"eric", "stephen", "andrew", "raymond", "gregory", "joshua", "jerry", "dennis",
	"walter", "patrick", "peter", "harold", "douglas", "henry", "carl", "arthur",
	"ryan", "roger", "joe", "juan", "jack", "albert", "jonathan", "justin",
	"terry", "gerald", "keith", "samuel", "willie", "ralph", "lawrence", "nicholas",
	"roy", "benjamin", "bruce", "brandon", "adam", "harry", "fred", "wayne",
	"billy", "steve", "louis", "jeremy", "aaron", "randy", "howard", "eugene",
	"carlos", "russell", "bobby", "victor", "martin", "ernest", "phillip", "todd",
	"jesse", "craig", "alan", "shawn", "clarence", "sean", "philip", "chris",
	"johnny", "earl", "jimmy", "antonio", "danny", "bryan", "tony", "luis",
	"mike", "stanley", "leonard", "nathan", "dale", "manuel", "rodney", "curtis",
	"norman", "allen", "marvin", "vincent", "glenn", "jeffery", "travis", "jeff",
}
