package parser

// colourIcons lists jersey colour tokens in the order they are tested
// against an icon code. The first match wins; this order resolves historical
// icon-naming collisions and must not be re-sorted.
var colourIcons = []string{
	"yellow", "pink", "polka", "green", "white", "red", "blue", "black",
	"combination", "gold", "silver", "bronze",
}

// profileIcons maps a profile icon filename to its terrain category. Unknown
// filenames decode to an absent profile, never an error.
var profileIcons = map[string]string{
	"p1.gif":  "Flat",
	"p2.gif":  "Hilly",
	"p3.gif":  "Mountain",
	"p4.gif":  "Mountain MTF",
	"p5.gif":  "Hilly MTF",
	"p6.gif":  "Cobbles",
	"p7.gif":  "ITT",
	"p8.gif":  "ITT Hilly",
	"p9.gif":  "ITT Mountain",
	"p10.gif": "TTT",
}

// Category code reference sets. Codes follow UCI nomenclature, so a code may
// belong to more than one set (a 1.UWT race is both a UCI race and a one-day
// race); each flag is an independent membership test.
var uciCategories = categorySet(
	"UWT", "1.UWT", "2.UWT", "1.Pro", "2.Pro", "1.HC", "2.HC",
	"1.1", "2.1", "1.2", "2.2", "1.2U", "2.2U",
)

var championshipCategories = categorySet("WC", "OC", "CC", "NC")

var u23Categories = categorySet("U23", "1.2U", "2.2U")

var oneDayCategories = categorySet("1.UWT", "1.Pro", "1.HC", "1.1", "1.2", "1.2U")

func categorySet(codes ...string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}
