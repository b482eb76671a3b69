package ebay

import (
	"strings"
)

// ConditionUsed is the fallback code for condition strings neither table
// recognizes.
const ConditionUsed = "3000"

// ConditionTable selects which static mapping turns a free-text condition
// into an eBay condition code.
//
// The two tables disagree on several inputs ("good" is 5000 in the listing
// table and 3000 in the resolver table). Which one is authoritative is a
// product decision; until it is made both are kept and every disagreement
// is reported through ConditionConflict.
type ConditionTable string

// Condition tables.
const (
	ListingTable  ConditionTable = "listing"
	ResolverTable ConditionTable = "resolver"
)

// listingConditionCodes is the table used by the listing flow.
var listingConditionCodes = map[string]string{
	"new":                      "1000",
	"brand new":                "1000",
	"new with tags":            "1000",
	"new with box":             "1000",
	"new other":                "1500",
	"new without tags":         "1500",
	"open box":                 "1500",
	"certified refurbished":    "2000",
	"excellent refurbished":    "2010",
	"very good refurbished":    "2020",
	"good refurbished":         "2030",
	"seller refurbished":       "2500",
	"refurbished":              "2500",
	"like new":                 "2750",
	"used":                     "3000",
	"pre owned":                "3000",
	"excellent":                "4000",
	"very good":                "4000",
	"good":                     "5000",
	"fair":                     "6000",
	"acceptable":               "6000",
	"for parts":                "7000",
	"for parts or not working": "7000",
	"not working":              "7000",
}

// resolverConditionIDs is the condition-id resolver table.
var resolverConditionIDs = map[string]string{
	"new":         "1000",
	"brand new":   "1000",
	"like new":    "1500",
	"open box":    "1500",
	"refurbished": "2500",
	"used":        "3000",
	"excellent":   "3000",
	"very good":   "3000",
	"good":        "3000",
	"fair":        "3000",
	"poor":        "7000",
	"for parts":   "7000",
	"not working": "7000",
}

// knownConditionCodes is every code either table can produce.
var knownConditionCodes = func() map[string]struct{} {
	codes := make(map[string]struct{})
	for _, c := range listingConditionCodes {
		codes[c] = struct{}{}
	}
	for _, c := range resolverConditionIDs {
		codes[c] = struct{}{}
	}
	return codes
}()

// normalizeCondition lowercases, trims and folds '_' and '-' to spaces so
// "Like_New", "like-new" and "  like new " all match.
func normalizeCondition(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ConditionCode maps raw through the listing table. Unknown strings return
// ConditionUsed and known=false; callers should log the fallback.
func ConditionCode(raw string) (code string, known bool) {
	return lookupCondition(listingConditionCodes, raw)
}

// ResolveConditionID maps raw through the resolver table. Unknown strings
// return ConditionUsed and known=false.
func ResolveConditionID(raw string) (code string, known bool) {
	return lookupCondition(resolverConditionIDs, raw)
}

// Code maps raw through the selected table. Any value other than
// ResolverTable uses the listing table.
func (t ConditionTable) Code(raw string) (string, bool) {
	if t == ResolverTable {
		return ResolveConditionID(raw)
	}
	return ConditionCode(raw)
}

// Valid reports whether t names a known table.
func (t ConditionTable) Valid() bool {
	return t == ListingTable || t == ResolverTable
}

// IsKnownConditionCode reports whether code appears in either table.
func IsKnownConditionCode(code string) bool {
	_, ok := knownConditionCodes[code]
	return ok
}

// ConditionDisagreement describes an input the two tables map differently.
type ConditionDisagreement struct {
	Input        string
	ListingCode  string
	ResolverCode string
}

// ConditionConflict reports whether the listing and resolver tables map raw
// to different codes. Inputs neither table knows are not a conflict.
func ConditionConflict(raw string) (ConditionDisagreement, bool) {
	listing, lok := ConditionCode(raw)
	resolver, rok := ResolveConditionID(raw)
	if !lok && !rok {
		return ConditionDisagreement{}, false
	}
	if listing == resolver {
		return ConditionDisagreement{}, false
	}
	return ConditionDisagreement{
		Input:        normalizeCondition(raw),
		ListingCode:  listing,
		ResolverCode: resolver,
	}, true
}

func lookupCondition(table map[string]string, raw string) (string, bool) {
	if code, ok := table[normalizeCondition(raw)]; ok {
		return code, true
	}
	return ConditionUsed, false
}
