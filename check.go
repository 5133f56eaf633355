package datavalidation

import (
	"reflect"
	"sort"
	"strings"
)

// CheckRules reports the first configuration error in rules: a malformed
// specification, an unknown rule name or invalid params. Use it in startup
// smoke tests so broken rule maps fail before any request arrives.
func CheckRules(rules Rules, reg *Registry) error {
	_, err := New(nil, rules, WithRegistry(reg)).compile()
	return err
}

// MissingRules returns the paths of record fields that no rule covers. A
// field is covered when it has rules itself; a nested mapping whose children
// have rules is descended into instead. Structs are converted with
// [FromStruct] first.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, dv.MissingRules(sample, rules))
//	assert.Empty(t, dv.MissingRules(sample, rules, "internal_id"))
func MissingRules(record any, rules Rules, exclude ...string) []string {
	rec, err := asRecord(record)
	if err != nil {
		if rec, err = FromStruct(record); err != nil {
			return nil
		}
	}

	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(rec, "", rules, excl, &missing)
	sort.Strings(missing)
	return missing
}

func collectUncovered(m any, prefix string, rules Rules, excl map[string]bool, missing *[]string) {
	rv := reflect.ValueOf(m)
	iter := rv.MapRange()
	for iter.Next() {
		path := prefix + iter.Key().String()
		if excl[path] {
			continue
		}
		if _, ok := rules[path]; ok {
			continue
		}
		if !hasChildRules(rules, path) {
			*missing = append(*missing, path)
			continue
		}
		if child := iter.Value().Interface(); isMapping(child) {
			collectUncovered(child, path+".", rules, excl, missing)
		}
	}
}

func hasChildRules(rules Rules, path string) bool {
	for f := range rules {
		if strings.HasPrefix(f, path+".") {
			return true
		}
	}
	return false
}
