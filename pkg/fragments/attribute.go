package fragments

import (
	"strconv"
	"strings"
)

// Attribute is one key/value pair of an item. TypeHash identifies the value
// type in the source schema.
type Attribute struct {
	Key      string
	Value    string
	TypeHash int32
}

// Relation is one named link from an item to other items by local id.
type Relation struct {
	Name string
	IDs  []int32
}

var bracketStripper = strings.NewReplacer("[", "", "]", "")

// tokenize strips brackets from a record and splits it on commas, dropping
// empty tokens.
func tokenize(raw string) []string {
	parts := strings.Split(bracketStripper.Replace(raw), ",")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func unquote(token string) string {
	return strings.ReplaceAll(strings.TrimSpace(token), `"`, "")
}

// ParseAttribute decodes raw records of the form ["Key","Value",TypeHash].
// Records with fewer than three tokens are skipped.
func ParseAttribute(raw []string) []Attribute {
	out := make([]Attribute, 0, len(raw))
	for _, r := range raw {
		tokens := tokenize(r)
		if len(tokens) < 3 {
			continue
		}
		out = append(out, Attribute{
			Key:      unquote(tokens[0]),
			Value:    unquote(tokens[1]),
			TypeHash: atoi(strings.TrimSpace(tokens[2])),
		})
	}
	return out
}

// ParseRelation decodes a record of the form ["Name", id1, id2, ...]. Ids
// that are not integers are skipped. ok is false when the record has no
// name.
func ParseRelation(raw string) (rel Relation, ok bool) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return Relation{}, false
	}
	rel.Name = unquote(tokens[0])
	if rel.Name == "" {
		return Relation{}, false
	}
	for _, tok := range tokens[1:] {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
		if err != nil {
			continue
		}
		rel.IDs = append(rel.IDs, int32(id))
	}
	return rel, true
}

// ParseRelations decodes every well-formed record in raw.
func ParseRelations(raw []string) []Relation {
	out := make([]Relation, 0, len(raw))
	for _, r := range raw {
		if rel, ok := ParseRelation(r); ok {
			out = append(out, rel)
		}
	}
	return out
}

// atoi parses a leading decimal integer and ignores whatever follows it.
// Input without one yields 0.
func atoi(s string) int32 {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var v int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int64(s[i]-'0')
		if v > 1<<31 {
			v = 1 << 31
		}
	}
	if neg {
		v = -v
	}
	if v > 1<<31-1 {
		v = 1<<31 - 1
	}
	return int32(v)
}
