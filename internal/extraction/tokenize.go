package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern keeps symbol-bearing tech tokens intact ("c++", "c#",
// "node.js", "ci/cd") while splitting on everything else.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#]+(?:[./-][a-z0-9+#]+)*`)

// token is a lexical token with its byte offset in the source text.
type token struct {
	text  string
	start int
}

// tokenize case-folds text and returns its tokens with positions.
func tokenize(text string) []token {
	lower := strings.ToLower(text)
	matches := tokenPattern.FindAllStringIndex(lower, -1)
	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, token{text: lower[m[0]:m[1]], start: m[0]})
	}
	return tokens
}

// skillOccurrence records one mention of a canonical skill.
type skillOccurrence struct {
	canonical string
	start     int
}

// findSkillOccurrences matches unigrams and adjacent bigrams against the
// alias dictionary.
func findSkillOccurrences(tokens []token) []skillOccurrence {
	var occurrences []skillOccurrence
	for i, tok := range tokens {
		if canonical, ok := aliasLookup[tok.text]; ok {
			occurrences = append(occurrences, skillOccurrence{canonical: canonical, start: tok.start})
		}
		if i+1 < len(tokens) {
			bigram := tok.text + " " + tokens[i+1].text
			if canonical, ok := aliasLookup[bigram]; ok {
				occurrences = append(occurrences, skillOccurrence{canonical: canonical, start: tok.start})
			}
		}
	}
	return occurrences
}

// SkillTokens tokenizes free text, normalizes every token and adjacent bigram
// through the alias dictionary, and returns the deduplicated token set sorted
// for determinism. Unknown tokens are kept as themselves so canonical topic
// strings still match.
func SkillTokens(text string) []string {
	tokens := tokenize(text)
	set := make(map[string]bool, len(tokens))
	for i, tok := range tokens {
		if canonical, ok := aliasLookup[tok.text]; ok {
			set[canonical] = true
		} else {
			set[tok.text] = true
		}
		if i+1 < len(tokens) {
			if canonical, ok := aliasLookup[tok.text+" "+tokens[i+1].text]; ok {
				set[canonical] = true
			}
		}
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// sentence is a case-folded sentence with its byte range in the source text.
type sentence struct {
	text  string
	start int
	end   int
}

// splitSentences segments case-folded text on sentence terminators and
// newlines. Offsets refer to the folded text, matching token offsets.
func splitSentences(lower string) []sentence {
	var sentences []sentence
	start := 0
	for i, r := range lower {
		switch r {
		case '.', '!', '?', '\n', ';':
			if i > start {
				sentences = append(sentences, sentence{text: lower[start:i], start: start, end: i})
			}
			start = i + 1
		}
	}
	if start < len(lower) {
		sentences = append(sentences, sentence{text: lower[start:], start: start, end: len(lower)})
	}
	return sentences
}
