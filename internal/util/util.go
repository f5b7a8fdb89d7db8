package util

import "strings"

// MakeTextList gives a nice list of things based on their display name, e.g.
// "a, b, and c".
//
// TODO: turn this into a generic function that accepts displayable OR ~string
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

var vowelSounds = map[byte]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
}

// ArticleFor returns the indefinite article ("a" or "an") appropriate for the
// given word, based on whether it begins with a vowel sound. If capital is
// true, the article is capitalized ("A"/"An"). Used by the LR driver's
// expected-token message builder ("expected a number or an open paren").
func ArticleFor(word string, capital bool) string {
	article := "a"
	if len(word) > 0 && vowelSounds[word[0]] {
		article = "an"
	}
	if capital {
		return strings.ToUpper(article[:1]) + article[1:]
	}
	return article
}
