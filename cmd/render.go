/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/busarovalex/puzzle_helper/internal/decipher"
)

// RenderPartialSolution expands a single PartialSolution into every full
// plaintext phrase it's consistent with. A cipher word no Condition touched
// is unconstrained in the PartialSolution, so it expands against every
// vocabulary word of matching length rather than a single candidate; this
// expansion is host-side rendering, not something the solver itself does.
//
// Expansion stops once maxRendered phrases have been produced, since an
// unconstrained word count or two can make the full cartesian product huge.
func RenderPartialSolution(vocabulary *decipher.Vocabulary, cipher *decipher.CipherText, partial *decipher.PartialSolution, maxRendered int) []string {
	wordCount := cipher.WordCount()
	candidates := make([][]string, wordCount)

	for i := 0; i < wordCount; i++ {
		id := decipher.CipherWordId(i)
		length, ok := cipher.LengthOf(id)
		if !ok {
			return nil
		}

		var ids []decipher.WordId
		if words, constrained := partial.Get(id); constrained {
			ids = words.IDs()
		} else {
			ids = vocabulary.IDsOfLength(length)
		}

		texts := make([]string, 0, len(ids))
		for _, wordID := range ids {
			if text, ok := vocabulary.Lookup(wordID); ok {
				texts = append(texts, text)
			}
		}
		if len(texts) == 0 {
			return nil
		}
		candidates[i] = texts
	}

	phrases := []string{""}
	for _, texts := range candidates {
		next := make([]string, 0, len(phrases)*len(texts))
	fill:
		for _, prefix := range phrases {
			for _, word := range texts {
				var phrase string
				if prefix == "" {
					phrase = word
				} else {
					phrase = prefix + " " + word
				}
				next = append(next, phrase)
				if len(next) >= maxRendered {
					break fill
				}
			}
		}
		phrases = next
	}
	return phrases
}

// RenderSolution renders every PartialSolution in partials, capping the
// total number of rendered phrases at maxRendered across all of them.
func RenderSolution(vocabulary *decipher.Vocabulary, cipher *decipher.CipherText, partials []*decipher.PartialSolution, maxRendered int) []string {
	var phrases []string
	for _, partial := range partials {
		remaining := maxRendered - len(phrases)
		if remaining <= 0 {
			break
		}
		phrases = append(phrases, RenderPartialSolution(vocabulary, cipher, partial, remaining)...)
	}
	return phrases
}

// FormatPhrases joins rendered phrases into numbered lines for CLI display.
func FormatPhrases(phrases []string) string {
	lines := make([]string, len(phrases))
	for i, phrase := range phrases {
		lines[i] = fmt.Sprintf("%d) %s", i+1, phrase)
	}
	return strings.Join(lines, "\n")
}
