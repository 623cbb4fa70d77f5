// Package export renders the markings of an evaluation campaign as a
// spreadsheet-ready report.
//
// The output format is a legacy contract: consumers feed the rows into
// existing tooling, so oddities of the format (the duplicated bitext id
// column, the end-marker offset) are reproduced on purpose.
package export

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

// markers wrapped around the words of an error span.
const (
	startMarker = "<v>"
	endMarker   = "</v>"
)

// placeholder for literal newlines, so that they survive word-splitting.
const newlinePlaceholder = "<NEWLINE>"

// ErrUnknownCode reports a marking whose category or severity is not in
// the fixed code tables. The tables are closed and writes validate
// against them, so hitting this means the store was tampered with.
var ErrUnknownCode = errors.New("unknown marking code")

// ForEvaluation renders one row per (annotation, marking) pair of the
// evaluation, in store-iteration order.
//
// Each row is tab-separated and newline-terminated:
//
//	system name, document name, bitext id, bitext id (again),
//	annotator (email local part), highlighted source, translation
//	(or source, highlighted translation, when the error was marked on
//	the translation), category name, severity name, comment.
//
// Annotations and markings whose references do not resolve are skipped.
//
// error: kdb.ErrMissing when the evaluation does not exist.
// error: ErrUnknownCode when a marking carries a code outside the tables.
func ForEvaluation(ctx context.Context, database kdb.Database, evaluationId int) ([]string, error) {
	if _, err := database.Evaluations().Get(ctx, evaluationId); err != nil {
		return nil, err
	}

	annotations, err := database.Annotations().FindByEvaluation(ctx, evaluationId)
	if err != nil {
		return nil, err
	}

	results := []string{}
	for _, annotation := range annotations {
		bitext, err := database.Bitexts().Get(ctx, annotation.BitextId)
		if errors.Is(err, kdb.ErrMissing) {
			continue
		} else if err != nil {
			return nil, err
		}
		user, err := database.Users().Get(ctx, annotation.UserId)
		if errors.Is(err, kdb.ErrMissing) {
			continue
		} else if err != nil {
			return nil, err
		}
		document, err := database.Documents().Get(ctx, bitext.DocumentId)
		if errors.Is(err, kdb.ErrMissing) {
			continue
		} else if err != nil {
			return nil, err
		}

		markings, err := database.Markings().FindByAnnotation(ctx, annotation.Id)
		if err != nil {
			return nil, err
		}

		for _, marking := range markings {
			annotationSystem, err := database.AnnotationSystems().
				GetByAnnotationAndSystem(ctx, annotation.Id, marking.SystemId)
			if errors.Is(err, kdb.ErrMissing) {
				continue
			} else if err != nil {
				return nil, err
			}
			system, err := database.Systems().Get(ctx, marking.SystemId)
			if errors.Is(err, kdb.ErrMissing) {
				continue
			} else if err != nil {
				return nil, err
			}

			category, ok := kdb.CategoryName[marking.ErrorCategory]
			if !ok {
				return nil, fmt.Errorf(
					"%w: category %q (marking id=%d)", ErrUnknownCode, marking.ErrorCategory, marking.Id,
				)
			}
			severity, ok := kdb.SeverityName[marking.ErrorSeverity]
			if !ok {
				return nil, fmt.Errorf(
					"%w: severity %q (marking id=%d)", ErrUnknownCode, marking.ErrorSeverity, marking.Id,
				)
			}

			row := []string{
				system.Name,
				document.Name,
				strconv.Itoa(bitext.Id),
				strconv.Itoa(bitext.Id),
				localPart(user.Email),
			}

			if marking.IsSource {
				row = append(
					row,
					highlight(bitext.Source, marking.ErrorStart, marking.ErrorEnd),
					flatten(annotationSystem.Translation),
				)
			} else {
				row = append(
					row,
					flatten(bitext.Source),
					highlight(annotationSystem.Translation, marking.ErrorStart, marking.ErrorEnd),
				)
			}

			comment := ""
			if annotation.Comment != nil {
				comment = *annotation.Comment
			}
			row = append(row, category, severity, comment)

			results = append(results, strings.Join(row, "\t")+"\n")
		}
	}

	return results, nil
}

// localPart gives the text before "@" of an email address.
func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func flatten(text string) string {
	return strings.ReplaceAll(text, "\n", newlinePlaceholder)
}

// highlight wraps the word span [errorStart, errorEnd] of text in
// start/end markers.
//
// The text is split on single spaces; the start marker lands at word
// index errorStart, the end marker at errorEnd+2 of the grown slice:
// one for the start marker already inserted, one to place it after the
// last marked word. Out-of-range indices clamp to the end, as the
// legacy exporter did.
func highlight(text string, errorStart int, errorEnd int) string {
	words := strings.Split(flatten(text), " ")
	words = insert(words, errorStart, startMarker)
	words = insert(words, errorEnd+2, endMarker)
	return strings.Join(words, " ")
}

func insert(words []string, index int, word string) []string {
	if index < 0 {
		index = 0
	}
	if index > len(words) {
		index = len(words)
	}
	grown := make([]string, 0, len(words)+1)
	grown = append(grown, words[:index]...)
	grown = append(grown, word)
	return append(grown, words[index:]...)
}
