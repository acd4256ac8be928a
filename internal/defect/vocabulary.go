// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package defect

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownVocabulary is returned by [VocabularyByName] for an unsupported name.
var ErrUnknownVocabulary = errors.New("unknown fault vocabulary")

// Vocabulary names accepted by [VocabularyByName].
const (
	VocabularyStandard = "standard"
	VocabularyExtended = "extended"
)

var standardTerms = []string{
	"Defective", "Fault", "Faulty", "Damaged", "Failed", "Low",
	"Broken", "Leaking", "Corroded", "Loose", "Blocked", "Blown",
}

var extendedTerms = append(slices.Clone(standardTerms), "Expired", "High", "Abnormal", "Missing")

// Vocabulary is an immutable set of fault terms. Matching is exact and
// case-sensitive.
type Vocabulary struct {
	name  string
	terms []string
	set   map[string]struct{}
}

// NewVocabulary builds a vocabulary from terms. Duplicates are dropped.
func NewVocabulary(name string, terms ...string) Vocabulary {
	v := Vocabulary{name: name, set: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		if _, ok := v.set[t]; ok {
			continue
		}
		v.set[t] = struct{}{}
		v.terms = append(v.terms, t)
	}
	return v
}

// Standard returns the twelve-term fault vocabulary.
func Standard() Vocabulary {
	return NewVocabulary(VocabularyStandard, standardTerms...)
}

// Extended returns the standard vocabulary plus Expired, High, Abnormal and
// Missing.
func Extended() Vocabulary {
	return NewVocabulary(VocabularyExtended, extendedTerms...)
}

// VocabularyByName resolves a configured vocabulary name.
func VocabularyByName(name string) (Vocabulary, error) {
	switch name {
	case "", VocabularyStandard:
		return Standard(), nil
	case VocabularyExtended:
		return Extended(), nil
	}
	return Vocabulary{}, fmt.Errorf("%w: %q", ErrUnknownVocabulary, name)
}

// Contains reports whether s is exactly one of the terms.
func (v Vocabulary) Contains(s string) bool {
	_, ok := v.set[s]
	return ok
}

// Name returns the vocabulary name.
func (v Vocabulary) Name() string { return v.name }

// Terms returns the terms in declaration order.
func (v Vocabulary) Terms() []string { return slices.Clone(v.terms) }
