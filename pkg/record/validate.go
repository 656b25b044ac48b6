// Copyright 2026 the dwkit Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidationError reports one field value outside its declared rule.
type ValidationError struct {
	Record int
	Field  Field
	Value  uint64
	// Missing is set when the record lacks the declared field entirely,
	// which can happen after hand editing the structured form.
	Missing bool
}

func (err *ValidationError) Error() string {
	if err.Missing {
		return fmt.Sprintf("record %d: field %q is missing", err.Record, err.Field.DisplayName())
	}
	return fmt.Sprintf("record %d: field %q: value %d not allowed, expected %s",
		err.Record, err.Field.DisplayName(), err.Value, err.Field.RuleString())
}

// Validated wraps a Set that has passed Validate. It is the only input
// the packer accepts, so an unvalidated set cannot reach the image.
type Validated struct {
	set *Set
}

// Set returns the validated record set.
func (v Validated) Set() *Set {
	return v.set
}

func checkRecord(idx int, rec Record, fields []Field) *ValidationError {
	for _, f := range fields {
		v, ok := rec.Values[f.Name]
		if !ok {
			return &ValidationError{Record: idx, Field: f, Missing: true}
		}
		if !f.Allowed(v) {
			return &ValidationError{Record: idx, Field: f, Value: v}
		}
	}
	return nil
}

// Validate checks every record of set against the declared field rules
// and returns the first violation found. On success the returned
// Validated is the ticket into the packer.
func Validate(set *Set, fields []Field) (Validated, error) {
	for i, rec := range set.Records {
		if verr := checkRecord(i, rec, fields); verr != nil {
			return Validated{}, verr
		}
	}
	return Validated{set: set}, nil
}

// ValidateAll is Validate without short-circuiting: it accumulates every
// violation so a caller can fix the structured form in one pass.
func ValidateAll(set *Set, fields []Field) error {
	var result *multierror.Error
	for i, rec := range set.Records {
		for _, f := range fields {
			v, ok := rec.Values[f.Name]
			if !ok {
				result = multierror.Append(result, &ValidationError{Record: i, Field: f, Missing: true})
				continue
			}
			if !f.Allowed(v) {
				result = multierror.Append(result, &ValidationError{Record: i, Field: f, Value: v})
			}
		}
	}
	return result.ErrorOrNil()
}
