package scan

import (
	"errors"
	"strconv"

	"github.com/emirpasic/gods/maps/hashbidimap"

	"github.com/sublee/taggen/internal/codefmt"
	"github.com/sublee/taggen/internal/taggen/parse"
)

// Resolved pairs a variant with its computed discriminant value. Resolutions
// are produced in strict source order.
type Resolved struct {
	Variant parse.Variant
	Value   Value
}

// Scan walks the ordered variant list once and resolves the discriminant of
// every variant against the given representation. It returns the complete
// resolution only when every variant resolved cleanly; otherwise it returns
// every validation error joined together, one per offending variant.
func Scan(pkger codefmt.Pkger, variants []parse.Variant, repr Repr) ([]Resolved, error) {
	var errs []error
	resolved := make([]Resolved, 0, len(variants))

	// Discriminants and variants pair one-to-one in both directions. The
	// map holds value bit patterns against the variant that first claimed
	// them.
	seen := hashbidimap.New()

	next := repr.Zero()
	for _, v := range variants {
		value := next

		if v.HasValue {
			parsed, err := repr.Parse(v.Value)
			if err != nil {
				poser := codefmt.Pos(v.ValuePos)
				if errors.Is(err, strconv.ErrRange) {
					errs = append(errs, codefmt.Errorf(pkger, poser, "discriminant %s out of range for %s", v.Value, repr))
				} else {
					errs = append(errs, codefmt.Errorf(pkger, poser, "discriminant must be an integer literal: %q", v.Value))
				}

				// The running value stays put so that later implicit
				// variants keep counting from the last successfully
				// resolved variant.
				continue
			}
			value = parsed
		}

		if prev, ok := seen.Get(value.Uint64()); ok {
			poser := codefmt.Pos(v.NamePos)
			if v.HasValue {
				poser = codefmt.Pos(v.ValuePos)
			}
			errs = append(errs, codefmt.Errorf(pkger, poser, "discriminant %s assigned more than once: %s and %s", value, prev, v.Name))
		} else {
			seen.Put(value.Uint64(), v.Name)
		}

		resolved = append(resolved, Resolved{v, value})
		next = value.Inc()
	}

	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}
