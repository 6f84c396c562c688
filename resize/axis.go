package resize

import (
	"fmt"
	"math"
	"sort"
)

// axis is the projection of a template onto one dimension: the sorted
// distinct coordinates carrying anchors, the interior run between each
// consecutive pair, and the empty margins outside them.
type axis struct {
	name   string // "width" or "height", for error reporting
	coords []int  // sorted unique structural coordinates
	gaps   []int  // len(coords)-1 interiors, cells strictly between
	lead   int    // empty run before coords[0]
	trail  int    // empty run after the last coordinate
	size   int    // original dimension
}

// planAxis projects the given anchor coordinates onto an axis of the
// given original size.
func planAxis(name string, values []int, size int) axis {
	uniq := make(map[int]bool, len(values))
	for _, v := range values {
		uniq[v] = true
	}
	coords := make([]int, 0, len(uniq))
	for v := range uniq {
		coords = append(coords, v)
	}
	sort.Ints(coords)

	a := axis{name: name, coords: coords, size: size}
	a.gaps = make([]int, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		a.gaps[i] = coords[i+1] - coords[i] - 1
	}
	a.lead = coords[0]
	a.trail = size - 1 - coords[len(coords)-1]

	return a
}

// minSize is the smallest dimension the axis can shrink to: one cell
// per structural coordinate plus one per non-empty interior. Margins
// may collapse to nothing.
func (a axis) minSize() int {
	min := len(a.coords)
	for _, g := range a.gaps {
		if g > 0 {
			min++
		}
	}
	return min
}

// scaleTo recomputes the structural coordinates for the target
// dimension. Interiors and margins scale by a shared factor with an
// error-diffusion accumulator threaded along the axis; interiors that
// were non-empty clamp to ≥ 1 and empty interiors stay empty, so
// touching features keep touching and separated features stay apart.
// The resized interior lengths sum exactly to target − overhead.
func (a axis) scaleTo(target int) ([]int, error) {
	overhead := len(a.coords)
	if min := a.minSize(); target < min {
		return nil, fmt.Errorf("%w: %s %d, minimum %d", ErrTooSmall, a.name, target, min)
	}

	scalable := a.size - overhead
	budget := target - overhead

	newLead, newGaps, newTrail := 0, make([]int, len(a.gaps)), 0
	if scalable == 0 {
		// Nothing to stretch proportionally; surplus becomes margin. On
		// the height axis it must lead, so the ground row stays the last
		// output row.
		if a.name == "height" {
			newLead = budget
		} else {
			newTrail = budget
		}
	} else {
		factor := float64(budget) / float64(scalable)
		carry := 0.0
		roundElem := func(orig int, isGap bool) int {
			if orig == 0 {
				return 0
			}
			exact := float64(orig)*factor + carry
			n := int(math.Round(exact))
			if isGap && n < 1 {
				n = 1
			}
			if n < 0 {
				n = 0
			}
			carry = exact - float64(n)
			return n
		}
		newLead = roundElem(a.lead, false)
		for i, g := range a.gaps {
			newGaps[i] = roundElem(g, true)
		}
		newTrail = roundElem(a.trail, false)

		// Clamping can leave residual error the carry could not absorb;
		// settle it against the largest adjustable runs so the sum is
		// exact.
		total := newLead + newTrail
		for _, g := range newGaps {
			total += g
		}
		for total < budget {
			switch i := widestGap(a.gaps); {
			case i >= 0:
				newGaps[i]++
			case a.name == "height":
				newLead++
			default:
				newTrail++
			}
			total++
		}
		for total > budget {
			switch {
			case newTrail > 0:
				newTrail--
			case newLead > 0:
				newLead--
			default:
				i := -1
				for j, g := range newGaps {
					if g > 1 && (i < 0 || g > newGaps[i]) {
						i = j
					}
				}
				if i < 0 {
					return nil, fmt.Errorf("%w: %s axis cannot settle to %d", ErrDegenerateSegment, a.name, target)
				}
				newGaps[i]--
			}
			total--
		}
	}

	coords := make([]int, len(a.coords))
	coords[0] = newLead
	for i := 1; i < len(coords); i++ {
		coords[i] = coords[i-1] + 1 + newGaps[i-1]
	}

	return coords, nil
}

// widestGap picks the index of the originally-widest non-empty interior
// (growth must never open an interior that was empty), or -1.
func widestGap(orig []int) int {
	best := -1
	for i, g := range orig {
		if g > 0 && (best < 0 || g > orig[best]) {
			best = i
		}
	}
	return best
}

// sourceMap maps every output coordinate to the source coordinate whose
// cells it copies: structural coordinates map pairwise, interior
// coordinates sample the first interior column of their source band,
// and margin coordinates sample the source margin or read as empty
// (-1) when the source has none.
func sourceMap(a axis, newCoords []int, target int) []int {
	src := make([]int, target)
	last := len(a.coords) - 1
	for x := 0; x < target; x++ {
		switch {
		case x < newCoords[0]:
			if a.lead > 0 {
				src[x] = a.coords[0] - 1
			} else {
				src[x] = -1
			}
		case x > newCoords[last]:
			if a.trail > 0 {
				src[x] = a.coords[last] + 1
			} else {
				src[x] = -1
			}
		default:
			// Within the structural span: find the band.
			i := sort.SearchInts(newCoords, x)
			if i <= last && newCoords[i] == x {
				src[x] = a.coords[i]
			} else {
				src[x] = a.coords[i-1] + 1
			}
		}
	}
	return src
}
