package pauli

// Commutes reports whether two terms commute as operators, using the
// anti-coincidence parity test: among the qubits where both terms act
// non-trivially, count those carrying different operators; the terms
// commute iff that count is even. Disjoint supports always commute.
// O(min(|a|,|b|)) per pair.
func Commutes(a, b *Term) bool {
	// Iterate the smaller support, probe the larger.
	if len(a.ops) > len(b.ops) {
		a, b = b, a
	}
	antiCoincidences := 0
	for q, op := range a.ops {
		if other, ok := b.ops[q]; ok && other != op {
			antiCoincidences++
		}
	}
	return antiCoincidences%2 == 0
}

// commutesWithAll reports whether t commutes with every term in group.
func commutesWithAll(group []*Term, t *Term) bool {
	for _, member := range group {
		if !Commutes(member, t) {
			return false
		}
	}
	return true
}

// CommutingGroups partitions the sum's terms into groups that pairwise
// commute, by greedy single-pass bin packing: each term, in sum order,
// joins the first existing group (in creation order) whose every member
// it commutes with, or opens a new group. Greedy assignment does not
// minimize the number of groups; it trades optimality for amortized
// O(groups) cost per term.
//
// The partition is deterministic in the input term order, which is
// therefore part of the observable contract: the same sum yields the
// same groups.
func CommutingGroups(s *Sum) [][]*Term {
	terms := s.Terms()
	groups := [][]*Term{{terms[0]}}
	for _, t := range terms[1:] {
		assigned := false
		for i := range groups {
			if commutesWithAll(groups[i], t) {
				groups[i] = append(groups[i], t)
				assigned = true
				break
			}
		}
		if !assigned {
			groups = append(groups, []*Term{t})
		}
	}
	return groups
}
